package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/bootwatch/bootwatch/internal/platform"
	"github.com/bootwatch/bootwatch/internal/tui"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show host facts and which startup sources are read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			host, err := platform.Describe(cmd.Context())
			if err != nil {
				return err
			}

			configUsed := a.configUsed
			if configUsed == "" {
				configUsed = tui.Dim("(none, using defaults)")
			}

			var sources []string
			if a.agg != nil {
				for _, r := range a.agg.Readers() {
					sources = append(sources, r.Name())
				}
			}
			sourceList := strings.Join(sources, ", ")
			if sourceList == "" {
				sourceList = tui.Dim("(none on this platform)")
			}

			fmt.Fprintf(a.out, "Host:      %s\n", host.Hostname)
			fmt.Fprintf(a.out, "OS:        %s %s (%s)\n", host.Platform, host.PlatformVersion, host.KernelArch)
			fmt.Fprintf(a.out, "Booted:    %s\n", host.BootTime.Format(time.RFC3339))
			fmt.Fprintf(a.out, "Elevated:  %t\n", a.plat.IsElevated())
			fmt.Fprintf(a.out, "Config:    %s\n", configUsed)
			fmt.Fprintf(a.out, "Timeout:   %s\n", a.cfg.Exec.Timeout.Duration)
			fmt.Fprintf(a.out, "Sources:   %s\n", sourceList)
			return nil
		},
	}
}
