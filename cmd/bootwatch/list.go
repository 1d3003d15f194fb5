package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bootwatch/bootwatch/internal/autostart"
	"github.com/bootwatch/bootwatch/internal/tui"
)

type filterFlags struct {
	kind  string
	scope string
	path  string
}

func (f *filterFlags) register(cmd *cobra.Command, withPath bool) {
	cmd.Flags().StringVar(&f.kind, "kind", "", "only items of this kind: plist, login, registry or folder")
	cmd.Flags().StringVar(&f.scope, "scope", "", "only items of this scope: user or system")
	if withPath {
		cmd.Flags().StringVar(&f.path, "path", "", "only the item with this path or registry data")
	}
}

func (f *filterFlags) build(label string) (autostart.Filter, error) {
	filter := autostart.Filter{Label: label, Path: f.path}
	if f.kind != "" {
		k, err := autostart.ParseKind(f.kind)
		if err != nil {
			return filter, err
		}
		filter.Kind = k
	}
	if f.scope != "" {
		s, err := autostart.ParseScope(f.scope)
		if err != nil {
			return filter, err
		}
		filter.Scope = s
	}
	return filter, nil
}

func newListCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		ff     filterFlags
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List startup items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, err := ff.build("")
			if err != nil {
				return err
			}
			return a.runList(cmd.Context(), filter, asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print items as JSON")
	ff.register(cmd, false)
	return cmd
}

func (a *app) runList(ctx context.Context, filter autostart.Filter, asJSON bool) error {
	items := autostart.Select(a.items.All(ctx), filter)
	if asJSON {
		return tui.RenderJSON(a.out, items)
	}

	fmt.Fprintln(a.out, tui.CountHeader(len(items)))
	if len(items) == 0 {
		return nil
	}
	fmt.Fprintln(a.out)
	return tui.RenderTable(a.out, items)
}
