package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bootwatch/bootwatch/internal/tui"
)

func newPickCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Choose a startup item from an interactive list and delete it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPick(cmd.Context(), yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	return cmd
}

func (a *app) runPick(ctx context.Context, yes bool) error {
	items := a.items.All(ctx)
	if len(items) == 0 {
		fmt.Fprintln(a.out, tui.CountHeader(0))
		return nil
	}

	item, ok, err := a.pick(items)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Fprintln(a.out, "Nothing selected.")
		return nil
	}
	return a.deleteItem(ctx, item, yes)
}
