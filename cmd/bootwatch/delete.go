package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bootwatch/bootwatch/internal/autostart"
	"github.com/bootwatch/bootwatch/internal/tui"
)

func newDeleteCmd(a *app) *cobra.Command {
	var (
		yes bool
		ff  filterFlags
	)
	cmd := &cobra.Command{
		Use:     "delete <label>",
		Aliases: []string{"rm"},
		Short:   "Delete the startup item with the given label",
		Long: `Delete re-enumerates startup items and removes the one whose label
matches. When several items share a label, narrow the match with --kind,
--scope or --path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := ff.build(args[0])
			if err != nil {
				return err
			}
			item, err := a.resolve(cmd.Context(), filter)
			if err != nil {
				return err
			}
			return a.deleteItem(cmd.Context(), item, yes)
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "delete without asking for confirmation")
	ff.register(cmd, true)
	return cmd
}

// resolve returns the single item matching filter from a fresh enumeration.
func (a *app) resolve(ctx context.Context, filter autostart.Filter) (autostart.StartupItem, error) {
	matches := autostart.Select(a.items.All(ctx), filter)
	switch len(matches) {
	case 0:
		return autostart.StartupItem{}, fmt.Errorf("no startup item labelled %q", filter.Label)
	case 1:
		return matches[0], nil
	default:
		lines := make([]string, len(matches))
		for i, m := range matches {
			lines[i] = "  " + tui.Describe(m)
		}
		return autostart.StartupItem{}, fmt.Errorf("%d startup items are labelled %q, narrow with --kind, --scope or --path:\n%s",
			len(matches), filter.Label, strings.Join(lines, "\n"))
	}
}
