package tui

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/bootwatch/bootwatch/internal/autostart"
)

const unknownPath = "unknown path"

// Marker returns the emoji shown in front of each kind.
func Marker(k autostart.Kind) string {
	switch k {
	case autostart.KindPlistAgent:
		return "📝"
	case autostart.KindLoginItem:
		return "🚀"
	case autostart.KindRegistryRun:
		return "🔑"
	case autostart.KindStartupFolder:
		return "📂"
	default:
		return "❔"
	}
}

// KindTitle returns the human name of a kind.
func KindTitle(k autostart.Kind) string {
	switch k {
	case autostart.KindPlistAgent:
		return "Plist"
	case autostart.KindLoginItem:
		return "Login Item"
	case autostart.KindRegistryRun:
		return "Registry"
	case autostart.KindStartupFolder:
		return "Startup Folder"
	default:
		return string(k)
	}
}

func pathOrUnknown(item autostart.StartupItem) string {
	if p, ok := item.Path(); ok && p != "" {
		return p
	}
	return unknownPath
}

// Describe returns the one-line display label of an item.
func Describe(item autostart.StartupItem) string {
	marker := Marker(item.Kind())
	switch item.Kind() {
	case autostart.KindPlistAgent:
		return fmt.Sprintf("%s %s (%s)", marker, item.Label(), pathOrUnknown(item))
	case autostart.KindLoginItem:
		return fmt.Sprintf("%s %s (Login Item)", marker, item.Label())
	default:
		return fmt.Sprintf("%s %s (%s, %s)", marker, item.Label(), KindTitle(item.Kind()), pathOrUnknown(item))
	}
}

// CountHeader returns the line printed above a listing.
func CountHeader(n int) string {
	if n == 1 {
		return "📦 1 startup item found"
	}
	return fmt.Sprintf("📦 %d startup items found", n)
}

// RenderTable writes items as a numbered table.
func RenderTable(w io.Writer, items []autostart.StartupItem) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"#", "Type", "Label", "Scope", "Path"})
	for i, item := range items {
		row := []string{
			strconv.Itoa(i + 1),
			Marker(item.Kind()) + " " + KindTitle(item.Kind()),
			item.Label(),
			string(item.Scope()),
			pathOrUnknown(item),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("adding table row: %w", err)
		}
	}
	return table.Render()
}

// RenderJSON writes items as an indented JSON array.
func RenderJSON(w io.Writer, items []autostart.StartupItem) error {
	if items == nil {
		items = []autostart.StartupItem{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
