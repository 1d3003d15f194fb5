package tui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bootwatch/bootwatch/internal/autostart"
)

// Confirm asks whether item should be deleted. Only "y" or "yes" confirm;
// end of input counts as no.
func Confirm(in io.Reader, out io.Writer, item autostart.StartupItem) (bool, error) {
	fmt.Fprintf(out, "Delete %s? [y/N]: ", Describe(item))
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
