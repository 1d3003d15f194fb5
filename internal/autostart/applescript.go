package autostart

import "strings"

const (
	listLoginItemsScript  = `tell application "System Events" to get the name of every login item`
	deleteLoginItemScript = `tell application "System Events" to delete login item %s`
)

var appleScriptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	return `"` + appleScriptEscaper.Replace(s) + `"`
}
