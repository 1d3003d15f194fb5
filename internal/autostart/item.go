package autostart

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Kind identifies the backing store a startup item lives in. The set is
// closed: the dispatcher handles exactly these four kinds.
type Kind string

const (
	KindPlistAgent    Kind = "plist_agent"    // launchd job file (macOS)
	KindLoginItem     Kind = "login_item"     // System Events login item (macOS)
	KindRegistryRun   Kind = "registry_run"   // Run key value (Windows)
	KindStartupFolder Kind = "startup_folder" // Startup folder file (Windows)
)

// Kinds lists every kind in enumeration order.
var Kinds = []Kind{KindPlistAgent, KindLoginItem, KindRegistryRun, KindStartupFolder}

// Valid reports whether k is one of the known kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindPlistAgent, KindLoginItem, KindRegistryRun, KindStartupFolder:
		return true
	default:
		return false
	}
}

// ParseKind accepts the canonical kind names plus the short aliases used on
// the command line.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "plist_agent", "plist":
		return KindPlistAgent, nil
	case "login_item", "login":
		return KindLoginItem, nil
	case "registry_run", "registry", "run":
		return KindRegistryRun, nil
	case "startup_folder", "folder":
		return KindStartupFolder, nil
	default:
		return "", fmt.Errorf("invalid startup item kind %q (expected plist, login, registry or folder)", s)
	}
}

// Scope tells whether an entry belongs to the current user or the machine.
type Scope string

const (
	ScopeUser   Scope = "user"
	ScopeSystem Scope = "system"
)

// ParseScope parses "user" or "system".
func ParseScope(s string) (Scope, error) {
	switch s {
	case "user":
		return ScopeUser, nil
	case "system":
		return ScopeSystem, nil
	default:
		return "", fmt.Errorf("invalid scope %q (expected \"user\" or \"system\")", s)
	}
}

// StartupItem is the uniform record every reader produces. Its fields are
// fixed by the constructors in normalize.go and cannot change afterwards;
// the label doubles as the deletion key for login items and Run values.
type StartupItem struct {
	label   string
	path    string
	hasPath bool
	kind    Kind
	scope   Scope
}

// Label returns the display name: file name, value name or login item name.
func (i StartupItem) Label() string { return i.label }

// Path returns the file path or registry data. Login items have none.
func (i StartupItem) Path() (string, bool) { return i.path, i.hasPath }

// Kind returns the backing store the item came from.
func (i StartupItem) Kind() Kind { return i.kind }

// Scope returns whether the item is per-user or machine-wide.
func (i StartupItem) Scope() Scope { return i.scope }

func (i StartupItem) String() string {
	if i.hasPath {
		return fmt.Sprintf("%s %q (%s)", i.kind, i.label, i.path)
	}
	return fmt.Sprintf("%s %q", i.kind, i.label)
}

type itemJSON struct {
	Label string `json:"label"`
	Path  string `json:"path,omitempty"`
	Kind  Kind   `json:"kind"`
	Scope Scope  `json:"scope"`
}

// MarshalJSON implements json.Marshaler.
func (i StartupItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemJSON{
		Label: i.label,
		Path:  i.path,
		Kind:  i.kind,
		Scope: i.scope,
	})
}
