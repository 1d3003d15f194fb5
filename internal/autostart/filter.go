package autostart

// Filter selects items from an enumeration. Zero fields match anything.
type Filter struct {
	Label string
	Kind  Kind
	Scope Scope
	Path  string
}

// Match reports whether item satisfies every non-zero field of f.
func (f Filter) Match(item StartupItem) bool {
	if f.Label != "" && item.Label() != f.Label {
		return false
	}
	if f.Kind != "" && item.Kind() != f.Kind {
		return false
	}
	if f.Scope != "" && item.Scope() != f.Scope {
		return false
	}
	if f.Path != "" {
		if p, ok := item.Path(); !ok || p != f.Path {
			return false
		}
	}
	return true
}

// Select returns the items matching f, preserving order.
func Select(items []StartupItem, f Filter) []StartupItem {
	var out []StartupItem
	for _, item := range items {
		if f.Match(item) {
			out = append(out, item)
		}
	}
	return out
}
