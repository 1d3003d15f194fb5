package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bootwatch/bootwatch/internal/autostart"
)

// entry adapts a StartupItem to list.DefaultItem.
type entry struct {
	item autostart.StartupItem
}

func (e entry) Title() string { return Marker(e.item.Kind()) + " " + e.item.Label() }

func (e entry) Description() string {
	return fmt.Sprintf("%s · %s · %s", KindTitle(e.item.Kind()), e.item.Scope(), pathOrUnknown(e.item))
}

func (e entry) FilterValue() string { return e.item.Label() }

var selectKey = key.NewBinding(
	key.WithKeys("enter"),
	key.WithHelp("enter", "delete"),
)

// PickerModel is the bubbletea model of the startup item picker.
type PickerModel struct {
	list     list.Model
	chosen   *autostart.StartupItem
	quitting bool
}

// NewPickerModel builds a picker over items.
func NewPickerModel(items []autostart.StartupItem) PickerModel {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = entry{item: item}
	}

	l := list.New(listItems, list.NewDefaultDelegate(), 80, 24)
	l.Title = CountHeader(len(items))
	l.Styles.Title = titleStyle
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{selectKey} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{selectKey} }

	return PickerModel{list: l}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

	case tea.KeyMsg:
		// While the filter input is open, keys belong to it.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if e, ok := m.list.SelectedItem().(entry); ok {
				item := e.item
				m.chosen = &item
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.chosen != nil || m.quitting {
		return ""
	}
	return docStyle.Render(m.list.View())
}

// Chosen returns the selected item, if any.
func (m PickerModel) Chosen() (autostart.StartupItem, bool) {
	if m.chosen == nil {
		return autostart.StartupItem{}, false
	}
	return *m.chosen, true
}

// Pick runs the picker full-screen and returns the selected item. ok is
// false when the user quits without choosing.
func Pick(items []autostart.StartupItem, opts ...tea.ProgramOption) (item autostart.StartupItem, ok bool, err error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(NewPickerModel(items), opts...).Run()
	if err != nil {
		return autostart.StartupItem{}, false, fmt.Errorf("running picker: %w", err)
	}
	m, isPicker := final.(PickerModel)
	if !isPicker {
		return autostart.StartupItem{}, false, nil
	}
	item, ok = m.Chosen()
	return item, ok, nil
}
