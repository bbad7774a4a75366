package prompt

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/jiralink/jiralink/internal/tracker"
)

type instanceItem struct {
	title string
	inst  tracker.Instance
}

func (i instanceItem) Title() string       { return i.title }
func (i instanceItem) Description() string { return i.inst.URL }
func (i instanceItem) FilterValue() string { return i.title + " " + i.inst.URL }

// InstanceListModel is a bubbletea list for choosing a Jira instance.
type InstanceListModel struct {
	list     list.Model
	selected *tracker.Instance
}

// NewInstanceList builds the chooser for c. Untitled instances are shown as
// "Instance N".
func NewInstanceList(c tracker.Collection) InstanceListModel {
	titles := c.DisplayTitles()
	items := make([]list.Item, len(c))
	for i, inst := range c {
		items[i] = instanceItem{title: titles[i], inst: inst}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select Jira instance"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)

	return InstanceListModel{list: l}
}

// Init initializes the model.
func (m InstanceListModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m InstanceListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		return m, nil

	case tea.KeyMsg:
		// While the filter is being typed, keys belong to the list.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "esc":
			// First esc clears an applied filter.
			if m.list.FilterState() == list.FilterApplied {
				break
			}
			return m, tea.Quit
		case "ctrl+c", "q":
			return m, tea.Quit
		case "enter":
			if item, ok := m.list.SelectedItem().(instanceItem); ok {
				inst := item.inst
				m.selected = &inst
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the model.
func (m InstanceListModel) View() string {
	if m.selected != nil {
		return ""
	}
	return docStyle.Render(m.list.View())
}

// Selected returns the chosen instance, or false when the list was dismissed.
func (m InstanceListModel) Selected() (tracker.Instance, bool) {
	if m.selected == nil {
		return tracker.Instance{}, false
	}
	return *m.selected, true
}
