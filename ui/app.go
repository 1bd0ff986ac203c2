package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"wgtui/engine"
)

// refreshMsg carries the outcome of a registry refresh.
type refreshMsg struct{ err error }

// activateMsg carries the outcome of a wg-quick invocation.
type activateMsg struct {
	name   string
	up     bool
	output string
	err    error
}

// Model is the bubbletea model. All interface state lives in the registry;
// the model only keeps presentation state (selection, panel sizes, pending
// diagnostics) on top of it.
type Model struct {
	registry *engine.Registry

	names    []string
	selected int
	width    int
	height   int

	// A failed refresh makes the whole view unusable: nothing but the
	// error is shown until a retry succeeds or the user quits.
	fatal error

	// Activation feedback panel. Non-empty output means the panel is up;
	// any key dismisses it and triggers a refresh.
	output     string
	outputName string
	activating bool
}

// NewModel creates the TUI model over a registry.
func NewModel(reg *engine.Registry) Model {
	return Model{registry: reg}
}

func (m Model) Init() tea.Cmd {
	return refresh(m.registry)
}

func refresh(reg *engine.Registry) tea.Cmd {
	return func() tea.Msg { return refreshMsg{err: reg.Refresh()} }
}

func activate(reg *engine.Registry, name string, up bool) tea.Cmd {
	return func() tea.Msg {
		out, err := reg.Activate(name, up)
		return activateMsg{name: name, up: up, output: out, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height

	case refreshMsg:
		m.fatal = msg.err
		if msg.err != nil {
			m.names = nil
			return m, nil
		}
		m.names = m.registry.Names()
		if m.selected >= len(m.names) {
			m.selected = len(m.names) - 1
		}
		if m.selected < 0 {
			m.selected = 0
		}
		// Keep the cursor on the previously selected interface when it
		// still exists after the refresh.
		if cur := m.registry.Current(); cur != "" {
			for i, name := range m.names {
				if name == cur {
					m.selected = i
					break
				}
			}
		}

	case activateMsg:
		m.activating = false
		m.outputName = msg.name
		m.output = msg.output
		if strings.TrimSpace(m.output) == "" {
			if msg.err != nil {
				m.output = msg.err.Error()
			} else {
				verb := "down"
				if msg.up {
					verb = "up"
				}
				m.output = fmt.Sprintf("wg-quick %s %s completed with no output", verb, msg.name)
			}
		}

	case tea.KeyMsg:
		if m.output != "" {
			// Dismiss diagnostics and observe the new truth.
			m.output = ""
			m.outputName = ""
			return m, refresh(m.registry)
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "r":
			return m, refresh(m.registry)
		case "s":
			if m.fatal == nil {
				m.registry.ToggleShowPrivate()
			}
		case "j", "down":
			if m.selected < len(m.names)-1 {
				m.selected++
				m.registry.Select(m.names[m.selected])
			}
		case "k", "up":
			if m.selected > 0 {
				m.selected--
				m.registry.Select(m.names[m.selected])
			}
		case "enter", " ":
			if m.fatal == nil && !m.activating && len(m.names) > 0 {
				name := m.names[m.selected]
				iface, ok := m.registry.Get(name)
				if !ok {
					break
				}
				m.registry.Select(name)
				m.activating = true
				return m, activate(m.registry, name, !iface.Enabled)
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if m.fatal != nil {
		return m.viewFatal()
	}
	if m.output != "" {
		return m.viewOutput()
	}
	return m.viewMain()
}

// viewFatal replaces the whole screen after a failed refresh. The stale
// interface view must not be shown again until a refresh succeeds.
func (m Model) viewFatal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("wgtui") + "\n\n")
	b.WriteString(errStyle.Render("Refresh failed") + "\n\n")
	b.WriteString(valueStyle.Render(m.fatal.Error()) + "\n\n")
	b.WriteString(helpStyle.Render("r retry · q quit"))
	return b.String()
}

// viewOutput shows wg-quick diagnostics verbatim until dismissed.
func (m Model) viewOutput() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Command output for %s", m.outputName)) + "\n\n")
	b.WriteString(valueStyle.Render(m.output) + "\n\n")
	b.WriteString(helpStyle.Render("press any key to refresh"))
	return panelStyle.Render(b.String())
}

func (m Model) viewMain() string {
	header := titleStyle.Render("wgtui — WireGuard interfaces")

	list := m.viewList()
	detail := m.viewDetail()
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		panelStyle.Render(list),
		activePanelStyle.Render(detail),
	)

	status := ""
	if m.activating {
		status = warnStyle.Render("running wg-quick…")
	} else if m.registry.ShowPrivate() {
		status = warnStyle.Render("private keys visible")
	}

	help := helpStyle.Render("j/k select · enter/space up/down · s secrets · r refresh · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, status, help)
}

func (m Model) viewList() string {
	if len(m.names) == 0 {
		return downStyle.Render("no interfaces")
	}
	var b strings.Builder
	for i, name := range m.names {
		marker := downStyle.Render("○")
		if iface, ok := m.registry.Get(name); ok && iface.Enabled {
			marker = upStyle.Render("●")
		}
		line := fmt.Sprintf("%s %s", marker, name)
		if i == m.selected {
			line = selectedStyle.Render(fmt.Sprintf("%s %s", "›", name))
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) viewDetail() string {
	if len(m.names) == 0 {
		return downStyle.Render("nothing to show")
	}
	name := m.names[m.selected]
	text, err := m.registry.Render(name)
	if err != nil {
		return errStyle.Render(err.Error())
	}
	return titleStyle.Render(name) + "\n" + valueStyle.Render(strings.TrimRight(text, "\n"))
}
