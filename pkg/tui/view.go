package tui

import (
	"strings"
)

// View renders the model.
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Lazy Launcher"))
	b.WriteString("\n")

	names := m.registry.Names()
	if len(names) == 0 {
		b.WriteString(m.styles.path.Render("No programs registered. Press a to add one."))
		b.WriteString("\n")
	}
	for i, name := range names {
		entry, _ := m.registry.Get(name)
		box := "[ ]"
		if m.selected[name] {
			box = m.styles.checked.Render("[x]")
		}
		label := m.styles.item.Render(name)
		if i == m.cursor {
			label = m.styles.cursor.Render(name)
		}
		b.WriteString(box + " " + label + "  " + m.styles.path.Render(entry.ExecutablePath) + "\n")
	}
	b.WriteString("\n")

	if m.adding {
		b.WriteString("Add program: " + m.input.View() + "\n\n")
	}

	b.WriteString(m.styles.logBox.Render(m.viewport.View()))
	b.WriteString("\n")

	if m.status != "" {
		if m.failed {
			b.WriteString(m.styles.errorMsg.Render(m.status))
		} else {
			b.WriteString(m.styles.status.Render(m.status))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.styles.help.Render(m.help.View(m.keys)))
	return b.String()
}
