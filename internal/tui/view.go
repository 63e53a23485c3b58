package tui

import (
	"fmt"
	"strings"

	"procsweep/internal/process"
	"procsweep/internal/session"
)

// Layout constants
const (
	pidWidth    = 8
	memoryWidth = 14

	// DefaultNameWidth is used until the terminal reports its size
	DefaultNameWidth = 30
	// MinNameWidth keeps the name column readable on narrow terminals
	MinNameWidth = 12

	// DefaultTableHeight is the number of rows drawn when the height is unknown
	DefaultTableHeight = 20
	// chromeHeight is the number of lines used by everything except the rows
	chromeHeight = 12
)

// View renders the UI from the session's read-only accessors
func (m Model) View() string {
	var sb strings.Builder

	rows := m.state.Visible()
	sb.WriteString(m.renderTitle(len(rows)))
	sb.WriteByte('\n')
	sb.WriteString(m.renderHeader())
	sb.WriteByte('\n')
	sb.WriteString(m.renderRows(rows))

	if m.state.Mode() != session.ModeConfirmKill {
		if p, ok := m.state.SelectedProcess(); ok {
			sb.WriteByte('\n')
			sb.WriteString(m.renderDetails(p))
		}
	}

	if m.state.Mode() == session.ModeConfirmKill {
		sb.WriteByte('\n')
		sb.WriteString(m.renderConfirm())
	}

	if msg, ok := m.state.Message(); ok {
		sb.WriteByte('\n')
		if msg.Severity == session.SeverityError {
			sb.WriteString(errorStyle.Render(msg.Text))
		} else {
			sb.WriteString(statusStyle.Render(msg.Text))
		}
	}

	sb.WriteByte('\n')
	sb.WriteString(m.renderFooter())

	return sb.String()
}

func (m Model) renderTitle(visible int) string {
	title := fmt.Sprintf("procsweep (%d processes)", m.state.Total())
	if visible != m.state.Total() {
		title = fmt.Sprintf("procsweep (%d of %d processes)", visible, m.state.Total())
	}
	return titleStyle.Render(title)
}

func (m Model) nameWidth() int {
	if m.width == 0 {
		return DefaultNameWidth
	}
	return max(MinNameWidth, m.width-pidWidth-memoryWidth-4)
}

func (m Model) tableHeight() int {
	if m.height == 0 {
		return DefaultTableHeight
	}
	return max(1, m.height-chromeHeight)
}

func (m Model) renderHeader() string {
	col, asc := m.state.Sort()
	header := fmt.Sprintf("  %s %s %s",
		truncate("PID"+sortIndicator(session.SortPID, col, asc), pidWidth),
		truncate("NAME"+sortIndicator(session.SortName, col, asc), m.nameWidth()),
		padLeft("MEMORY (MB)"+sortIndicator(session.SortMemory, col, asc), memoryWidth),
	)
	return headerStyle.Render(header)
}

func (m Model) renderRows(rows []process.Process) string {
	if len(rows) == 0 {
		if q := m.state.Query(); q != "" {
			return emptyStyle.Render(fmt.Sprintf("No processes match '%s'", q)) + "\n"
		}
		return emptyStyle.Render("No processes") + "\n"
	}

	selected, hasSelection := m.state.Selected()
	height := m.tableHeight()
	start := scrollOffset(selected, len(rows), height)
	end := min(len(rows), start+height)

	var sb strings.Builder
	for i := start; i < end; i++ {
		p := rows[i]
		pid := truncate(p.PID, pidWidth)
		name := truncate(p.Name, m.nameWidth())
		mem := padLeft(formatMemory(p.MemoryMB), memoryWidth)

		if hasSelection && i == selected {
			sb.WriteString(selectedStyle.Render(fmt.Sprintf("> %s %s %s", pid, name, mem)))
		} else {
			sb.WriteString(fmt.Sprintf("  %s %s %s",
				pidStyle.Render(pid),
				nameStyle.Render(name),
				memoryStyle(p.MemoryMB).Render(mem),
			))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (m Model) renderDetails(p process.Process) string {
	line := fmt.Sprintf("%s %s  %s %s  %s %s",
		detailLabelStyle.Render("PID:"), detailValueStyle.Render(p.PID),
		detailLabelStyle.Render("Name:"), detailValueStyle.Render(p.Name),
		detailLabelStyle.Render("Memory:"), detailValueStyle.Render(formatMemory(p.MemoryMB)+" MB"),
	)
	if p.Command == "" {
		return line
	}
	if label := formatCommand(p.Command); label != "" && label != p.Name {
		line += "  " + detailLabelStyle.Render("Program:") + " " + detailValueStyle.Render(label)
	}

	maxLen := DefaultNameWidth + pidWidth + memoryWidth
	if m.width > 0 {
		maxLen = max(MinNameWidth, m.width-2)
	}
	return line + "\n" + cmdDetailStyle.Render("> "+strings.TrimRight(truncate(p.Command, maxLen), " "))
}

func (m Model) renderConfirm() string {
	p, ok := m.state.KillTarget()
	if !ok {
		return confirmStyle.Render("No process selected. Press any key to go back.")
	}
	return confirmStyle.Render(fmt.Sprintf("Kill process %s (%s)? (y/N)", p.Name, p.PID))
}

func (m Model) renderFooter() string {
	switch m.state.Mode() {
	case session.ModeSearch:
		return searchStyle.Render("/"+m.state.Query()+"▌") + "\n" +
			helpBarStyle.Render(m.help.View(searchKeys{m.keys}))
	case session.ModeConfirmKill:
		return ""
	}

	var sb strings.Builder
	if q := m.state.Query(); q != "" {
		sb.WriteString(searchFilterStyle.Render("filter: " + q))
		sb.WriteByte('\n')
	}
	sb.WriteString(helpBarStyle.Render(m.help.View(m.keys)))
	return sb.String()
}
