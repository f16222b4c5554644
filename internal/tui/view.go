package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/psds-microservice/helpdesk-service/internal/model"
	"github.com/psds-microservice/helpdesk-service/internal/view"
)

var (
	tabStyle       = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1).Underline(true)

	faintStyle = lipgloss.NewStyle().Faint(true)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	selectedRowStyle = lipgloss.NewStyle().Bold(true)

	cardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2)

	statusColors = map[model.TicketStatus]lipgloss.Color{
		model.TicketStatusPending:  lipgloss.Color("3"),
		model.TicketStatusAccepted: lipgloss.Color("4"),
		model.TicketStatusResolved: lipgloss.Color("2"),
		model.TicketStatusRejected: lipgloss.Color("1"),
	}
)

func statusBadge(s model.TicketStatus) string {
	c, ok := statusColors[s]
	if !ok {
		return string(s)
	}
	return lipgloss.NewStyle().Foreground(c).Render(string(s))
}

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}

	header := m.renderTabs()
	contentHeight := max(1, m.height-3) // вкладки, пустая строка, статусная строка

	var content string
	switch {
	case m.menu != nil:
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.renderMoveMenu())
	case m.filterOpen:
		content = lipgloss.Place(m.width, contentHeight, lipgloss.Center, lipgloss.Center, m.renderFilterMenu())
	default:
		switch m.tab {
		case tabCreate:
			content = m.renderForm()
		case tabList:
			content = m.renderList(contentHeight)
		case tabBoard:
			content = m.renderBoard(contentHeight)
		}
	}

	content = lipgloss.NewStyle().Height(contentHeight).MaxHeight(contentHeight).Render(content)
	return header + "\n\n" + content + "\n" + m.renderStatusBar()
}

func (m *Model) renderTabs() string {
	labels := []string{"1 Create", "2 Tickets", "3 Board"}
	parts := make([]string, len(labels))
	for i, l := range labels {
		if tab(i) == m.tab {
			parts[i] = activeTabStyle.Render(l)
		} else {
			parts[i] = tabStyle.Render(l)
		}
	}
	return strings.Join(parts, "│")
}

func (m *Model) renderStatusBar() string {
	var parts []string
	if m.loading {
		parts = append(parts, faintStyle.Render("loading..."))
	}
	if m.coord.Busy() {
		parts = append(parts, warnStyle.Render("updating status..."))
	}
	for _, t := range m.toasts {
		switch t.level {
		case view.NoticeError:
			parts = append(parts, errStyle.Render(t.text))
		case view.NoticeWarning:
			parts = append(parts, warnStyle.Render(t.text))
		case view.NoticeSuccess:
			parts = append(parts, okStyle.Render(t.text))
		default:
			parts = append(parts, t.text)
		}
	}
	if len(parts) == 0 {
		parts = append(parts, faintStyle.Render("r reload · / search · f filter · enter move · q quit"))
	}
	return truncate(strings.Join(parts, "  "), max(0, m.width))
}

func (m *Model) renderList(height int) string {
	visible := m.visibleTickets()

	var b strings.Builder
	countLine := fmt.Sprintf("%d tickets", len(visible))
	if m.filter.Active() {
		countLine += faintStyle.Render(fmt.Sprintf("  (filters: %d statuses, search %q)", m.filter.SelectedCount(), m.filter.Search()))
	}
	b.WriteString(countLine + "\n")

	if m.searching {
		b.WriteString(m.searchInput.View() + "\n")
	} else if m.filter.Search() != "" {
		b.WriteString(faintStyle.Render("search: "+m.filter.Search()) + "\n")
	} else {
		b.WriteString("\n")
	}

	if len(visible) == 0 {
		b.WriteString("\n" + faintStyle.Render("No tickets found. Try adjusting your filters or create a new ticket."))
		return b.String()
	}

	rows := height - 3
	start := 0
	if m.listCursor >= rows {
		start = m.listCursor - rows + 1
	}
	for i := start; i < len(visible) && i-start < rows; i++ {
		t := visible[i]
		cursor := "  "
		if i == m.listCursor {
			cursor = "▸ "
		}
		line := fmt.Sprintf("%s%-10s %s  %s",
			cursor,
			statusBadge(t.Status),
			truncate(t.Title, max(10, m.width-40)),
			faintStyle.Render("#"+fmt.Sprint(t.ID)+" · updated "+ago(t.UpdatedAt)),
		)
		if i == m.listCursor {
			line = selectedRowStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m *Model) renderBoard(height int) string {
	cols := view.Columns(m.cache.Tickets())
	colWidth := m.colWidth()
	hover, hovering := m.drag.HoverStatus()

	rendered := make([]string, len(cols))
	for i, col := range cols {
		var b strings.Builder

		header := fmt.Sprintf("%s (%d)", strings.ToUpper(string(col.Status)), col.Count())
		headerStyle := lipgloss.NewStyle().Bold(true).Foreground(statusColors[col.Status])
		if hovering && hover == col.Status {
			headerStyle = headerStyle.Reverse(true)
		}
		b.WriteString(headerStyle.Render(truncate(header, colWidth-1)) + "\n")
		b.WriteString(faintStyle.Render(strings.Repeat("─", max(1, colWidth-1))) + "\n")

		maxCards := max(1, (height-boardTop+2)/cardHeight)
		for j, t := range col.Tickets {
			if j >= maxCards {
				b.WriteString(faintStyle.Render(fmt.Sprintf("  +%d more", col.Count()-maxCards)) + "\n")
				break
			}
			b.WriteString(m.renderCard(t, colWidth, i == m.boardCol && j == m.boardRow) + "\n")
		}
		rendered[i] = lipgloss.NewStyle().Width(colWidth).Render(b.String())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m *Model) renderCard(t model.Ticket, colWidth int, selected bool) string {
	inner := colWidth - 4
	line1 := truncate(t.Title, max(1, inner))
	line2 := truncate(fmt.Sprintf("#%d · %s", t.ID, ago(t.UpdatedAt)), max(1, inner))

	style := cardStyle.Width(colWidth - 2)
	if selected {
		style = style.BorderForeground(statusColors[t.Status])
	}
	if m.drag.Active() && m.drag.TicketID() == t.ID {
		style = style.Faint(true)
	}
	return style.Render(line1 + "\n" + faintStyle.Render(line2))
}

func (m *Model) renderForm() string {
	f := &m.form
	var b strings.Builder
	b.WriteString("New ticket\n\n")

	b.WriteString("Title\n" + f.title.View() + "\n")
	if f.errors[fieldTitle] != "" {
		b.WriteString(errStyle.Render(f.errors[fieldTitle]) + "\n")
	}
	b.WriteString("\nDescription\n" + f.description.View() + "\n")
	if f.errors[fieldDescription] != "" {
		b.WriteString(errStyle.Render(f.errors[fieldDescription]) + "\n")
	}
	b.WriteString("\nContact information\n" + f.contact.View() + "\n")
	if f.errors[fieldContact] != "" {
		b.WriteString(errStyle.Render(f.errors[fieldContact]) + "\n")
	}

	b.WriteString("\n")
	if f.submitting {
		b.WriteString(faintStyle.Render("Creating..."))
	} else {
		b.WriteString(faintStyle.Render("tab next field · ctrl+s create · esc cancel"))
	}
	return b.String()
}

func (m *Model) renderMoveMenu() string {
	menu := m.menu
	var b strings.Builder
	b.WriteString("Move " + truncate(menu.title, 40) + " to:\n\n")
	for i, s := range menu.targets {
		cursor := "  "
		if i == menu.cursor {
			cursor = "▸ "
		}
		b.WriteString(fmt.Sprintf("%s%d. %s\n", cursor, i+1, statusBadge(s)))
	}
	b.WriteString("\n" + faintStyle.Render("enter move · esc cancel"))
	return modalStyle.Render(b.String())
}

func (m *Model) renderFilterMenu() string {
	var b strings.Builder
	b.WriteString("Filter by status\n\n")
	for i, s := range model.Statuses() {
		cursor := "  "
		if i == m.filterCursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.filter.StatusSelected(s) {
			mark = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, statusBadge(s)))
	}
	b.WriteString("\n" + faintStyle.Render("space toggle · c clear · esc close"))
	return modalStyle.Render(b.String())
}

func truncate(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	if w == 1 {
		return "…"
	}
	return string(r[:w-1]) + "…"
}

func ago(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
	return t.Format("Jan 2")
}
