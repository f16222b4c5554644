package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/psds-microservice/helpdesk-service/internal/model"
	"github.com/psds-microservice/helpdesk-service/internal/view"
)

// Геометрия доски. Используется и рендером, и hit-тестом мыши — при изменении
// разметки менять оба места не нужно.
const (
	// boardTop — строка экрана, с которой начинаются карточки:
	// вкладки, пустая строка, заголовки колонок, разделитель.
	boardTop = 4
	// cardHeight — фиксированная высота карточки (рамка + 2 строки).
	cardHeight = 4
)

func (m *Model) colWidth() int {
	w := m.width / 4
	if w < 8 {
		w = 8
	}
	return w
}

// columnAt возвращает статус колонки под координатой X.
func (m *Model) columnAt(x int) (model.TicketStatus, bool) {
	statuses := model.Statuses()
	i := x / m.colWidth()
	if x < 0 || i < 0 || i >= len(statuses) {
		return "", false
	}
	return statuses[i], true
}

// cardAt возвращает тикет под координатами (X, Y), если там карточка.
func (m *Model) cardAt(x, y int) (model.Ticket, bool) {
	status, ok := m.columnAt(x)
	if !ok || y < boardTop {
		return model.Ticket{}, false
	}
	row := (y - boardTop) / cardHeight
	for _, col := range view.Columns(m.cache.Tickets()) {
		if col.Status != status {
			continue
		}
		if row < len(col.Tickets) {
			return col.Tickets[row], true
		}
	}
	return model.Ticket{}, false
}

// handleMouse — адаптер жеста перетаскивания: нажатие поднимает карточку,
// движение подсвечивает колонку под курсором, отпускание — drop. Вся
// подсветка снимается на drop и cancel независимо от того, вылился ли жест
// в переход (и от того, принял ли его координатор).
func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.tab != tabBoard || m.menu != nil || m.filterOpen {
		return nil
	}
	switch {
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		if t, ok := m.cardAt(msg.X, msg.Y); ok {
			m.drag.Start(t.ID, t.Status)
			m.selectCard(t)
		}
	case msg.Action == tea.MouseActionMotion:
		if !m.drag.Active() {
			return nil
		}
		if status, ok := m.columnAt(msg.X); ok {
			m.drag.Hover(status)
		} else {
			m.drag.ClearHover()
		}
	case msg.Action == tea.MouseActionRelease:
		if !m.drag.Active() {
			return nil
		}
		target, onBoard := m.columnAt(msg.X)
		if !onBoard {
			m.drag.Cancel()
			return nil
		}
		id, ok := m.drag.Drop(target)
		if !ok {
			return nil
		}
		return m.startTransition(id, target)
	}
	return nil
}

// selectCard переводит курсор доски на карточку.
func (m *Model) selectCard(t model.Ticket) {
	for i, col := range view.Columns(m.cache.Tickets()) {
		if col.Status != t.Status {
			continue
		}
		for j := range col.Tickets {
			if col.Tickets[j].ID == t.ID {
				m.boardCol = i
				m.boardRow = j
				return
			}
		}
	}
}
