package view

import (
	"strings"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

// Filter — предикаты видимости списка: набор статусов и поисковая строка.
// Оба независимы и складываются логическим И. Порядок входа сохраняется —
// сортировку задаёт кэш, а не фильтр.
type Filter struct {
	statuses map[model.TicketStatus]bool
	search   string
}

func NewFilter() *Filter {
	return &Filter{statuses: make(map[model.TicketStatus]bool)}
}

// ToggleStatus включает или исключает статус из набора.
func (f *Filter) ToggleStatus(s model.TicketStatus) {
	if f.statuses[s] {
		delete(f.statuses, s)
		return
	}
	f.statuses[s] = true
}

func (f *Filter) StatusSelected(s model.TicketStatus) bool {
	return f.statuses[s]
}

// SetSearch задаёт поисковую строку (регистр не важен).
func (f *Filter) SetSearch(q string) {
	f.search = strings.TrimSpace(q)
}

func (f *Filter) Search() string {
	return f.search
}

// Clear сбрасывает оба предиката.
func (f *Filter) Clear() {
	f.statuses = make(map[model.TicketStatus]bool)
	f.search = ""
}

// Active сообщает, применён ли хоть один предикат.
func (f *Filter) Active() bool {
	return len(f.statuses) > 0 || f.search != ""
}

// SelectedCount — число отмеченных статусов (бейдж на кнопке фильтра).
func (f *Filter) SelectedCount() int {
	return len(f.statuses)
}

func (f *Filter) matches(t model.Ticket) bool {
	if len(f.statuses) > 0 && !f.statuses[t.Status] {
		return false
	}
	if f.search == "" {
		return true
	}
	// Поиск — подстрока только по заголовку.
	return strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.search))
}

// Visible возвращает видимое подмножество в исходном порядке. Пустой фильтр
// возвращает вход без изменений.
func (f *Filter) Visible(tickets []model.Ticket) []model.Ticket {
	if !f.Active() {
		return tickets
	}
	var out []model.Ticket
	for _, t := range tickets {
		if f.matches(t) {
			out = append(out, t)
		}
	}
	return out
}
