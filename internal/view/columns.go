package view

import "github.com/psds-microservice/helpdesk-service/internal/model"

// Column — одна колонка доски.
type Column struct {
	Status  model.TicketStatus
	Tickets []model.Ticket
}

func (c Column) Count() int {
	return len(c.Tickets)
}

// Columns раскладывает тикеты по колонкам в фиксированном порядке статусов.
// Тикеты с нераспознанным статусом не попадают ни в одну колонку.
func Columns(tickets []model.Ticket) []Column {
	order := model.Statuses()
	byStatus := make(map[model.TicketStatus]int, len(order))
	cols := make([]Column, len(order))
	for i, s := range order {
		cols[i] = Column{Status: s}
		byStatus[s] = i
	}
	for _, t := range tickets {
		i, ok := byStatus[t.Status]
		if !ok {
			continue
		}
		cols[i].Tickets = append(cols[i].Tickets, t)
	}
	return cols
}

// MoveTargets — статусы, в которые можно перевести тикет из текущего
// (все, кроме него самого). Клавиатурный путь смены статуса.
func MoveTargets(current model.TicketStatus) []model.TicketStatus {
	var out []model.TicketStatus
	for _, s := range model.Statuses() {
		if s != current {
			out = append(out, s)
		}
	}
	return out
}
