package view

import (
	"sort"
	"time"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

// Cache — рабочий набор тикетов последней загрузки списка. Единственный
// источник данных для обоих представлений.
type Cache struct {
	tickets []model.Ticket
	index   map[uint64]int
}

func NewCache() *Cache {
	return &Cache{index: make(map[uint64]int)}
}

// Replace атомарно заменяет весь рабочий набор и пересортировывает его по
// убыванию updated_at. Сортировка применяется только здесь, при перезагрузке
// списка — точечные обновления порядок не меняют.
func (c *Cache) Replace(tickets []model.Ticket) {
	c.tickets = make([]model.Ticket, len(tickets))
	copy(c.tickets, tickets)
	sort.SliceStable(c.tickets, func(i, j int) bool {
		return c.tickets[i].UpdatedAt.After(c.tickets[j].UpdatedAt)
	})
	c.index = make(map[uint64]int, len(c.tickets))
	for i := range c.tickets {
		c.index[c.tickets[i].ID] = i
	}
}

func (c *Cache) Get(id uint64) (model.Ticket, bool) {
	i, ok := c.index[id]
	if !ok {
		return model.Ticket{}, false
	}
	return c.tickets[i], true
}

// ApplyStatusUpdate меняет статус и updated_at одной записи на месте.
// Возвращает false (и ничего не делает), если id в кэше нет.
func (c *Cache) ApplyStatusUpdate(id uint64, status model.TicketStatus, updatedAt time.Time) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.tickets[i].Status = status
	c.tickets[i].UpdatedAt = updatedAt
	return true
}

// Tickets возвращает копию рабочего набора в текущем порядке кэша.
func (c *Cache) Tickets() []model.Ticket {
	out := make([]model.Ticket, len(c.tickets))
	copy(out, c.tickets)
	return out
}

func (c *Cache) Len() int {
	return len(c.tickets)
}

// StatusCounts — количество тикетов в каждом статусе (заголовки колонок доски).
func (c *Cache) StatusCounts() map[model.TicketStatus]int {
	counts := make(map[model.TicketStatus]int, 4)
	for i := range c.tickets {
		counts[c.tickets[i].Status]++
	}
	return counts
}
