package model

import "time"

type TicketStatus string

const (
	TicketStatusPending  TicketStatus = "pending"
	TicketStatusAccepted TicketStatus = "accepted"
	TicketStatusResolved TicketStatus = "resolved"
	TicketStatusRejected TicketStatus = "rejected"
)

// Statuses возвращает все допустимые статусы в порядке колонок доски.
func Statuses() []TicketStatus {
	return []TicketStatus{
		TicketStatusPending,
		TicketStatusAccepted,
		TicketStatusResolved,
		TicketStatusRejected,
	}
}

func (s TicketStatus) Valid() bool {
	switch s {
	case TicketStatusPending, TicketStatusAccepted, TicketStatusResolved, TicketStatusRejected:
		return true
	}
	return false
}

type Ticket struct {
	ID                 uint64       `gorm:"primaryKey" json:"id"`
	Title              string       `gorm:"type:varchar(200);not null" json:"title"`
	Description        string       `gorm:"type:text;not null" json:"description"`
	ContactInformation string       `gorm:"type:varchar(100);not null" json:"contact_information"`
	Status             TicketStatus `gorm:"type:varchar(32);index;not null;default:pending" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"index" json:"updated_at"`
}

// SortFields — поля, по которым разрешена сортировка листинга.
// Всё остальное молча игнорируется (сортировка не применяется).
var SortFields = map[string]bool{
	"created_at": true,
	"updated_at": true,
	"status":     true,
	"title":      true,
}
