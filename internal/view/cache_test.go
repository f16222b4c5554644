package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

func tkt(id uint64, title string, status model.TicketStatus, updated time.Time) model.Ticket {
	return model.Ticket{
		ID:                 id,
		Title:              title,
		Description:        "description long enough",
		ContactInformation: "a@b.com",
		Status:             status,
		CreatedAt:          updated.Add(-time.Hour),
		UpdatedAt:          updated,
	}
}

func TestCacheReplaceSortsByUpdatedAtDesc(t *testing.T) {
	now := time.Now()
	c := NewCache()
	c.Replace([]model.Ticket{
		tkt(1, "oldest", model.TicketStatusPending, now.Add(-2*time.Hour)),
		tkt(2, "newest", model.TicketStatusPending, now),
		tkt(3, "middle", model.TicketStatusPending, now.Add(-time.Hour)),
	})
	got := c.Tickets()
	if got[0].ID != 2 || got[1].ID != 3 || got[2].ID != 1 {
		t.Fatalf("wrong order: %d %d %d", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestCacheReplaceIdempotent(t *testing.T) {
	now := time.Now()
	in := []model.Ticket{
		tkt(1, "a", model.TicketStatusPending, now),
		tkt(2, "b", model.TicketStatusAccepted, now.Add(-time.Minute)),
	}
	c := NewCache()
	c.Replace(in)
	first := c.Tickets()
	c.Replace(in)
	second := c.Tickets()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("replace is not idempotent:\n%v\n%v", first, second)
	}
}

func TestCacheReplaceDoesNotAliasInput(t *testing.T) {
	now := time.Now()
	in := []model.Ticket{tkt(1, "a", model.TicketStatusPending, now)}
	c := NewCache()
	c.Replace(in)
	in[0].Title = "mutated"
	got, _ := c.Get(1)
	if got.Title != "a" {
		t.Fatal("cache aliases caller slice")
	}
}

func TestCacheApplyStatusUpdate(t *testing.T) {
	now := time.Now()
	c := NewCache()
	c.Replace([]model.Ticket{
		tkt(1, "a", model.TicketStatusPending, now),
		tkt(2, "b", model.TicketStatusPending, now.Add(-time.Minute)),
	})

	later := now.Add(time.Minute)
	if !c.ApplyStatusUpdate(2, model.TicketStatusAccepted, later) {
		t.Fatal("apply returned false for present id")
	}
	got, _ := c.Get(2)
	if got.Status != model.TicketStatusAccepted || !got.UpdatedAt.Equal(later) {
		t.Fatalf("not applied: %+v", got)
	}

	// Точечное обновление не пересортировывает кэш.
	order := c.Tickets()
	if order[0].ID != 1 || order[1].ID != 2 {
		t.Fatalf("order changed after apply: %d %d", order[0].ID, order[1].ID)
	}
}

func TestCacheApplyStatusUpdateAbsentIsNoop(t *testing.T) {
	c := NewCache()
	c.Replace([]model.Ticket{tkt(1, "a", model.TicketStatusPending, time.Now())})
	before := c.Tickets()
	if c.ApplyStatusUpdate(99, model.TicketStatusAccepted, time.Now()) {
		t.Fatal("apply returned true for absent id")
	}
	if !reflect.DeepEqual(before, c.Tickets()) {
		t.Fatal("cache mutated on absent id")
	}
}

func TestCacheStatusCounts(t *testing.T) {
	now := time.Now()
	c := NewCache()
	c.Replace([]model.Ticket{
		tkt(1, "a", model.TicketStatusPending, now),
		tkt(2, "b", model.TicketStatusPending, now),
		tkt(3, "c", model.TicketStatusResolved, now),
	})
	counts := c.StatusCounts()
	if counts[model.TicketStatusPending] != 2 || counts[model.TicketStatusResolved] != 1 {
		t.Fatalf("wrong counts: %v", counts)
	}
}
