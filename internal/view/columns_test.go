package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

func TestColumnsLayout(t *testing.T) {
	now := time.Now()
	cols := Columns([]model.Ticket{
		tkt(1, "a", model.TicketStatusPending, now),
		tkt(2, "b", model.TicketStatusResolved, now),
		tkt(3, "c", model.TicketStatusPending, now),
		tkt(4, "d", model.TicketStatus("weird"), now),
	})
	if len(cols) != 4 {
		t.Fatalf("columns = %d", len(cols))
	}
	want := []model.TicketStatus{
		model.TicketStatusPending,
		model.TicketStatusAccepted,
		model.TicketStatusResolved,
		model.TicketStatusRejected,
	}
	for i, s := range want {
		if cols[i].Status != s {
			t.Fatalf("column %d is %s, want %s", i, cols[i].Status, s)
		}
	}
	if cols[0].Count() != 2 || cols[1].Count() != 0 || cols[2].Count() != 1 || cols[3].Count() != 0 {
		t.Fatalf("counts: %d %d %d %d", cols[0].Count(), cols[1].Count(), cols[2].Count(), cols[3].Count())
	}
}

func TestColumnsReflectStatusChange(t *testing.T) {
	now := time.Now()
	cache := NewCache()
	cache.Replace([]model.Ticket{tkt(1, "a", model.TicketStatusPending, now)})

	cols := Columns(cache.Tickets())
	if cols[0].Count() != 1 || cols[1].Count() != 0 {
		t.Fatalf("before move: %d %d", cols[0].Count(), cols[1].Count())
	}

	cache.ApplyStatusUpdate(1, model.TicketStatusAccepted, now.Add(time.Second))
	cols = Columns(cache.Tickets())
	if cols[0].Count() != 0 || cols[1].Count() != 1 {
		t.Fatalf("after move: %d %d", cols[0].Count(), cols[1].Count())
	}
}

func TestMoveTargets(t *testing.T) {
	got := MoveTargets(model.TicketStatusAccepted)
	want := []model.TicketStatus{
		model.TicketStatusPending,
		model.TicketStatusResolved,
		model.TicketStatusRejected,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v", got)
	}
}
