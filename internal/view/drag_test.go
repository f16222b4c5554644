package view

import (
	"testing"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

func TestDragDropToOtherColumn(t *testing.T) {
	var d Drag
	d.Start(7, model.TicketStatusPending)
	id, ok := d.Drop(model.TicketStatusAccepted)
	if !ok || id != 7 {
		t.Fatalf("drop = (%d, %v)", id, ok)
	}
	if d.Active() {
		t.Fatal("drag still active after drop")
	}
}

func TestDragDropOnSameColumnRejected(t *testing.T) {
	var d Drag
	d.Start(7, model.TicketStatusPending)
	if _, ok := d.Drop(model.TicketStatusPending); ok {
		t.Fatal("same-column drop accepted")
	}
	// Маркеры сброшены даже при отклонённом drop.
	if d.Active() {
		t.Fatal("drag still active after rejected drop")
	}
}

func TestDragDropOnUnknownTargetRejected(t *testing.T) {
	var d Drag
	d.Start(7, model.TicketStatusPending)
	if _, ok := d.Drop(model.TicketStatus("archived")); ok {
		t.Fatal("unknown target accepted")
	}
	if d.Active() {
		t.Fatal("drag still active")
	}
}

func TestDragDropWithoutStart(t *testing.T) {
	var d Drag
	if _, ok := d.Drop(model.TicketStatusAccepted); ok {
		t.Fatal("drop without active drag accepted")
	}
}

func TestDragHover(t *testing.T) {
	var d Drag
	// Hover до начала жеста игнорируется.
	d.Hover(model.TicketStatusResolved)
	if _, ok := d.HoverStatus(); ok {
		t.Fatal("hover set on inactive drag")
	}

	d.Start(1, model.TicketStatusPending)
	d.Hover(model.TicketStatusResolved)
	if s, ok := d.HoverStatus(); !ok || s != model.TicketStatusResolved {
		t.Fatalf("hover = (%s, %v)", s, ok)
	}
	d.ClearHover()
	if _, ok := d.HoverStatus(); ok {
		t.Fatal("hover survived ClearHover")
	}
}

func TestDragCancel(t *testing.T) {
	var d Drag
	d.Start(1, model.TicketStatusPending)
	d.Hover(model.TicketStatusAccepted)
	d.Cancel()
	if d.Active() || d.TicketID() != 0 {
		t.Fatal("cancel did not reset state")
	}
	if _, ok := d.HoverStatus(); ok {
		t.Fatal("hover survived cancel")
	}
}
