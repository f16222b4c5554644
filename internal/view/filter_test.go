package view

import (
	"reflect"
	"testing"
	"time"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

func filterFixture() []model.Ticket {
	now := time.Now()
	return []model.Ticket{
		tkt(1, "Printer on fire", model.TicketStatusPending, now),
		tkt(2, "VPN down again", model.TicketStatusAccepted, now.Add(-time.Minute)),
		tkt(3, "Replace printer cartridge", model.TicketStatusResolved, now.Add(-2*time.Minute)),
		tkt(4, "New laptop request", model.TicketStatusPending, now.Add(-3*time.Minute)),
	}
}

func ids(tickets []model.Ticket) []uint64 {
	out := make([]uint64, len(tickets))
	for i, t := range tickets {
		out[i] = t.ID
	}
	return out
}

func TestFilterEmptyReturnsInputUnchanged(t *testing.T) {
	in := filterFixture()
	f := NewFilter()
	got := f.Visible(in)
	if !reflect.DeepEqual(got, in) {
		t.Fatal("empty filter changed the list")
	}
}

func TestFilterStatusSubset(t *testing.T) {
	f := NewFilter()
	f.ToggleStatus(model.TicketStatusPending)
	got := ids(f.Visible(filterFixture()))
	if !reflect.DeepEqual(got, []uint64{1, 4}) {
		t.Fatalf("got %v", got)
	}

	// Второй статус расширяет набор, порядок входа сохраняется.
	f.ToggleStatus(model.TicketStatusResolved)
	got = ids(f.Visible(filterFixture()))
	if !reflect.DeepEqual(got, []uint64{1, 3, 4}) {
		t.Fatalf("got %v", got)
	}

	// Повторный toggle снимает статус.
	f.ToggleStatus(model.TicketStatusPending)
	got = ids(f.Visible(filterFixture()))
	if !reflect.DeepEqual(got, []uint64{3}) {
		t.Fatalf("got %v", got)
	}
}

func TestFilterSearchTitleOnly(t *testing.T) {
	f := NewFilter()
	f.SetSearch("printer")
	got := ids(f.Visible(filterFixture()))
	if !reflect.DeepEqual(got, []uint64{1, 3}) {
		t.Fatalf("got %v", got)
	}

	// Регистр не важен.
	f.SetSearch("PRINTER")
	got = ids(f.Visible(filterFixture()))
	if !reflect.DeepEqual(got, []uint64{1, 3}) {
		t.Fatalf("got %v", got)
	}

	// По описанию поиск не ищет.
	f.SetSearch("description")
	if got := f.Visible(filterFixture()); len(got) != 0 {
		t.Fatalf("matched description: %v", ids(got))
	}
}

func TestFilterStatusAndSearchCompose(t *testing.T) {
	f := NewFilter()
	f.ToggleStatus(model.TicketStatusPending)
	f.SetSearch("printer")
	got := ids(f.Visible(filterFixture()))
	if !reflect.DeepEqual(got, []uint64{1}) {
		t.Fatalf("got %v", got)
	}
}

func TestFilterClear(t *testing.T) {
	f := NewFilter()
	f.ToggleStatus(model.TicketStatusRejected)
	f.SetSearch("  vpn  ")
	if !f.Active() || f.SelectedCount() != 1 || f.Search() != "vpn" {
		t.Fatalf("filter state: active=%v count=%d search=%q", f.Active(), f.SelectedCount(), f.Search())
	}
	f.Clear()
	if f.Active() {
		t.Fatal("still active after Clear")
	}
	in := filterFixture()
	if !reflect.DeepEqual(f.Visible(in), in) {
		t.Fatal("cleared filter changed the list")
	}
}
