package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

func TestListDecodesEnvelope(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"count":   2,
			"data": []model.Ticket{
				{ID: 1, Title: "a", Status: model.TicketStatusPending, UpdatedAt: time.Now()},
				{ID: 2, Title: "b", Status: model.TicketStatusResolved, UpdatedAt: time.Now()},
			},
		})
	}))
	defer srv.Close()

	tickets, err := New(srv.URL).List(context.Background(), ListOptions{Status: "pending", SortBy: "updated_at", Order: "DESC"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tickets) != 2 || tickets[0].ID != 1 {
		t.Fatalf("tickets: %v", tickets)
	}
	if gotPath != "/tickets?order=DESC&sortBy=updated_at&status=pending" {
		t.Fatalf("path = %s", gotPath)
	}
}

func TestListOmitsEmptyParams(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []model.Ticket{}})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).List(context.Background(), ListOptions{}); err != nil {
		t.Fatalf("list: %v", err)
	}
	if gotPath != "/tickets" {
		t.Fatalf("path = %s", gotPath)
	}
}

func TestUpdateStatusSendsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/tickets/7" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["status"] != "accepted" {
			t.Errorf("body = %v", body)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Ticket updated successfully",
			"data":    model.Ticket{ID: 7, Title: "x", Status: model.TicketStatusAccepted},
		})
	}))
	defer srv.Close()

	got, err := New(srv.URL).UpdateStatus(context.Background(), 7, model.TicketStatusAccepted)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.ID != 7 || got.Status != model.TicketStatusAccepted {
		t.Fatalf("ticket: %+v", got)
	}
}

func TestEnvelopeFailureBecomesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "No data provided for update",
		})
	}))
	defer srv.Close()

	_, err := New(srv.URL).UpdateStatus(context.Background(), 1, model.TicketStatusAccepted)
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T %v", err, err)
	}
	if ce.Status != http.StatusBadRequest || ce.Message != "No data provided for update" {
		t.Fatalf("error: %+v", ce)
	}
}

func TestNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "Ticket not found"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Get(context.Background(), 99)
	var ce *Error
	if !errors.As(err, &ce) || !ce.NotFound() {
		t.Fatalf("err = %v", err)
	}
	if ce.Error() != "Ticket not found" {
		t.Fatalf("message = %q", ce.Error())
	}
}

func TestConnectionErrorNormalized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // соединение гарантированно не установится

	_, err := New(srv.URL).List(context.Background(), ListOptions{})
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T %v", err, err)
	}
	if ce.Message != "Unable to connect to server. Please check your connection." {
		t.Fatalf("message = %q", ce.Message)
	}
	if ce.Status != 0 || ce.Unwrap() == nil {
		t.Fatalf("error: %+v", ce)
	}
}

func TestUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	_, err := New(srv.URL).List(context.Background(), ListOptions{})
	var ce *Error
	if !errors.As(err, &ce) {
		t.Fatalf("err = %T %v", err, err)
	}
	if ce.Status != http.StatusBadGateway || ce.Message != "HTTP 502: Bad Gateway" {
		t.Fatalf("error: %+v", ce)
	}
}
