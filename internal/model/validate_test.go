package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/psds-microservice/helpdesk-service/internal/errs"
)

func fieldOf(t *testing.T, err error) string {
	t.Helper()
	var ve *errs.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("not a validation error: %v", err)
	}
	return ve.Field
}

func TestValidateTitle(t *testing.T) {
	cases := []struct {
		title string
		ok    bool
	}{
		{"", false},
		{"   ", false},
		{"ab", false},
		{"abc", true},
		{strings.Repeat("x", 200), true},
		{strings.Repeat("x", 201), false},
		{"  ok title  ", true},
	}
	for _, tc := range cases {
		err := ValidateTitle(tc.title)
		if (err == nil) != tc.ok {
			t.Errorf("ValidateTitle(%q) = %v, want ok=%v", tc.title, err, tc.ok)
		}
		if err != nil && fieldOf(t, err) != "title" {
			t.Errorf("wrong field for %q", tc.title)
		}
	}
}

func TestValidateDescription(t *testing.T) {
	cases := []struct {
		desc string
		ok   bool
	}{
		{"", false},
		{"short", false},
		{"123456789", false},
		{"1234567890", true},
		{strings.Repeat("x", 1000), true},
		{strings.Repeat("x", 1001), false},
	}
	for _, tc := range cases {
		err := ValidateDescription(tc.desc)
		if (err == nil) != tc.ok {
			t.Errorf("ValidateDescription(%d chars) = %v, want ok=%v", len(tc.desc), err, tc.ok)
		}
	}
}

func TestValidateContact(t *testing.T) {
	cases := []struct {
		contact string
		ok      bool
	}{
		{"", false},
		{"user@example.com", true},
		{"user@example", false},
		{"user example.com", false},
		{"@example.com", false},
		{"+79991234567", true},
		{"8 (999) 123-45-67", true},
		{"123", true},
		{"+", false},
		{"not a contact", false},
		{strings.Repeat("a", 90) + "@example.com", false},
	}
	for _, tc := range cases {
		err := ValidateContact(tc.contact)
		if (err == nil) != tc.ok {
			t.Errorf("ValidateContact(%q) = %v, want ok=%v", tc.contact, err, tc.ok)
		}
	}
}

func TestValidateNewTicketReturnsFirstError(t *testing.T) {
	err := ValidateNewTicket("", "", "")
	if fieldOf(t, err) != "title" {
		t.Fatalf("first error field = %s", fieldOf(t, err))
	}
	err = ValidateNewTicket("valid title", "short", "")
	if fieldOf(t, err) != "description" {
		t.Fatalf("second error field = %s", fieldOf(t, err))
	}
	err = ValidateNewTicket("valid title", "long enough description", "bad contact")
	if fieldOf(t, err) != "contact_information" {
		t.Fatalf("third error field = %s", fieldOf(t, err))
	}
	if err := ValidateNewTicket("valid title", "long enough description", "user@example.com"); err != nil {
		t.Fatalf("valid ticket rejected: %v", err)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range Statuses() {
		if !s.Valid() {
			t.Errorf("%s reported invalid", s)
		}
	}
	if TicketStatus("archived").Valid() {
		t.Error("unknown status reported valid")
	}
	if TicketStatus("").Valid() {
		t.Error("empty status reported valid")
	}
}
