package model

import (
	"regexp"
	"strings"

	"github.com/psds-microservice/helpdesk-service/internal/errs"
)

const (
	TitleMinLen       = 3
	TitleMaxLen       = 200
	DescriptionMinLen = 10
	DescriptionMaxLen = 1000
	ContactMaxLen     = 100
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9]{0,15}$`)
	// символы форматирования телефона, отбрасываемые перед проверкой
	phoneNoiseRe = regexp.MustCompile(`[\s\-()]`)
)

func ValidateTitle(title string) error {
	title = strings.TrimSpace(title)
	switch {
	case title == "":
		return &errs.ValidationError{Field: "title", Message: "Title is required."}
	case len(title) < TitleMinLen:
		return &errs.ValidationError{Field: "title", Message: "Title must be at least 3 characters."}
	case len(title) > TitleMaxLen:
		return &errs.ValidationError{Field: "title", Message: "Title cannot exceed 200 characters."}
	}
	return nil
}

func ValidateDescription(description string) error {
	description = strings.TrimSpace(description)
	switch {
	case description == "":
		return &errs.ValidationError{Field: "description", Message: "Description is required."}
	case len(description) < DescriptionMinLen:
		return &errs.ValidationError{Field: "description", Message: "Description must be at least 10 characters."}
	case len(description) > DescriptionMaxLen:
		return &errs.ValidationError{Field: "description", Message: "Description cannot exceed 1000 characters."}
	}
	return nil
}

// ValidateContact принимает email или телефон (с пробелами, скобками и дефисами).
func ValidateContact(contact string) error {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return &errs.ValidationError{Field: "contact_information", Message: "Contact Information is required."}
	}
	if len(contact) > ContactMaxLen {
		return &errs.ValidationError{Field: "contact_information", Message: "Contact Information cannot exceed 100 characters."}
	}
	if emailRe.MatchString(contact) {
		return nil
	}
	if phoneRe.MatchString(phoneNoiseRe.ReplaceAllString(contact, "")) {
		return nil
	}
	return &errs.ValidationError{Field: "contact_information", Message: "Please enter a valid email address or phone number."}
}

// ValidateNewTicket проверяет все поля новой заявки, возвращает первую ошибку.
func ValidateNewTicket(title, description, contact string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if err := ValidateDescription(description); err != nil {
		return err
	}
	return ValidateContact(contact)
}
