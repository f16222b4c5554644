package errs

import "errors"

var ErrTicketNotFound = errors.New("ticket not found")

// ValidationError — ошибка валидации одного поля формы. Показывается
// пользователю рядом с полем, а не общим уведомлением.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
