package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/psds-microservice/helpdesk-service/internal/client"
	"github.com/psds-microservice/helpdesk-service/internal/model"
	"github.com/psds-microservice/helpdesk-service/internal/view"
)

const (
	fieldTitle = iota
	fieldDescription
	fieldContact
	fieldCount
)

// createForm — форма новой заявки. Ошибки валидации показываются под
// конкретным полем и не ходят через координатор: это граница формы, а не
// жизненного цикла тикета.
type createForm struct {
	title       textinput.Model
	description textarea.Model
	contact     textinput.Model
	focus       int
	errors      [fieldCount]string
	submitting  bool
}

func newCreateForm() createForm {
	title := textinput.New()
	title.Placeholder = "Brief summary of the issue"
	title.CharLimit = model.TitleMaxLen

	description := textarea.New()
	description.Placeholder = "What happened, where, since when"
	description.CharLimit = model.DescriptionMaxLen
	description.SetHeight(5)

	contact := textinput.New()
	contact.Placeholder = "email or phone"
	contact.CharLimit = model.ContactMaxLen

	f := createForm{
		title:       title,
		description: description,
		contact:     contact,
	}
	f.applyFocus()
	return f
}

func (f *createForm) resize(width int) {
	w := max(20, width-8)
	f.title.Width = w
	f.contact.Width = w
	f.description.SetWidth(w)
}

func (f *createForm) applyFocus() {
	f.title.Blur()
	f.description.Blur()
	f.contact.Blur()
	switch f.focus {
	case fieldTitle:
		f.title.Focus()
	case fieldDescription:
		f.description.Focus()
	case fieldContact:
		f.contact.Focus()
	}
}

func (f *createForm) focusCmd() tea.Cmd {
	f.applyFocus()
	return textinput.Blink
}

// validateField проверяет одно поле (валидация по уходу с поля, как в
// исходной форме).
func (f *createForm) validateField(i int) {
	switch i {
	case fieldTitle:
		f.errors[i] = validationText(model.ValidateTitle(f.title.Value()))
	case fieldDescription:
		f.errors[i] = validationText(model.ValidateDescription(f.description.Value()))
	case fieldContact:
		f.errors[i] = validationText(model.ValidateContact(f.contact.Value()))
	}
}

// validate проверяет все поля; true, когда форма готова к отправке.
func (f *createForm) validate() bool {
	for i := 0; i < fieldCount; i++ {
		f.validateField(i)
	}
	return f.errors[fieldTitle] == "" && f.errors[fieldDescription] == "" && f.errors[fieldContact] == ""
}

func (f *createForm) request() client.CreateTicketRequest {
	return client.CreateTicketRequest{
		Title:              strings.TrimSpace(f.title.Value()),
		Description:        strings.TrimSpace(f.description.Value()),
		ContactInformation: strings.TrimSpace(f.contact.Value()),
	}
}

func (f *createForm) reset() {
	f.title.SetValue("")
	f.description.SetValue("")
	f.contact.SetValue("")
	f.errors = [fieldCount]string{}
	f.focus = fieldTitle
	f.applyFocus()
}

func validationText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &m.form
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		if f.submitting {
			return m, nil
		}
		if !f.validate() {
			return m, m.pushToast(view.NoticeWarning, "Please correct the errors and try again.")
		}
		f.submitting = true
		return m, createCmd(m.client, f.request())
	case msg.String() == "tab":
		f.validateField(f.focus)
		f.focus = (f.focus + 1) % fieldCount
		return m, f.focusCmd()
	case msg.String() == "shift+tab":
		f.validateField(f.focus)
		f.focus = (f.focus + fieldCount - 1) % fieldCount
		return m, f.focusCmd()
	case msg.String() == "esc":
		m.tab = tabList
		return m, m.loadCmd()
	case msg.String() == "enter" && f.focus != fieldDescription:
		// Enter в однострочных полях ведёт к следующему, в textarea —
		// перенос строки.
		f.validateField(f.focus)
		f.focus = (f.focus + 1) % fieldCount
		return m, f.focusCmd()
	}

	var cmd tea.Cmd
	switch f.focus {
	case fieldTitle:
		f.title, cmd = f.title.Update(msg)
	case fieldDescription:
		f.description, cmd = f.description.Update(msg)
	case fieldContact:
		f.contact, cmd = f.contact.Update(msg)
	}
	return m, cmd
}
