package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/psds-microservice/helpdesk-service/internal/client"
	"github.com/psds-microservice/helpdesk-service/internal/model"
	"github.com/psds-microservice/helpdesk-service/internal/view"
)

// tab — активное представление (как вкладки исходного SPA).
type tab int

const (
	tabCreate tab = iota
	tabList
	tabBoard
)

// ticketsLoadedMsg — результат перезагрузки списка.
type ticketsLoadedMsg struct {
	tickets []model.Ticket
	err     error
}

// transitionDoneMsg — результат сетевого вызова смены статуса.
type transitionDoneMsg struct {
	ticket *model.Ticket
	err    error
}

// releaseMsg приходит по истечении cooldown координатора.
type releaseMsg struct{}

// createDoneMsg — результат отправки формы.
type createDoneMsg struct {
	ticket *model.Ticket
	err    error
}

// toastExpiredMsg гасит уведомление по таймеру.
type toastExpiredMsg struct {
	id int
}

type toast struct {
	id    int
	level view.NoticeLevel
	text  string
}

// moveMenu — клавиатурный путь смены статуса: список целевых статусов
// (все, кроме текущего) для выбранного тикета.
type moveMenu struct {
	ticketID uint64
	title    string
	targets  []model.TicketStatus
	cursor   int
}

// Model — корневая модель bubbletea. Весь пакет view живёт внутри неё и
// трогается только из Update — это и есть однопоточный событийный контур,
// на который рассчитан координатор.
type Model struct {
	client *client.Client
	cache  *view.Cache
	coord  *view.Coordinator
	filter *view.Filter
	drag   view.Drag

	tab     tab
	width   int
	height  int
	ready   bool
	loading bool

	// list view
	listCursor  int
	searchInput textinput.Model
	searching   bool

	// status filter overlay
	filterOpen   bool
	filterCursor int

	// board view
	boardCol int
	boardRow int
	menu     *moveMenu

	form createForm

	toasts      []toast
	nextToastID int

	keys keyMap
}

func New(cl *client.Client) *Model {
	cache := view.NewCache()
	search := textinput.New()
	search.Placeholder = "search by title"
	search.Prompt = "/ "
	search.CharLimit = 200
	return &Model{
		client:      cl,
		cache:       cache,
		coord:       view.NewCoordinator(cache),
		filter:      view.NewFilter(),
		searchInput: search,
		form:        newCreateForm(),
		keys:        defaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), textinput.Blink)
}

func (m *Model) loadCmd() tea.Cmd {
	m.loading = true
	cl := m.client
	return func() tea.Msg {
		tickets, err := cl.List(context.Background(), client.ListOptions{})
		return ticketsLoadedMsg{tickets: tickets, err: err}
	}
}

func transitionCmd(cl *client.Client, id uint64, target model.TicketStatus) tea.Cmd {
	return func() tea.Msg {
		t, err := cl.UpdateStatus(context.Background(), id, target)
		return transitionDoneMsg{ticket: t, err: err}
	}
}

func createCmd(cl *client.Client, req client.CreateTicketRequest) tea.Cmd {
	return func() tea.Msg {
		t, err := cl.Create(context.Background(), req)
		return createDoneMsg{ticket: t, err: err}
	}
}

// startTransition — единственная точка входа для смены статуса, каким бы
// жестом она ни была вызвана. Возвращает nil, когда координатор занят:
// попытка отброшена, сетевой запрос не уходит.
func (m *Model) startTransition(id uint64, target model.TicketStatus) tea.Cmd {
	if _, ok := m.coord.Begin(id, target); !ok {
		return nil
	}
	return transitionCmd(m.client, id, target)
}

func (m *Model) pushToast(level view.NoticeLevel, text string) tea.Cmd {
	m.nextToastID++
	id := m.nextToastID
	m.toasts = append(m.toasts, toast{id: id, level: level, text: text})
	return tea.Tick(view.NoticeDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}

func (m *Model) pushNotice(n view.Notice) tea.Cmd {
	return m.pushToast(n.Level, n.Text)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.searchInput.Width = max(10, m.width-20)
		m.form.resize(m.width)
		return m, nil

	case ticketsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m, m.pushToast(view.NoticeError, "Failed to load tickets: "+msg.err.Error())
		}
		// Перезагрузка вне мьютекса координатора: последний пришедший
		// ответ просто замещает кэш целиком.
		m.cache.Replace(msg.tickets)
		m.clampCursors()
		if m.cache.Len() > 0 && !m.coord.Busy() {
			return m, m.pushToast(view.NoticeSuccess, "Loaded "+strconv.Itoa(m.cache.Len())+" tickets")
		}
		return m, nil

	case transitionDoneMsg:
		release := tea.Tick(m.coord.Cooldown(), func(time.Time) tea.Msg {
			return releaseMsg{}
		})
		tr := m.coord.Inflight()
		if msg.err != nil {
			notice := m.coord.Fail(msg.err)
			// Откат визуального состояния: выделение возвращается на
			// исходную колонку несостоявшегося перехода.
			m.selectColumn(tr.From)
			return m, tea.Batch(m.pushNotice(notice), release)
		}
		notice := m.coord.Succeed(msg.ticket)
		m.selectColumn(msg.ticket.Status)
		m.clampCursors()
		return m, tea.Batch(m.pushNotice(notice), release)

	case releaseMsg:
		m.coord.Release()
		return m, nil

	case createDoneMsg:
		m.form.submitting = false
		if msg.err != nil {
			return m, m.pushToast(view.NoticeError, "Failed to create ticket: "+msg.err.Error())
		}
		m.form.reset()
		return m, tea.Batch(
			m.pushToast(view.NoticeSuccess, "Ticket created successfully!"),
			m.loadCmd(),
		)

	case toastExpiredMsg:
		for i := range m.toasts {
			if m.toasts[i].id == msg.id {
				m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
				break
			}
		}
		return m, nil

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Модальные состояния перехватывают ввод целиком.
	if m.menu != nil {
		return m, m.handleMenuKey(msg)
	}
	if m.filterOpen {
		return m, m.handleFilterKey(msg)
	}
	if m.searching {
		return m, m.handleSearchKey(msg)
	}
	if m.tab == tabCreate {
		return m.handleFormKey(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reload):
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.TabCreate):
		m.tab = tabCreate
		return m, m.form.focusCmd()
	case key.Matches(msg, m.keys.TabList):
		m.tab = tabList
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.TabBoard):
		m.tab = tabBoard
		return m, m.loadCmd()
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % 3
		if m.tab == tabCreate {
			return m, m.form.focusCmd()
		}
		return m, m.loadCmd()
	}

	switch m.tab {
	case tabList:
		return m, m.handleListKey(msg)
	case tabBoard:
		return m, m.handleBoardKey(msg)
	}
	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	visible := m.visibleTickets()
	switch {
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.searchInput.SetValue(m.filter.Search())
		return m.searchInput.Focus()
	case key.Matches(msg, m.keys.FilterMenu):
		m.filterOpen = true
		m.filterCursor = 0
		return nil
	case key.Matches(msg, m.keys.ClearFilters):
		m.filter.Clear()
		m.searchInput.SetValue("")
		m.listCursor = 0
		return nil
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
		return nil
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(visible)-1 {
			m.listCursor++
		}
		return nil
	case key.Matches(msg, m.keys.Select):
		if m.listCursor < len(visible) {
			m.openMoveMenu(visible[m.listCursor])
		}
		return nil
	}
	return nil
}

func (m *Model) handleBoardKey(msg tea.KeyMsg) tea.Cmd {
	cols := view.Columns(m.cache.Tickets())
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.boardCol > 0 {
			m.boardCol--
			m.clampCursors()
		}
		return nil
	case key.Matches(msg, m.keys.Right):
		if m.boardCol < len(cols)-1 {
			m.boardCol++
			m.clampCursors()
		}
		return nil
	case key.Matches(msg, m.keys.Up):
		if m.boardRow > 0 {
			m.boardRow--
		}
		return nil
	case key.Matches(msg, m.keys.Down):
		if m.boardRow < len(cols[m.boardCol].Tickets)-1 {
			m.boardRow++
		}
		return nil
	case key.Matches(msg, m.keys.Select):
		if m.boardRow < len(cols[m.boardCol].Tickets) {
			m.openMoveMenu(cols[m.boardCol].Tickets[m.boardRow])
		}
		return nil
	case key.Matches(msg, m.keys.Back):
		m.drag.Cancel()
		return nil
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.searching = false
		m.searchInput.Blur()
		return nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.filter.SetSearch(m.searchInput.Value())
	m.listCursor = 0
	return cmd
}

func (m *Model) handleFilterKey(msg tea.KeyMsg) tea.Cmd {
	statuses := model.Statuses()
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.FilterMenu):
		m.filterOpen = false
	case key.Matches(msg, m.keys.Up):
		if m.filterCursor > 0 {
			m.filterCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.filterCursor < len(statuses)-1 {
			m.filterCursor++
		}
	case key.Matches(msg, m.keys.Select):
		m.filter.ToggleStatus(statuses[m.filterCursor])
		m.listCursor = 0
	case key.Matches(msg, m.keys.ClearFilters):
		m.filter.Clear()
		m.searchInput.SetValue("")
		m.listCursor = 0
	}
	return nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	menu := m.menu
	switch {
	case key.Matches(msg, m.keys.Back):
		m.menu = nil
		return nil
	case key.Matches(msg, m.keys.Up):
		if menu.cursor > 0 {
			menu.cursor--
		}
		return nil
	case key.Matches(msg, m.keys.Down):
		if menu.cursor < len(menu.targets)-1 {
			menu.cursor++
		}
		return nil
	case key.Matches(msg, m.keys.Select):
		target := menu.targets[menu.cursor]
		m.menu = nil
		return m.startTransition(menu.ticketID, target)
	}
	// Быстрый выбор цифрой, как в диалоге исходного UI.
	switch msg.String() {
	case "1", "2", "3":
		i := int(msg.String()[0] - '1')
		if i < len(menu.targets) {
			target := menu.targets[i]
			m.menu = nil
			return m.startTransition(menu.ticketID, target)
		}
	}
	return nil
}

func (m *Model) openMoveMenu(t model.Ticket) {
	m.menu = &moveMenu{
		ticketID: t.ID,
		title:    t.Title,
		targets:  view.MoveTargets(t.Status),
	}
}

// visibleTickets — видимое подмножество списка: предикаты фильтра поверх
// порядка кэша.
func (m *Model) visibleTickets() []model.Ticket {
	return m.filter.Visible(m.cache.Tickets())
}

// selectColumn переводит выделение доски на колонку статуса.
func (m *Model) selectColumn(s model.TicketStatus) {
	for i, st := range model.Statuses() {
		if st == s {
			m.boardCol = i
			break
		}
	}
	m.clampCursors()
}

func (m *Model) clampCursors() {
	if n := len(m.visibleTickets()); m.listCursor >= n {
		m.listCursor = max(0, n-1)
	}
	cols := view.Columns(m.cache.Tickets())
	if m.boardCol >= len(cols) {
		m.boardCol = max(0, len(cols)-1)
	}
	if len(cols) > 0 {
		if n := len(cols[m.boardCol].Tickets); m.boardRow >= n {
			m.boardRow = max(0, n-1)
		}
	}
}

