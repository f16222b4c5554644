package view

import (
	"fmt"
	"time"

	"github.com/psds-microservice/helpdesk-service/internal/model"
)

// cooldown гасит хвостовые события одного жеста: drag-end и drop по той же
// цели приходят подряд, и без паузы второй из них выглядел бы как новый
// осознанный запрос.
const transitionCooldown = 100 * time.Millisecond

// Transition — одна смена статуса, находящаяся в полёте.
type Transition struct {
	TicketID uint64
	// From — статус на момент запуска, по нему UI откатывает
	// оптимистичную подсветку при сбое.
	From model.TicketStatus
	To   model.TicketStatus
}

// Coordinator сериализует смены статусов: в полёте не бывает больше одного
// запроса на обновление, независимо от того, каким жестом он вызван (drag,
// выпадающий список, клавиатура). Пока занят, новые попытки молча
// отбрасываются — не ставятся в очередь.
//
// Протокол: Begin → (сетевой вызов снаружи) → Succeed или Fail → пауза
// Cooldown() → Release. Кэш меняется только в Succeed и только данными из
// ответа стора; локальный оптимизм никогда не считается финальной правдой.
type Coordinator struct {
	cache    *Cache
	busy     bool
	inflight Transition
}

func NewCoordinator(cache *Cache) *Coordinator {
	return &Coordinator{cache: cache}
}

func (c *Coordinator) Busy() bool {
	return c.busy
}

// Cooldown — пауза между завершением перехода и Release.
func (c *Coordinator) Cooldown() time.Duration {
	return transitionCooldown
}

// Begin начинает переход. Возвращает false, если координатор занят — вызов
// отброшен, сетевой запрос отправлять нельзя. Переход в текущий статус тикета
// легален и тоже уходит на сервер: стор авторитетен в том, считать ли такое
// обновление ошибкой.
func (c *Coordinator) Begin(id uint64, target model.TicketStatus) (Transition, bool) {
	if c.busy {
		return Transition{}, false
	}
	tr := Transition{TicketID: id, To: target}
	if t, ok := c.cache.Get(id); ok {
		tr.From = t.Status
	}
	c.busy = true
	c.inflight = tr
	return tr, true
}

// Succeed применяет ответ стора к кэшу и возвращает уведомление об успехе.
// Координатор остаётся занятым до Release — вызывающий обязан выдержать
// Cooldown().
func (c *Coordinator) Succeed(updated *model.Ticket) Notice {
	if !c.busy {
		return Notice{Level: NoticeInfo, Text: "no transition in flight"}
	}
	c.cache.ApplyStatusUpdate(updated.ID, updated.Status, updated.UpdatedAt)
	title := updated.Title
	if t, ok := c.cache.Get(updated.ID); ok && title == "" {
		title = t.Title
	}
	if title == "" {
		return Notice{Level: NoticeSuccess, Text: fmt.Sprintf("Ticket status updated to %s", updated.Status)}
	}
	return Notice{Level: NoticeSuccess, Text: fmt.Sprintf("%s moved to %s", title, updated.Status)}
}

// Fail оставляет кэш нетронутым и возвращает уведомление об ошибке.
// Откат визуального состояния — забота UI, нужный ему прежний статус лежит в
// Transition.From.
func (c *Coordinator) Fail(err error) Notice {
	if !c.busy {
		return Notice{Level: NoticeInfo, Text: "no transition in flight"}
	}
	return Notice{Level: NoticeError, Text: fmt.Sprintf("Failed to update status: %v", err)}
}

// Inflight возвращает текущий переход; валиден только пока Busy().
func (c *Coordinator) Inflight() Transition {
	return c.inflight
}

// Release снимает занятость. Вызывается по истечении cooldown, а не сразу из
// Succeed/Fail: хвостовые события жеста должны упереться в ещё занятый
// координатор.
func (c *Coordinator) Release() {
	c.busy = false
	c.inflight = Transition{}
}
