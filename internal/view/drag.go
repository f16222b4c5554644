package view

import "github.com/psds-microservice/helpdesk-service/internal/model"

// Drag — состояние жеста перетаскивания карточки между колонками. Чистая
// логика без экранных координат: адаптер ввода переводит позиции мыши в
// Start/Hover/Drop, а решение "выливается ли жест в переход" принимается тут.
type Drag struct {
	active   bool
	ticketID uint64
	from     model.TicketStatus
	hover    model.TicketStatus
	hasHover bool
}

// Start начинает перетаскивание тикета из его текущей колонки.
func (d *Drag) Start(id uint64, from model.TicketStatus) {
	d.active = true
	d.ticketID = id
	d.from = from
	d.hasHover = false
}

func (d *Drag) Active() bool {
	return d.active
}

func (d *Drag) TicketID() uint64 {
	return d.ticketID
}

// Hover отмечает колонку под курсором (подсветка цели).
func (d *Drag) Hover(status model.TicketStatus) {
	if !d.active {
		return
	}
	d.hover = status
	d.hasHover = true
}

// ClearHover гасит подсветку (курсор ушёл за пределы колонок).
func (d *Drag) ClearHover() {
	d.hasHover = false
}

// HoverStatus возвращает подсвеченную колонку, если она есть.
func (d *Drag) HoverStatus() (model.TicketStatus, bool) {
	if !d.active || !d.hasHover {
		return "", false
	}
	return d.hover, true
}

// Drop завершает жест. Вся визуальная разметка (подсветка цели, маркер
// "тащится") сбрасывается безусловно; переход запрашивается только когда цель
// распознана и отличается от исходной колонки.
func (d *Drag) Drop(target model.TicketStatus) (uint64, bool) {
	id := d.ticketID
	from := d.from
	active := d.active
	d.Cancel()
	if !active || !target.Valid() || target == from {
		return 0, false
	}
	return id, true
}

// Cancel сбрасывает жест без перехода (escape, потеря захвата, drag-end).
func (d *Drag) Cancel() {
	*d = Drag{}
}
