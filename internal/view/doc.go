// Package view — клиентское состояние списка и доски тикетов: кэш последней
// загрузки, координатор смены статусов, фильтр/поиск и состояние перетаскивания.
//
// Пакет рассчитан на однопоточное событийное использование (цикл Update в
// bubbletea): внутренних блокировок нет, все методы должны вызываться из одной
// горутины. Сетевые вызовы тут не выполняются — пакет готовит и применяет их
// результаты.
package view
