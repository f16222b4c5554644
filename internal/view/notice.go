package view

import "time"

// NoticeLevel — тип всплывающего уведомления.
type NoticeLevel int

const (
	NoticeSuccess NoticeLevel = iota
	NoticeError
	NoticeWarning
	NoticeInfo
)

// NoticeDuration — сколько уведомление остаётся на экране.
const NoticeDuration = 5 * time.Second

// Notice — автоисчезающее уведомление пользователю. Каждый исход операции
// (успех или сбой) порождает ровно одно такое уведомление — ошибки не глотаются.
type Notice struct {
	Level NoticeLevel
	Text  string
}
