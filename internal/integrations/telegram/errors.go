package telegram

import "errors"

var (
	// ErrSendFailed возвращается, когда сообщение не удалось отправить
	// Уведомления не критичны: вызывающая сторона логирует и продолжает
	ErrSendFailed = errors.New("telegram notifier: failed to send message")
)
