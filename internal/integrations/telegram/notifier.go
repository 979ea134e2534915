package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/apiarm/MRB-BookingService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Notifier отправляет уведомления администраторам в общий telegram-чат.
// Уведомления best-effort: ошибки отправки не влияют на результат операции.
type Notifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	log    Logger
}

// NewNotifier создает нотификатор с указанным bot token и чатом
func NewNotifier(token string, chatID int64, log Logger) (*Notifier, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram notifier: create bot: %w", err)
	}

	return &Notifier{
		bot:    bot,
		chatID: chatID,
		log:    log,
	}, nil
}

// BookingCreated уведомляет о новой заявке на бронирование
func (n *Notifier) BookingCreated(b *domain.Booking, roomName string) error {
	dates := make([]string, len(b.Dates))
	for i, d := range b.Dates {
		dates[i] = d.String()
	}

	text := fmt.Sprintf(
		"New booking request %s\nRoom: %s\nSlot: %s\nDates: %s\nBooker: %s (%s)\nTitle: %s",
		b.BookingCode, roomName, b.TimeSlot, strings.Join(dates, ", "),
		b.BookerName, b.Department, b.MeetingTitle,
	)

	return n.send(text)
}

// BookingReviewed уведомляет о решении администратора по заявке
func (n *Notifier) BookingReviewed(b *domain.Booking, action domain.HistoryAction, adminID int64) error {
	text := fmt.Sprintf(
		"Booking %s %s by admin %d\nRoom ID: %d\nBooker: %s",
		b.BookingCode, action, adminID, b.RoomID, b.BookerName,
	)

	return n.send(text)
}

func (n *Notifier) send(text string) error {
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	return nil
}
