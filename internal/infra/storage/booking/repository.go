package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/dbmetrics"
	"github.com/apiarm/MRB-BookingService/pkg/psqlbuilder"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// pgUniqueViolation SQLSTATE нарушения уникальности
const pgUniqueViolation = "23505"

var bookingColumns = []string{
	"b.id",
	"b.booking_code",
	"b.room_id",
	"b.time_slot",
	"b.status",
	"b.booker_name",
	"b.phone_number",
	"b.meeting_title",
	"b.department",
	"b.need_break",
	"b.break_details",
	"b.break_organizer",
	"b.created_at",
	"b.updated_at",
	"array_agg(d.booking_date ORDER BY d.booking_date) AS dates",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе со списком его дат.
// Если в контексте передана активная транзакция (через context.Value),
// использует её — создание всегда должно идти внутри сериализуемой
// транзакции вместе с проверкой занятости слотов.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_code",
			"room_id",
			"time_slot",
			"status",
			"booker_name",
			"phone_number",
			"meeting_title",
			"department",
			"need_break",
			"break_details",
			"break_organizer",
		).
		Values(
			b.BookingCode,
			b.RoomID,
			b.TimeSlot,
			b.Status,
			b.BookerName,
			b.PhoneNumber,
			b.MeetingTitle,
			b.Department,
			b.NeedBreak,
			b.BreakDetails,
			b.BreakOrganizer,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateCode
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	if err := r.insertDates(ctx, executor, b.ID, b.Dates); err != nil {
		return nil, err
	}

	return b, nil
}

// GetByID получает бронирование по ID вместе с его датами
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"b.id": id})
}

// GetByCode получает бронирование по публичному коду
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	return r.getOne(ctx, squirrel.Eq{"b.booking_code": code})
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}
	return bookings[0], nil
}

// List получает бронирования с гибкой фильтрацией
//
// Примеры использования:
//
//  1. Все активные бронирования комнаты:
//     filter := domain.BookingsFilter{RoomID: ptr.Ptr(int64(3))}
//
//  2. Бронирования, покрывающие конкретную дату (включая отклонённые —
//     для обзора дня):
//     filter := domain.BookingsFilter{Date: &date, IncludeFinal: true}
//
//  3. Только ожидающие подтверждения:
//     status := domain.StatusPending
//     filter := domain.BookingsFilter{Status: &status}
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect()

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.room_id": *filter.RoomID})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(
			"b.id IN (SELECT booking_id FROM booking_dates WHERE booking_date = ?)",
			filter.Date.Time(),
		)
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"b.status": *filter.Status})
	} else if !filter.IncludeFinal {
		// Без явного статуса по умолчанию скрываем rejected/cancelled
		finalStatusStrings := make([]string, len(domain.FinalStatuses))
		for i, s := range domain.FinalStatuses {
			finalStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"b.status": finalStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("b.created_at DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// ListByRoomAndDates получает занимающие слот бронирования комнаты,
// покрывающие хотя бы одну из указанных дат. Используется как снимок
// занятости при создании и редактировании бронирований; вызывающая сторона
// отвечает за сериализуемую транзакцию вокруг проверки и вставки.
func (r *Repository) ListByRoomAndDates(ctx context.Context, roomID int64, dates []types.Date) ([]*domain.Booking, error) {
	if len(dates) == 0 {
		return []*domain.Booking{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	dateTimes := make([]time.Time, len(dates))
	for i, d := range dates {
		dateTimes[i] = d.Time()
	}

	occupyingStatusStrings := make([]string, len(domain.OccupyingStatuses))
	for i, s := range domain.OccupyingStatuses {
		occupyingStatusStrings[i] = string(s)
	}

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"b.room_id": roomID}).
		Where(squirrel.Eq{"b.status": occupyingStatusStrings}).
		Where(
			"b.id IN (SELECT booking_id FROM booking_dates WHERE booking_date = ANY(?))",
			pq.Array(dateTimes),
		).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRoomAndDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Update обновляет изменяемые поля бронирования и заменяет список его дат
func (r *Repository) Update(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("room_id", b.RoomID).
		Set("time_slot", b.TimeSlot).
		Set("booker_name", b.BookerName).
		Set("phone_number", b.PhoneNumber).
		Set("meeting_title", b.MeetingTitle).
		Set("department", b.Department).
		Set("need_break", b.NeedBreak).
		Set("break_details", b.BreakDetails).
		Set("break_organizer", b.BreakOrganizer).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	// Заменяем даты целиком
	deleteQuery, deleteArgs, err := psqlbuilder.Delete("booking_dates").
		Where(squirrel.Eq{"booking_id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build delete dates query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: Update - delete old dates: %v", ErrExecQuery, err)
	}

	return r.insertDates(ctx, executor, b.ID, b.Dates)
}

// UpdateStatus обновляет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// Delete удаляет бронирование (физическое удаление, использовать осторожно)
// Для пользовательских сценариев предпочтительнее UpdateStatus в cancelled
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("booking_dates d ON d.booking_id = b.id").
		GroupBy("b.id")
}

func (r *Repository) insertDates(ctx context.Context, executor DBExecutor, bookingID int64, dates []types.Date) error {
	insertBuilder := psqlbuilder.Insert("booking_dates").
		Columns("booking_id", "booking_date")

	for _, d := range dates {
		insertBuilder = insertBuilder.Values(bookingID, d.Time())
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: insertDates - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: insertDates - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var createdAt, updatedAt sql.NullTime
		var dates []time.Time

		err := rows.Scan(
			&b.ID,
			&b.BookingCode,
			&b.RoomID,
			&b.TimeSlot,
			&b.Status,
			&b.BookerName,
			&b.PhoneNumber,
			&b.MeetingTitle,
			&b.Department,
			&b.NeedBreak,
			&b.BreakDetails,
			&b.BreakOrganizer,
			&createdAt,
			&updatedAt,
			pq.Array(&dates),
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time

		b.Dates = make([]types.Date, len(dates))
		for i, d := range dates {
			b.Dates[i] = types.DateOf(d)
		}

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgUniqueViolation
	}
	return false
}
