package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/apiarm/MRB-BookingService/internal/domain"
	"github.com/apiarm/MRB-BookingService/pkg/dbmetrics"
	"github.com/apiarm/MRB-BookingService/pkg/psqlbuilder"
	"github.com/apiarm/MRB-BookingService/pkg/types"
)

// Repository репозиторий журнала действий администраторов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория журнала
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create записывает действие администратора
// Вызывается в той же транзакции, что и смена статуса бронирования
func (r *Repository) Create(ctx context.Context, record *domain.HistoryRecord) (*domain.HistoryRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_history").
		Columns("booking_id", "admin_id", "action", "reason").
		Values(record.BookingID, record.AdminID, record.Action, record.Reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&record.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	record.CreatedAt = createdAt.Time
	return record, nil
}

// ListByBooking получает все записи журнала одного бронирования
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.HistoryRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.baseSelect().
		Where(squirrel.Eq{"h.booking_id": bookingID}).
		OrderBy("h.created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRecords(rows)
}

// List получает записи журнала с фильтрацией и пагинацией
func (r *Repository) List(ctx context.Context, filter domain.HistoryFilter) ([]*domain.HistoryRecord, int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := r.baseSelect()
	countBuilder := psqlbuilder.Select("COUNT(*)").From("booking_history h")

	if filter.Action != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"h.action": *filter.Action})
		countBuilder = countBuilder.Where(squirrel.Eq{"h.action": *filter.Action})
	}
	if filter.AdminID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"h.admin_id": *filter.AdminID})
		countBuilder = countBuilder.Where(squirrel.Eq{"h.admin_id": *filter.AdminID})
	}

	selectBuilder = selectBuilder.OrderBy("h.created_at DESC")
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan total: %v", ErrScanRow, err)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	records, err := r.scanRecords(rows)
	if err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

// ActionSummary возвращает количество действий каждого типа
func (r *Repository) ActionSummary(ctx context.Context) ([]domain.ActionCount, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("action", "COUNT(*)").
		From("booking_history").
		GroupBy("action").
		OrderBy("COUNT(*) DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ActionSummary - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ActionSummary - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	summary := make([]domain.ActionCount, 0)
	for rows.Next() {
		var item domain.ActionCount
		if err := rows.Scan(&item.Action, &item.Count); err != nil {
			return nil, fmt.Errorf("%w: ActionSummary - scan row: %v", ErrScanRow, err)
		}
		summary = append(summary, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ActionSummary - rows error: %v", ErrScanRow, err)
	}

	return summary, nil
}

// TopAdmins возвращает администраторов с наибольшим числом действий
func (r *Repository) TopAdmins(ctx context.Context, limit int) ([]domain.AdminActivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("admin_id", "COUNT(*)").
		From("booking_history").
		GroupBy("admin_id").
		OrderBy("COUNT(*) DESC").
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: TopAdmins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: TopAdmins - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	admins := make([]domain.AdminActivity, 0)
	for rows.Next() {
		var item domain.AdminActivity
		if err := rows.Scan(&item.AdminID, &item.TotalActions); err != nil {
			return nil, fmt.Errorf("%w: TopAdmins - scan row: %v", ErrScanRow, err)
		}
		admins = append(admins, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: TopAdmins - rows error: %v", ErrScanRow, err)
	}

	return admins, nil
}

// RecentActivity возвращает количество действий по дням за последние days дней
func (r *Repository) RecentActivity(ctx context.Context, days int) ([]domain.DailyActivity, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("created_at::date AS day", "action", "COUNT(*)").
		From("booking_history").
		Where("created_at >= NOW() - (? || ' days')::interval", days).
		GroupBy("day", "action").
		OrderBy("day DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: RecentActivity - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: RecentActivity - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	activity := make([]domain.DailyActivity, 0)
	for rows.Next() {
		var item domain.DailyActivity
		var day time.Time
		if err := rows.Scan(&day, &item.Action, &item.Count); err != nil {
			return nil, fmt.Errorf("%w: RecentActivity - scan row: %v", ErrScanRow, err)
		}
		item.Date = types.DateOf(day)
		activity = append(activity, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: RecentActivity - rows error: %v", ErrScanRow, err)
	}

	return activity, nil
}

func (r *Repository) baseSelect() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"h.id",
		"h.booking_id",
		"h.admin_id",
		"h.action",
		"h.reason",
		"h.created_at",
		"b.booking_code",
		"b.booker_name",
		"COALESCE(m.room_name, '')",
	).
		From("booking_history h").
		Join("bookings b ON b.id = h.booking_id").
		LeftJoin("meeting_rooms m ON m.id = b.room_id")
}

func (r *Repository) scanRecords(rows *sql.Rows) ([]*domain.HistoryRecord, error) {
	records := make([]*domain.HistoryRecord, 0)

	for rows.Next() {
		var record domain.HistoryRecord
		var createdAt sql.NullTime

		err := rows.Scan(
			&record.ID,
			&record.BookingID,
			&record.AdminID,
			&record.Action,
			&record.Reason,
			&createdAt,
			&record.BookingCode,
			&record.BookerName,
			&record.RoomName,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}

		record.CreatedAt = createdAt.Time
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
