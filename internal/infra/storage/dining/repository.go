package dining

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/dbmetrics"
	"github.com/m04kA/hotel-booking-service/pkg/psqlbuilder"
)

const tableName = "dining_reservations"

var selectColumns = []string{
	"id",
	"user_id",
	"name",
	"email",
	"reservation_date",
	"time_category",
	"reservation_time",
	"adults",
	"children",
	"guests",
	"children_age_group",
	"seating",
	"occasion",
	"special_request",
	"experience_id",
	"experience_name",
	"experience_price",
	"experience_total",
	"adult_price",
	"child_price",
	"dining_total",
	"total_price",
	"status",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований столиков
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование столика
func (r *Repository) Create(ctx context.Context, reservation *domain.DiningReservation) (*domain.DiningReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsert(reservation).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&reservation.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return reservation, nil
}

// GetByUser получает бронирования столиков пользователя, новые первыми
func (r *Repository) GetByUser(ctx context.Context, userID string) ([]*domain.DiningReservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

func buildInsert(reservation *domain.DiningReservation) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableName).
		Columns(
			"user_id",
			"name",
			"email",
			"reservation_date",
			"time_category",
			"reservation_time",
			"adults",
			"children",
			"guests",
			"children_age_group",
			"seating",
			"occasion",
			"special_request",
			"experience_id",
			"experience_name",
			"experience_price",
			"experience_total",
			"adult_price",
			"child_price",
			"dining_total",
			"total_price",
			"status",
		).
		Values(
			reservation.UserID,
			reservation.Name,
			reservation.Email,
			reservation.Date,
			reservation.TimeCategory,
			reservation.Time,
			reservation.Adults,
			reservation.Children,
			reservation.Guests,
			reservation.ChildrenAgeGroup,
			reservation.Seating,
			reservation.Occasion,
			reservation.SpecialRequest,
			reservation.ExperienceID,
			reservation.ExperienceName,
			reservation.ExperiencePrice,
			reservation.ExperienceTotal,
			reservation.AdultPrice,
			reservation.ChildPrice,
			reservation.DiningTotal,
			reservation.TotalPrice,
			reservation.Status,
		).
		Suffix("RETURNING id, created_at, updated_at")
}

// scanReservations сканирует результаты запроса в слайс бронирований
func scanReservations(rows *sql.Rows) ([]*domain.DiningReservation, error) {
	reservations := make([]*domain.DiningReservation, 0)

	for rows.Next() {
		var (
			reservation          domain.DiningReservation
			createdAt, updatedAt sql.NullTime
		)

		err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.Name,
			&reservation.Email,
			&reservation.Date,
			&reservation.TimeCategory,
			&reservation.Time,
			&reservation.Adults,
			&reservation.Children,
			&reservation.Guests,
			&reservation.ChildrenAgeGroup,
			&reservation.Seating,
			&reservation.Occasion,
			&reservation.SpecialRequest,
			&reservation.ExperienceID,
			&reservation.ExperienceName,
			&reservation.ExperiencePrice,
			&reservation.ExperienceTotal,
			&reservation.AdultPrice,
			&reservation.ChildPrice,
			&reservation.DiningTotal,
			&reservation.TotalPrice,
			&reservation.Status,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		reservation.CreatedAt = createdAt.Time
		reservation.UpdatedAt = updatedAt.Time

		reservations = append(reservations, &reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
