package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/hotel-booking-service/internal/domain"
	"github.com/m04kA/hotel-booking-service/pkg/dbmetrics"
	"github.com/m04kA/hotel-booking-service/pkg/psqlbuilder"
)

const tableName = "reservations"

var selectColumns = []string{
	"id",
	"user_id",
	"room_type",
	"room_name",
	"night_price",
	"check_in",
	"check_out",
	"nights",
	"guests",
	"children",
	"children_ages",
	"first_name",
	"last_name",
	"email",
	"phone",
	"special_requests",
	"total_price",
	"hidden_by_user",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
func (r *Repository) Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error) {
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

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	reservation, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return reservation, nil
}

// GetByUser получает бронирования пользователя, новые первыми
func (r *Repository) GetByUser(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildSelectByUser(filter).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		reservation, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByUser - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, reservation)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByUser - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// HideForUser скрывает бронирование из истории пользователя.
// Бронирование другого пользователя считается ненайденным.
func (r *Repository) HideForUser(ctx context.Context, id int64, userID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableName).
		Set("hidden_by_user", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: HideForUser - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: HideForUser - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: HideForUser - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func buildInsert(reservation *domain.Reservation) squirrel.InsertBuilder {
	return psqlbuilder.Insert(tableName).
		Columns(
			"user_id",
			"room_type",
			"room_name",
			"night_price",
			"check_in",
			"check_out",
			"nights",
			"guests",
			"children",
			"children_ages",
			"first_name",
			"last_name",
			"email",
			"phone",
			"special_requests",
			"total_price",
			"hidden_by_user",
		).
		Values(
			reservation.UserID,
			reservation.RoomType,
			reservation.RoomName,
			reservation.NightPrice,
			reservation.CheckIn,
			reservation.CheckOut,
			reservation.Nights,
			reservation.Guests,
			reservation.Children,
			pq.Array(toInt64s(reservation.ChildrenAges)),
			reservation.FirstName,
			reservation.LastName,
			reservation.Email,
			reservation.Phone,
			reservation.SpecialRequests,
			reservation.TotalPrice,
			reservation.HiddenByUser,
		).
		Suffix("RETURNING id, created_at, updated_at")
}

func buildSelectByUser(filter domain.ReservationsFilter) squirrel.SelectBuilder {
	selectBuilder := psqlbuilder.Select(selectColumns...).
		From(tableName).
		Where(squirrel.Eq{"user_id": filter.UserID})

	if !filter.IncludeHidden {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"hidden_by_user": false})
	}

	return selectBuilder.OrderBy("created_at DESC", "id DESC")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanReservation сканирует строку в бронирование
func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		reservation          domain.Reservation
		childrenAges         []int64
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.RoomType,
		&reservation.RoomName,
		&reservation.NightPrice,
		&reservation.CheckIn,
		&reservation.CheckOut,
		&reservation.Nights,
		&reservation.Guests,
		&reservation.Children,
		pq.Array(&childrenAges),
		&reservation.FirstName,
		&reservation.LastName,
		&reservation.Email,
		&reservation.Phone,
		&reservation.SpecialRequests,
		&reservation.TotalPrice,
		&reservation.HiddenByUser,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	reservation.ChildrenAges = make([]int, len(childrenAges))
	for i, age := range childrenAges {
		reservation.ChildrenAges[i] = int(age)
	}
	reservation.CreatedAt = createdAt.Time
	reservation.UpdatedAt = updatedAt.Time

	return &reservation, nil
}

func toInt64s(values []int) []int64 {
	result := make([]int64, len(values))
	for i, v := range values {
		result[i] = int64(v)
	}
	return result
}
