package doctor

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-AppointmentService/pkg/txmanager"
)

var doctorColumns = []string{
	"id",
	"name",
	"specialization",
	"qualification",
	"description",
	"is_active",
	"work_start_time",
	"work_end_time",
	"slot_duration_minutes",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с врачами
type Repository struct {
	db txmanager.Executor
}

// NewRepository создает новый экземпляр репозитория врачей
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Create создает нового врача
func (r *Repository) Create(ctx context.Context, doc *domain.Doctor) (*domain.Doctor, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	if doc.ID == uuid.Nil {
		doc.ID = uuid.New()
	}

	query, args, err := psqlbuilder.Insert("doctors").
		Columns(
			"id",
			"name",
			"specialization",
			"qualification",
			"description",
			"is_active",
			"work_start_time",
			"work_end_time",
			"slot_duration_minutes",
		).
		Values(
			doc.ID,
			doc.Name,
			doc.Specialization,
			doc.Qualification,
			doc.Description,
			doc.IsActive,
			doc.WorkStartTime,
			doc.WorkEndTime,
			doc.SlotDurationMinutes,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&createdAt, &updatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	doc.CreatedAt = createdAt.Time
	doc.UpdatedAt = updatedAt.Time

	return doc, nil
}

// GetByID получает врача по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Doctor, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	doc, err := scanDoctor(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrDoctorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan doctor: %v", ErrScanRow, err)
	}

	return doc, nil
}

// List получает страницу врачей с фильтрацией по специализации
// Возвращает врачей и общее количество под фильтром (для пагинации)
func (r *Repository) List(ctx context.Context, filter domain.DoctorsFilter) ([]*domain.Doctor, int64, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	countBuilder := psqlbuilder.Select("COUNT(*)").From("doctors")
	selectBuilder := psqlbuilder.Select(doctorColumns...).
		From("doctors").
		OrderBy("name ASC")

	if filter.Specialization != nil {
		countBuilder = countBuilder.Where(squirrel.Eq{"specialization": *filter.Specialization})
		selectBuilder = selectBuilder.Where(squirrel.Eq{"specialization": *filter.Specialization})
	}

	countQuery, countArgs, err := countBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build count query: %v", ErrBuildQuery, err)
	}

	var total int64
	if err := executor.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("%w: List - scan count: %v", ErrScanRow, err)
	}

	offset := (filter.Page - 1) * filter.Limit
	selectBuilder = selectBuilder.
		Limit(uint64(filter.Limit)).
		Offset(uint64(offset))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	doctors := make([]*domain.Doctor, 0)
	for rows.Next() {
		doc, err := scanDoctor(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		doctors = append(doctors, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return doctors, total, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDoctor(row rowScanner) (*domain.Doctor, error) {
	var doc domain.Doctor
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&doc.ID,
		&doc.Name,
		&doc.Specialization,
		&doc.Qualification,
		&doc.Description,
		&doc.IsActive,
		&doc.WorkStartTime,
		&doc.WorkEndTime,
		&doc.SlotDurationMinutes,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	doc.CreatedAt = createdAt.Time
	doc.UpdatedAt = updatedAt.Time

	return &doc, nil
}
