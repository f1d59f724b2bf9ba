package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medicall/medicall/internal/model"
)

// Даты и время отдаём строками YYYY-MM-DD / HH:MM - в этом виде их
// разбирает движок статусов
const shiftColumns = `
	s.id, s.hospital_id, s.department, s.role,
	to_char(s.date, 'YYYY-MM-DD'),
	to_char(s.start_time, 'HH24:MI'),
	to_char(s.end_time, 'HH24:MI'),
	s.duration_hours, s.pay_per_hour, s.urgency, s.status,
	s.requirements, s.location, s.description, s.max_applicants,
	(SELECT count(*) FROM applications a WHERE a.shift_id = s.id) AS applicant_count,
	s.created_at, s.updated_at
`

type ShiftRepository struct {
	pool *pgxpool.Pool
}

func NewShiftRepository(pool *pgxpool.Pool) *ShiftRepository {
	return &ShiftRepository{pool: pool}
}

func scanShift(row pgx.Row) (*model.Shift, error) {
	var shift model.Shift
	err := row.Scan(
		&shift.ID,
		&shift.HospitalID,
		&shift.Department,
		&shift.Role,
		&shift.Date,
		&shift.StartTime,
		&shift.EndTime,
		&shift.DurationHours,
		&shift.PayPerHour,
		&shift.Urgency,
		&shift.Status,
		&shift.Requirements,
		&shift.Location,
		&shift.Description,
		&shift.MaxApplicants,
		&shift.ApplicantCount,
		&shift.CreatedAt,
		&shift.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

func collectShifts(rows pgx.Rows) ([]*model.Shift, error) {
	defer rows.Close()

	var shifts []*model.Shift
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shift: %w", err)
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

// Create создаёт новую смену
func (r *ShiftRepository) Create(ctx context.Context, shift *model.Shift) error {
	query := `
		INSERT INTO shifts (hospital_id, department, role, date, start_time, end_time,
			duration_hours, pay_per_hour, urgency, status, requirements, location,
			description, max_applicants)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		shift.HospitalID,
		shift.Department,
		shift.Role,
		shift.Date,
		shift.StartTime,
		shift.EndTime,
		shift.DurationHours,
		shift.PayPerHour,
		shift.Urgency,
		shift.Status,
		shift.Requirements,
		shift.Location,
		shift.Description,
		shift.MaxApplicants,
	).Scan(&shift.ID, &shift.CreatedAt, &shift.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create shift: %w", err)
	}

	return nil
}

// GetByID получает смену по ID
func (r *ShiftRepository) GetByID(ctx context.Context, id int64) (*model.Shift, error) {
	query := `SELECT ` + shiftColumns + ` FROM shifts s WHERE s.id = $1`

	shift, err := scanShift(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get shift by id: %w", err)
	}

	return shift, nil
}

// GetByHospitalID получает все смены больницы
func (r *ShiftRepository) GetByHospitalID(ctx context.Context, hospitalID int64) ([]*model.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.hospital_id = $1
		ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("get shifts by hospital: %w", err)
	}

	return collectShifts(rows)
}

// GetOpenForWorker получает активные смены, на которые работник ещё не откликался.
// Фильтрация по реальному истечению делается выше через движок статусов,
// здесь только сохранённый статус.
func (r *ShiftRepository) GetOpenForWorker(ctx context.Context, workerID int64) ([]*model.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.status = 'active'
		  AND NOT EXISTS (
			SELECT 1 FROM applications a
			WHERE a.shift_id = s.id AND a.worker_id = $1
		  )
		ORDER BY s.created_at DESC`

	rows, err := r.pool.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("get open shifts for worker: %w", err)
	}

	return collectShifts(rows)
}

// GetNominallyActive получает смены со статусом active в БД,
// без учёта прошедшего времени
func (r *ShiftRepository) GetNominallyActive(ctx context.Context) ([]*model.Shift, error) {
	query := `SELECT ` + shiftColumns + `
		FROM shifts s
		WHERE s.status = 'active'
		ORDER BY s.date, s.start_time`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get nominally active shifts: %w", err)
	}

	return collectShifts(rows)
}

// UpdateStatus обновляет сохранённый статус смены
func (r *ShiftRepository) UpdateStatus(ctx context.Context, id int64, status model.ShiftStatus) error {
	query := `UPDATE shifts SET status = $2, updated_at = now() WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update shift status: %w", err)
	}

	return nil
}

// MarkExpired переводит смены в expired, затрагивает только ещё активные
func (r *ShiftRepository) MarkExpired(ctx context.Context, ids []int64) (int64, error) {
	query := `
		UPDATE shifts
		SET status = 'expired', updated_at = now()
		WHERE id = ANY($1) AND status = 'active'
	`

	tag, err := r.pool.Exec(ctx, query, ids)
	if err != nil {
		return 0, fmt.Errorf("mark shifts expired: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountByStatus возвращает количество смен по каждому сохранённому статусу
func (r *ShiftRepository) CountByStatus(ctx context.Context) (map[model.ShiftStatus]int64, error) {
	query := `SELECT status, count(*) FROM shifts GROUP BY status`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("count shifts by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[model.ShiftStatus]int64)
	for rows.Next() {
		var status model.ShiftStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("scan shift count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
