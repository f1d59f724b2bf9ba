package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/medicall/medicall/internal/model"
)

type ApplicationRepository struct {
	pool *pgxpool.Pool
}

func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

const applicationColumns = `
	a.id, a.shift_id, a.worker_id, a.status, a.cover_letter, a.proposed_rate,
	a.created_at, a.updated_at
`

func scanApplication(row pgx.Row) (*model.Application, error) {
	var app model.Application
	err := row.Scan(
		&app.ID,
		&app.ShiftID,
		&app.WorkerID,
		&app.Status,
		&app.CoverLetter,
		&app.ProposedRate,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func collectApplications(rows pgx.Rows) ([]*model.Application, error) {
	defer rows.Close()

	var apps []*model.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		apps = append(apps, app)
	}
	return apps, rows.Err()
}

// Create создаёт новый отклик на смену
func (r *ApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	query := `
		INSERT INTO applications (shift_id, worker_id, status, cover_letter, proposed_rate)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.pool.QueryRow(
		ctx, query,
		app.ShiftID,
		app.WorkerID,
		app.Status,
		app.CoverLetter,
		app.ProposedRate,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		return fmt.Errorf("create application: %w", err)
	}

	return nil
}

// GetByID получает отклик по ID
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*model.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id = $1`

	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get application by id: %w", err)
	}

	return app, nil
}

// ExistsForShiftAndWorker проверяет откликался ли работник на смену
func (r *ApplicationRepository) ExistsForShiftAndWorker(ctx context.Context, shiftID, workerID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM applications WHERE shift_id = $1 AND worker_id = $2)`

	var exists bool
	err := r.pool.QueryRow(ctx, query, shiftID, workerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check application exists: %w", err)
	}

	return exists, nil
}

// GetByWorkerID получает все отклики работника
func (r *ApplicationRepository) GetByWorkerID(ctx context.Context, workerID int64) ([]*model.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		WHERE a.worker_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.pool.Query(ctx, query, workerID)
	if err != nil {
		return nil, fmt.Errorf("get applications by worker: %w", err)
	}

	return collectApplications(rows)
}

// GetByShiftID получает все отклики на смену
func (r *ApplicationRepository) GetByShiftID(ctx context.Context, shiftID int64) ([]*model.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		WHERE a.shift_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.pool.Query(ctx, query, shiftID)
	if err != nil {
		return nil, fmt.Errorf("get applications by shift: %w", err)
	}

	return collectApplications(rows)
}

// GetByHospitalID получает отклики на все смены больницы
func (r *ApplicationRepository) GetByHospitalID(ctx context.Context, hospitalID int64) ([]*model.Application, error) {
	query := `SELECT ` + applicationColumns + `
		FROM applications a
		JOIN shifts s ON s.id = a.shift_id
		WHERE s.hospital_id = $1
		ORDER BY a.created_at DESC`

	rows, err := r.pool.Query(ctx, query, hospitalID)
	if err != nil {
		return nil, fmt.Errorf("get applications by hospital: %w", err)
	}

	return collectApplications(rows)
}

// UpdateStatus обновляет статус отклика
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status model.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2, updated_at = now() WHERE id = $1`

	_, err := r.pool.Exec(ctx, query, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}

	return nil
}

// CountPending возвращает количество откликов в статусе pending
func (r *ApplicationRepository) CountPending(ctx context.Context) (int64, error) {
	query := `SELECT count(*) FROM applications WHERE status = 'pending'`

	var count int64
	err := r.pool.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count pending applications: %w", err)
	}

	return count, nil
}
