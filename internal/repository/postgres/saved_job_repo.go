package postgres

import (
	"context"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/jackc/pgx/v5/pgxpool"
)

type savedJobRepo struct {
	db *pgxpool.Pool
}

func NewSavedJobRepository(db *pgxpool.Pool) domain.SavedJobRepository {
	return &savedJobRepo{db: db}
}

// Create relies on uq_saved_jobs_employee_posting to reject duplicates, so two
// concurrent saves of the same pair cannot both succeed.
func (r *savedJobRepo) Create(ctx context.Context, s *domain.SavedJob) error {
	query := `INSERT INTO saved_jobs (employee_id, job_posting_id, saved_at)
              VALUES ($1, $2, $3) RETURNING id`
	err := r.db.QueryRow(ctx, query, s.EmployeeID, s.JobPostingID, s.SavedAt).Scan(&s.ID)
	if isPgCode(err, pgForeignKeyViolation) {
		// Posting deleted between lookup and insert.
		return apperror.NotFound("Job posting not found")
	}
	return mapError(err, "Job already saved")
}

func (r *savedJobRepo) Get(ctx context.Context, employeeID, jobPostingID int64) (*domain.SavedJob, error) {
	query := `SELECT id, employee_id, job_posting_id, saved_at FROM saved_jobs
	          WHERE employee_id = $1 AND job_posting_id = $2`
	var s domain.SavedJob
	err := r.db.QueryRow(ctx, query, employeeID, jobPostingID).Scan(&s.ID, &s.EmployeeID, &s.JobPostingID, &s.SavedAt)
	if err != nil {
		return nil, mapError(err, "")
	}
	return &s, nil
}

func (r *savedJobRepo) ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]domain.SavedJob, int64, error) {
	query := `
		SELECT s.id, s.employee_id, s.job_posting_id, s.saved_at,
			j.title, j.location, j.status
		FROM saved_jobs s
		JOIN job_postings j ON s.job_posting_id = j.id
		WHERE s.employee_id = $1
		ORDER BY s.saved_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, employeeID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	saved := []domain.SavedJob{}
	for rows.Next() {
		var s domain.SavedJob
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.JobPostingID, &s.SavedAt,
			&s.JobTitle, &s.JobLocation, &s.JobStatus); err != nil {
			return nil, 0, err
		}
		saved = append(saved, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM saved_jobs WHERE employee_id = $1`, employeeID).Scan(&total); err != nil {
		return nil, 0, err
	}
	return saved, total, nil
}

func (r *savedJobRepo) Delete(ctx context.Context, employeeID, jobPostingID int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM saved_jobs WHERE employee_id = $1 AND job_posting_id = $2`, employeeID, jobPostingID)
	if err != nil {
		return mapError(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
