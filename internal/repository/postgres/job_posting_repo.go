package postgres

import (
	"context"
	"fmt"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobPostingSelect = `
	SELECT
		j.id, j.employer_id, j.mediator_id::text, j.title, j.description, j.location,
		j.latitude, j.longitude, j.radius_meters, j.salary_min::float8, j.salary_max::float8,
		j.payment_wei::text, j.tags, j.status, j.created_at, j.updated_at,
		e.company_name
	FROM job_postings j
	LEFT JOIN employers e ON j.employer_id = e.id`

type jobPostingRepo struct {
	db *pgxpool.Pool
}

func NewJobPostingRepository(db *pgxpool.Pool) domain.JobPostingRepository {
	return &jobPostingRepo{db: db}
}

func scanJobPosting(row pgx.Row) (*domain.JobPosting, error) {
	var j domain.JobPosting
	var tags []string
	err := row.Scan(
		&j.ID, &j.EmployerID, &j.MediatorID, &j.Title, &j.Description, &j.Location,
		&j.Latitude, &j.Longitude, &j.RadiusMeters, &j.SalaryMin, &j.SalaryMax,
		&j.PaymentWei, pq.Array(&tags), &j.Status, &j.CreatedAt, &j.UpdatedAt,
		&j.CompanyName,
	)
	if err != nil {
		return nil, err
	}
	j.Tags = tags
	if j.Tags == nil {
		j.Tags = []string{}
	}
	return &j, nil
}

func (r *jobPostingRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	query := `INSERT INTO job_postings (employer_id, mediator_id, title, description, location, latitude, longitude,
	              radius_meters, salary_min, salary_max, payment_wei, tags, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11::numeric, $12, $13, $14, $15) RETURNING id`
	err := r.db.QueryRow(ctx, query,
		job.EmployerID, job.MediatorID, job.Title, job.Description, job.Location, job.Latitude, job.Longitude,
		job.RadiusMeters, job.SalaryMin, job.SalaryMax, job.PaymentWei, pq.Array(job.Tags), job.Status,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
	if isPgCode(err, pgForeignKeyViolation) {
		return domain.ErrNotFound
	}
	return mapError(err, "Job posting already exists")
}

func (r *jobPostingRepo) GetByID(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := scanJobPosting(r.db.QueryRow(ctx, jobPostingSelect+` WHERE j.id = $1`, id))
	if err != nil {
		return nil, mapError(err, "")
	}
	return job, nil
}

// buildJobPostingWhere renders the filter as a WHERE clause and its arguments.
func buildJobPostingWhere(filter domain.JobPostingFilter) (string, []interface{}) {
	var conds []string
	var args []interface{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		conds = append(conds, fmt.Sprintf("j.status = $%d", len(args)))
	}
	if filter.EmployerID != 0 {
		args = append(args, filter.EmployerID)
		conds = append(conds, fmt.Sprintf("j.employer_id = $%d", len(args)))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		conds = append(conds, fmt.Sprintf("$%d = ANY(j.tags)", len(args)))
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		args = append(args, "%"+escapeLike(q)+"%")
		conds = append(conds, fmt.Sprintf("(j.title ILIKE $%d OR j.location ILIKE $%d)", len(args), len(args)))
	}

	if len(conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (r *jobPostingRepo) List(ctx context.Context, filter domain.JobPostingFilter) ([]domain.JobPosting, int64, error) {
	where, args := buildJobPostingWhere(filter)

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings j`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`%s%s ORDER BY j.created_at DESC LIMIT $%d OFFSET $%d`,
		jobPostingSelect, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs := []domain.JobPosting{}
	for rows.Next() {
		job, err := scanJobPosting(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobPostingRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	query := `UPDATE job_postings SET
		mediator_id = $2,
		title = $3,
		description = $4,
		location = $5,
		latitude = $6,
		longitude = $7,
		radius_meters = $8,
		salary_min = $9,
		salary_max = $10,
		payment_wei = $11::numeric,
		tags = $12,
		updated_at = $13
	WHERE id = $1`
	result, err := r.db.Exec(ctx, query,
		job.ID, job.MediatorID, job.Title, job.Description, job.Location, job.Latitude, job.Longitude,
		job.RadiusMeters, job.SalaryMin, job.SalaryMax, job.PaymentWei, pq.Array(job.Tags), job.UpdatedAt,
	)
	if err != nil {
		return mapError(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobPostingRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	result, err := r.db.Exec(ctx, `UPDATE job_postings SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return mapError(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes the posting; saved_jobs rows go with it (ON DELETE CASCADE).
func (r *jobPostingRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return mapError(err, "")
	}
	if result.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
