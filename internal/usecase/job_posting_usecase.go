package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const exportRowLimit = 5000

type jobPostingUsecase struct {
	jobRepo      domain.JobPostingRepository
	employerRepo domain.EmployerRepository
	mediatorRepo domain.MediatorRepository
	validate     *validator.Validate
	strict       *validation.Sanitizer
	ugc          *validation.Sanitizer
}

func NewJobPostingUsecase(
	jobRepo domain.JobPostingRepository,
	employerRepo domain.EmployerRepository,
	mediatorRepo domain.MediatorRepository,
	validate *validator.Validate,
) domain.JobPostingUsecase {
	return &jobPostingUsecase{
		jobRepo:      jobRepo,
		employerRepo: employerRepo,
		mediatorRepo: mediatorRepo,
		validate:     validate,
		strict:       validation.NewStrictSanitizer(),
		ugc:          validation.NewUGCSanitizer(),
	}
}

func (u *jobPostingUsecase) employerFor(ctx context.Context, actor domain.Actor) (*domain.Employer, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	if !actor.HasRole(domain.RoleEmployer) {
		return nil, apperror.Forbidden("Only employers can manage job postings")
	}
	employer, err := u.employerRepo.GetByUserID(ctx, actor.UserID)
	if err != nil {
		return nil, notFoundAs(err, "Employer profile not found. Please create a company profile first.")
	}
	return employer, nil
}

// apply validates in and copies the sanitised values onto job.
func (u *jobPostingUsecase) apply(ctx context.Context, job *domain.JobPosting, in *domain.JobPostingInput) error {
	if err := u.validate.Struct(in); err != nil {
		return validationError(err)
	}
	if (in.Latitude == nil) != (in.Longitude == nil) {
		return apperror.BadRequest("Latitude and longitude must be provided together")
	}
	if in.MediatorID != "" {
		if _, err := u.mediatorRepo.GetByID(ctx, in.MediatorID); err != nil {
			return notFoundAs(err, "Mediator not found")
		}
	}

	title := strings.TrimSpace(u.strict.Sanitize(in.Title))
	if title == "" {
		return apperror.BadRequest("Title is required")
	}

	job.Title = title
	job.Description = u.ugc.Sanitize(in.Description)
	job.Location = strings.TrimSpace(u.strict.Sanitize(in.Location))
	job.Latitude = in.Latitude
	job.Longitude = in.Longitude
	job.RadiusMeters = in.RadiusMeters
	job.SalaryMin = in.SalaryMin
	job.SalaryMax = in.SalaryMax
	job.PaymentWei = optionalString(in.PaymentWei)
	job.MediatorID = optionalString(in.MediatorID)
	job.Tags = normalizeTags(u.strict.SanitizeAll(in.Tags))
	return nil
}

// normalizeTags lowercases, trims and de-duplicates tags, keeping first-seen order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

func (u *jobPostingUsecase) Create(ctx context.Context, actor domain.Actor, in *domain.JobPostingInput) (*domain.JobPosting, error) {
	employer, err := u.employerFor(ctx, actor)
	if err != nil {
		return nil, err
	}

	job := &domain.JobPosting{EmployerID: employer.ID, Status: domain.JobStatusOpen}
	if err := u.apply(ctx, job, in); err != nil {
		return nil, err
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, notFoundAs(err, "Mediator not found")
	}
	job.CompanyName = &employer.CompanyName
	return job, nil
}

func (u *jobPostingUsecase) Get(ctx context.Context, id int64) (*domain.JobPosting, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundAs(err, "Job posting not found")
	}
	return job, nil
}

// ListOpen only ever returns open postings; the status filter is not caller controlled.
func (u *jobPostingUsecase) ListOpen(ctx context.Context, tag, query string, page, pageSize int) ([]domain.JobPosting, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.List(ctx, domain.JobPostingFilter{
		Status: domain.JobStatusOpen,
		Tag:    strings.ToLower(strings.TrimSpace(tag)),
		Query:  query,
		Limit:  limit,
		Offset: offset,
	})
}

func (u *jobPostingUsecase) ListMine(ctx context.Context, actor domain.Actor, page, pageSize int) ([]domain.JobPosting, int64, error) {
	employer, err := u.employerFor(ctx, actor)
	if err != nil {
		return nil, 0, err
	}
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.List(ctx, domain.JobPostingFilter{EmployerID: employer.ID, Limit: limit, Offset: offset})
}

// owned loads a posting the actor may modify: admins may touch any posting,
// employers only their own.
func (u *jobPostingUsecase) owned(ctx context.Context, actor domain.Actor, id int64) (*domain.JobPosting, error) {
	if err := requireUser(actor); err != nil {
		return nil, err
	}
	job, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.IsAdmin() {
		return job, nil
	}
	employer, err := u.employerFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	if employer.ID != job.EmployerID {
		return nil, apperror.Forbidden("You can only manage your own job postings")
	}
	return job, nil
}

func (u *jobPostingUsecase) Update(ctx context.Context, actor domain.Actor, id int64, in *domain.JobPostingInput) (*domain.JobPosting, error) {
	job, err := u.owned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if err := u.apply(ctx, job, in); err != nil {
		return nil, err
	}
	job.UpdatedAt = time.Now()
	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, notFoundAs(err, "Job posting not found")
	}
	return job, nil
}

func (u *jobPostingUsecase) Close(ctx context.Context, actor domain.Actor, id int64) error {
	job, err := u.owned(ctx, actor, id)
	if err != nil {
		return err
	}
	if job.Status == domain.JobStatusClosed {
		return nil
	}
	return notFoundAs(u.jobRepo.UpdateStatus(ctx, id, domain.JobStatusClosed), "Job posting not found")
}

func (u *jobPostingUsecase) Delete(ctx context.Context, actor domain.Actor, id int64) error {
	if _, err := u.owned(ctx, actor, id); err != nil {
		return err
	}
	return notFoundAs(u.jobRepo.Delete(ctx, id), "Job posting not found")
}

var exportColumns = []string{
	"ID", "TITLE", "LOCATION", "LATITUDE", "LONGITUDE", "RADIUS (M)",
	"SALARY MIN", "SALARY MAX", "PAYMENT (WEI)", "TAGS", "STATUS", "CREATED AT",
}

func exportRow(j domain.JobPosting) []string {
	coord := func(v *float64) string {
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', 6, 64)
	}
	wei := ""
	if j.PaymentWei != nil {
		wei = *j.PaymentWei
	}
	return []string{
		strconv.FormatInt(j.ID, 10),
		j.Title,
		j.Location,
		coord(j.Latitude),
		coord(j.Longitude),
		strconv.Itoa(j.RadiusMeters),
		strconv.FormatFloat(j.SalaryMin, 'f', 2, 64),
		strconv.FormatFloat(j.SalaryMax, 'f', 2, 64),
		wei,
		strings.Join(j.Tags, ";"),
		j.Status,
		j.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func (u *jobPostingUsecase) Export(ctx context.Context, actor domain.Actor, format string) (*domain.ExportFile, error) {
	employer, err := u.employerFor(ctx, actor)
	if err != nil {
		return nil, err
	}
	jobs, _, err := u.jobRepo.List(ctx, domain.JobPostingFilter{EmployerID: employer.ID, Limit: exportRowLimit})
	if err != nil {
		return nil, err
	}

	stamp := time.Now().Format("20060102_150405")
	switch format {
	case "csv":
		data, err := exportCSV(jobs)
		if err != nil {
			return nil, err
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("job_postings_%s.csv", stamp),
			ContentType: "text/csv",
			Data:        data,
		}, nil
	case "xlsx", "":
		data, err := exportExcel(jobs)
		if err != nil {
			return nil, err
		}
		return &domain.ExportFile{
			Filename:    fmt.Sprintf("job_postings_%s.xlsx", stamp),
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Data:        data,
		}, nil
	default:
		return nil, apperror.BadRequest("Unsupported export format: " + format)
	}
}

func exportExcel(jobs []domain.JobPosting) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Job Postings"
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, name := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, name)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#1E3A5F"}},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	endCell, _ := excelize.CoordinatesToCellName(len(exportColumns), 1)
	f.SetCellStyle(sheetName, "A1", endCell, headerStyle)

	for rowIdx, job := range jobs {
		for colIdx, value := range exportRow(job) {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	for i := range exportColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, 20)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}

func exportCSV(jobs []domain.JobPosting) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportColumns); err != nil {
		return nil, err
	}
	for _, job := range jobs {
		if err := w.Write(exportRow(job)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
