package postgres

import (
	"testing"

	"go-jobboard-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBuildJobPostingWhere(t *testing.T) {
	t.Run("empty filter", func(t *testing.T) {
		where, args := buildJobPostingWhere(domain.JobPostingFilter{})
		assert.Empty(t, where)
		assert.Empty(t, args)
	})

	t.Run("all filters", func(t *testing.T) {
		where, args := buildJobPostingWhere(domain.JobPostingFilter{
			Status:     domain.JobStatusOpen,
			EmployerID: 9,
			Tag:        "warehouse",
			Query:      "  night_shift 100% ",
		})
		assert.Equal(t,
			" WHERE j.status = $1 AND j.employer_id = $2 AND $3 = ANY(j.tags) AND (j.title ILIKE $4 OR j.location ILIKE $4)",
			where)
		assert.Equal(t, []interface{}{"open", int64(9), "warehouse", `%night\_shift 100\%%`}, args)
	})
}
