package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobPostingHandler struct {
	jobUC domain.JobPostingUsecase
}

func NewJobPostingHandler(public *gin.RouterGroup, protected *gin.RouterGroup, jobUC domain.JobPostingUsecase) {
	handler := &JobPostingHandler{jobUC: jobUC}

	// Public listing only ever shows open postings.
	publicJobs := public.Group("/job-postings")
	{
		publicJobs.GET("", handler.ListOpen)
		publicJobs.GET("/:id", handler.Get)
	}

	protectedJobs := protected.Group("/job-postings")
	protectedJobs.Use(middleware.RequireRole(domain.RoleEmployer))
	{
		protectedJobs.POST("", handler.Create)
		protectedJobs.GET("/mine", handler.ListMine)
		protectedJobs.GET("/export", handler.Export)
		protectedJobs.PUT("/:id", handler.Update)
		protectedJobs.POST("/:id/close", handler.Close)
		protectedJobs.DELETE("/:id", handler.Delete)
	}
}

// ListJobPostings godoc
// @Summary      List open job postings (public)
// @Tags         job-postings
// @Produce      json
// @Param        tag        query     string  false  "Only postings carrying this tag"
// @Param        q          query     string  false  "Search title and location"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=response.Page}
// @Router       /job-postings [get]
func (h *JobPostingHandler) ListOpen(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobs, total, err := h.jobUC.ListOpen(c.Request.Context(), c.Query("tag"), c.Query("q"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, "Job postings", jobs, total, page, pageSize)
}

// GetJobPosting godoc
// @Summary      Get job posting (public)
// @Tags         job-postings
// @Produce      json
// @Param        id   path      int  true  "Job posting ID"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id} [get]
func (h *JobPostingHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	job, err := h.jobUC.Get(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting details", job)
}

// CreateJobPosting godoc
// @Summary      Create job posting
// @Description  Employers only. Description HTML is sanitised.
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobPostingInput  true  "Job posting"
// @Success      201  {object}  response.Response{data=domain.JobPosting}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /job-postings [post]
// @Security     BearerAuth
func (h *JobPostingHandler) Create(c *gin.Context) {
	var in domain.JobPostingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	job, err := h.jobUC.Create(c.Request.Context(), middleware.Actor(c), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job posting created", job)
}

// ListMyJobPostings godoc
// @Summary      List own job postings
// @Tags         job-postings
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response{data=response.Page}
// @Router       /job-postings/mine [get]
// @Security     BearerAuth
func (h *JobPostingHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	jobs, total, err := h.jobUC.ListMine(c.Request.Context(), middleware.Actor(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, "My job postings", jobs, total, page, pageSize)
}

// UpdateJobPosting godoc
// @Summary      Update job posting
// @Tags         job-postings
// @Accept       json
// @Produce      json
// @Param        id   path      int                     true  "Job posting ID"
// @Param        job  body      domain.JobPostingInput  true  "Job posting"
// @Success      200  {object}  response.Response{data=domain.JobPosting}
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id} [put]
// @Security     BearerAuth
func (h *JobPostingHandler) Update(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var in domain.JobPostingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	job, err := h.jobUC.Update(c.Request.Context(), middleware.Actor(c), id, &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting updated", job)
}

// CloseJobPosting godoc
// @Summary      Close job posting
// @Tags         job-postings
// @Produce      json
// @Param        id   path      int  true  "Job posting ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id}/close [post]
// @Security     BearerAuth
func (h *JobPostingHandler) Close(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.jobUC.Close(c.Request.Context(), middleware.Actor(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting closed", nil)
}

// DeleteJobPosting godoc
// @Summary      Delete job posting
// @Description  Saved-job bookmarks of the posting are removed with it.
// @Tags         job-postings
// @Produce      json
// @Param        id   path      int  true  "Job posting ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /job-postings/{id} [delete]
// @Security     BearerAuth
func (h *JobPostingHandler) Delete(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.jobUC.Delete(c.Request.Context(), middleware.Actor(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job posting deleted", nil)
}

// ExportJobPostings godoc
// @Summary      Export own job postings
// @Tags         job-postings
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce      text/csv
// @Param        format  query  string  false  "xlsx (default) or csv"
// @Success      200
// @Failure      400  {object}  response.Response
// @Router       /job-postings/export [get]
// @Security     BearerAuth
func (h *JobPostingHandler) Export(c *gin.Context) {
	file, err := h.jobUC.Export(c.Request.Context(), middleware.Actor(c), c.DefaultQuery("format", "xlsx"))
	if err != nil {
		c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
