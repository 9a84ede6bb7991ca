package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	savedJobUC domain.SavedJobUsecase
}

func NewSavedJobHandler(protected *gin.RouterGroup, savedJobUC domain.SavedJobUsecase) {
	handler := &SavedJobHandler{savedJobUC: savedJobUC}

	saved := protected.Group("/saved-jobs")
	{
		saved.POST("", handler.Save)
		saved.GET("", handler.ListMine)
		saved.GET("/:job_posting_id", handler.Check)
		saved.DELETE("/:job_posting_id", handler.Unsave)
	}
}

type SaveJobRequest struct {
	JobPostingID int64 `json:"job_posting_id" binding:"required,gt=0"`
}

// SaveJob godoc
// @Summary      Save a job posting
// @Description  Each posting can be saved once per employee.
// @Tags         saved-jobs
// @Accept       json
// @Produce      json
// @Param        request  body      SaveJobRequest  true  "Posting to save"
// @Success      201      {object}  response.Response{data=domain.SavedJob}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /saved-jobs [post]
// @Security     BearerAuth
func (h *SavedJobHandler) Save(c *gin.Context) {
	var req SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	saved, err := h.savedJobUC.Save(c.Request.Context(), middleware.Actor(c), req.JobPostingID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Job saved", saved)
}

// ListSavedJobs godoc
// @Summary      List saved jobs
// @Tags         saved-jobs
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response{data=response.Page}
// @Router       /saved-jobs [get]
// @Security     BearerAuth
func (h *SavedJobHandler) ListMine(c *gin.Context) {
	page, pageSize := pageParams(c)
	saved, total, err := h.savedJobUC.ListMine(c.Request.Context(), middleware.Actor(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, "Saved jobs", saved, total, page, pageSize)
}

// CheckSavedJob godoc
// @Summary      Check whether a posting is saved
// @Tags         saved-jobs
// @Produce      json
// @Param        job_posting_id  path      int  true  "Job posting ID"
// @Success      200             {object}  response.Response
// @Router       /saved-jobs/{job_posting_id} [get]
// @Security     BearerAuth
func (h *SavedJobHandler) Check(c *gin.Context) {
	id, err := int64Param(c, "job_posting_id")
	if err != nil {
		c.Error(err)
		return
	}
	saved, err := h.savedJobUC.IsSaved(c.Request.Context(), middleware.Actor(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Saved status", gin.H{"job_posting_id": id, "saved": saved})
}

// UnsaveJob godoc
// @Summary      Remove a saved job
// @Tags         saved-jobs
// @Produce      json
// @Param        job_posting_id  path      int  true  "Job posting ID"
// @Success      200             {object}  response.Response
// @Failure      404             {object}  response.Response
// @Router       /saved-jobs/{job_posting_id} [delete]
// @Security     BearerAuth
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	id, err := int64Param(c, "job_posting_id")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.savedJobUC.Unsave(c.Request.Context(), middleware.Actor(c), id); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Job removed from saved list", nil)
}
