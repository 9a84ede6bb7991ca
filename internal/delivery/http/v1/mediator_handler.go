package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MediatorHandler struct {
	mediatorUC domain.MediatorUsecase
}

func NewMediatorHandler(public *gin.RouterGroup, protected *gin.RouterGroup, mediatorUC domain.MediatorUsecase) {
	handler := &MediatorHandler{mediatorUC: mediatorUC}

	publicMediators := public.Group("/mediators")
	{
		publicMediators.GET("", handler.List)
		publicMediators.GET("/:id", handler.Get)
	}

	protectedMediators := protected.Group("/mediators")
	protectedMediators.Use(middleware.RequireRole(domain.RoleMediator))
	{
		protectedMediators.POST("", handler.Create)
		protectedMediators.PUT("/:id", handler.Update)
		protectedMediators.PATCH("/:id/status", handler.SetStatus)
		protectedMediators.DELETE("/:id", handler.Delete)
	}
}

type MediatorStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListMediators godoc
// @Summary      List mediators
// @Tags         mediators
// @Produce      json
// @Param        status     query     string  false  "active, inactive or suspended"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response{data=response.Page}
// @Failure      400        {object}  response.Response
// @Router       /mediators [get]
func (h *MediatorHandler) List(c *gin.Context) {
	page, pageSize := pageParams(c)
	mediators, total, err := h.mediatorUC.List(c.Request.Context(), c.Query("status"), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}
	response.Paginated(c, "Mediator list", mediators, total, page, pageSize)
}

// GetMediator godoc
// @Summary      Get mediator
// @Tags         mediators
// @Produce      json
// @Param        id   path      string  true  "Mediator ID (UUID)"
// @Success      200  {object}  response.Response{data=domain.Mediator}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /mediators/{id} [get]
func (h *MediatorHandler) Get(c *gin.Context) {
	m, err := h.mediatorUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Mediator details", m)
}

// CreateMediator godoc
// @Summary      Create mediator
// @Description  Admins and mediators only. Email must be unique.
// @Tags         mediators
// @Accept       json
// @Produce      json
// @Param        mediator  body      domain.MediatorInput  true  "Mediator"
// @Success      201       {object}  response.Response{data=domain.Mediator}
// @Failure      400       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Router       /mediators [post]
// @Security     BearerAuth
func (h *MediatorHandler) Create(c *gin.Context) {
	var in domain.MediatorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	m, err := h.mediatorUC.Create(c.Request.Context(), middleware.Actor(c), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "Mediator created", m)
}

// UpdateMediator godoc
// @Summary      Update mediator
// @Tags         mediators
// @Accept       json
// @Produce      json
// @Param        id        path      string                true  "Mediator ID (UUID)"
// @Param        mediator  body      domain.MediatorInput  true  "Mediator"
// @Success      200       {object}  response.Response{data=domain.Mediator}
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      409       {object}  response.Response
// @Router       /mediators/{id} [put]
// @Security     BearerAuth
func (h *MediatorHandler) Update(c *gin.Context) {
	var in domain.MediatorInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	m, err := h.mediatorUC.Update(c.Request.Context(), middleware.Actor(c), c.Param("id"), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Mediator updated", m)
}

// SetMediatorStatus godoc
// @Summary      Change mediator status
// @Tags         mediators
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Mediator ID (UUID)"
// @Param        request  body      MediatorStatusRequest  true  "New status"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /mediators/{id}/status [patch]
// @Security     BearerAuth
func (h *MediatorHandler) SetStatus(c *gin.Context) {
	var req MediatorStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.mediatorUC.SetStatus(c.Request.Context(), middleware.Actor(c), c.Param("id"), req.Status); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Mediator status updated", gin.H{"id": c.Param("id"), "status": req.Status})
}

// DeleteMediator godoc
// @Summary      Delete mediator
// @Description  Admin only. Job postings referencing the mediator keep existing with no mediator.
// @Tags         mediators
// @Produce      json
// @Param        id   path      string  true  "Mediator ID (UUID)"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /mediators/{id} [delete]
// @Security     BearerAuth
func (h *MediatorHandler) Delete(c *gin.Context) {
	if err := h.mediatorUC.Delete(c.Request.Context(), middleware.Actor(c), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Mediator deleted", nil)
}
