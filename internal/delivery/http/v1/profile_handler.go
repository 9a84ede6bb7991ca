package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	employeeUC domain.EmployeeUsecase
}

func NewEmployeeHandler(protected *gin.RouterGroup, employeeUC domain.EmployeeUsecase) {
	handler := &EmployeeHandler{employeeUC: employeeUC}

	employees := protected.Group("/employees")
	{
		employees.GET("/me", handler.GetMine)
		employees.PUT("/me", handler.UpsertMine)
		employees.GET("/:id", handler.Get)
	}
}

// GetMyEmployeeProfile godoc
// @Summary      Get own employee profile
// @Tags         employees
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Employee}
// @Failure      404  {object}  response.Response
// @Router       /employees/me [get]
// @Security     BearerAuth
func (h *EmployeeHandler) GetMine(c *gin.Context) {
	e, err := h.employeeUC.GetMyProfile(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employee profile", e)
}

// UpsertMyEmployeeProfile godoc
// @Summary      Create or update own employee profile
// @Tags         employees
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.Employee  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.Employee}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /employees/me [put]
// @Security     BearerAuth
func (h *EmployeeHandler) UpsertMine(c *gin.Context) {
	var e domain.Employee
	if err := c.ShouldBindJSON(&e); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.employeeUC.UpsertMyProfile(c.Request.Context(), middleware.Actor(c), &e); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employee profile saved", e)
}

// GetEmployee godoc
// @Summary      Get employee by ID
// @Tags         employees
// @Produce      json
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  response.Response{data=domain.Employee}
// @Failure      404  {object}  response.Response
// @Router       /employees/{id} [get]
// @Security     BearerAuth
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.employeeUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Employee details", e)
}

type EmployerHandler struct {
	employerUC domain.EmployerUsecase
}

func NewEmployerHandler(public *gin.RouterGroup, protected *gin.RouterGroup, employerUC domain.EmployerUsecase) {
	handler := &EmployerHandler{employerUC: employerUC}

	protectedEmployers := protected.Group("/employers")
	{
		protectedEmployers.GET("/me", handler.GetMine)
		protectedEmployers.PUT("/me", handler.UpsertMine)
	}
	public.GET("/employers/:id", handler.Get)
}

// GetMyEmployerProfile godoc
// @Summary      Get own company profile
// @Tags         employers
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Employer}
// @Failure      404  {object}  response.Response
// @Router       /employers/me [get]
// @Security     BearerAuth
func (h *EmployerHandler) GetMine(c *gin.Context) {
	e, err := h.employerUC.GetMyProfile(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", e)
}

// UpsertMyEmployerProfile godoc
// @Summary      Create or update own company profile
// @Tags         employers
// @Accept       json
// @Produce      json
// @Param        profile  body      domain.Employer  true  "Profile"
// @Success      200      {object}  response.Response{data=domain.Employer}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /employers/me [put]
// @Security     BearerAuth
func (h *EmployerHandler) UpsertMine(c *gin.Context) {
	var e domain.Employer
	if err := c.ShouldBindJSON(&e); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	if err := h.employerUC.UpsertMyProfile(c.Request.Context(), middleware.Actor(c), &e); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile saved", e)
}

// GetEmployer godoc
// @Summary      Get company profile (public)
// @Tags         employers
// @Produce      json
// @Param        id   path      int  true  "Employer ID"
// @Success      200  {object}  response.Response{data=domain.Employer}
// @Failure      404  {object}  response.Response
// @Router       /employers/{id} [get]
func (h *EmployerHandler) Get(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.employerUC.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Company profile", e)
}
