package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ChainHandler struct {
	chainUC domain.ChainUsecase
}

// NewChainHandler registers the contract routes. Transaction routes run
// behind limiter, which is keyed per user.
func NewChainHandler(public *gin.RouterGroup, protected *gin.RouterGroup, chainUC domain.ChainUsecase, limiter gin.HandlerFunc) {
	handler := &ChainHandler{chainUC: chainUC}

	publicChain := public.Group("/chain")
	{
		publicChain.GET("/status", handler.Status)
		publicChain.GET("/oracle/locations/:device", handler.GetLocation)
		publicChain.GET("/payments/:id", handler.GetPayment)
	}

	writes := protected.Group("")
	writes.Use(middleware.RequireRole(domain.RoleEmployer), limiter)
	{
		writes.POST("/chain/oracle/locations", handler.UpdateLocation)
		writes.POST("/chain/payments", handler.CreatePayment)
		writes.POST("/chain/payments/:id/release", handler.ReleasePayment)
		writes.POST("/job-postings/:id/fund", handler.FundJobPosting)
	}
}

type FundJobPostingRequest struct {
	WorkerAddress string `json:"worker_address" binding:"required"`
}

// ChainStatus godoc
// @Summary      Blockchain connection status
// @Tags         chain
// @Produce      json
// @Success      200  {object}  response.Response{data=chain.Status}
// @Router       /chain/status [get]
func (h *ChainHandler) Status(c *gin.Context) {
	st, err := h.chainUC.Status(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Chain status", st)
}

// GetOracleLocation godoc
// @Summary      Last reported device location
// @Tags         chain
// @Produce      json
// @Param        device  path      string  true  "Device address (0x...)"
// @Success      200     {object}  response.Response{data=chain.Location}
// @Failure      400     {object}  response.Response
// @Failure      503     {object}  response.Response
// @Router       /chain/oracle/locations/{device} [get]
func (h *ChainHandler) GetLocation(c *gin.Context) {
	loc, err := h.chainUC.GetLocation(c.Request.Context(), c.Param("device"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Device location", loc)
}

// UpdateOracleLocation godoc
// @Summary      Report a device location
// @Description  Signs and submits updateLocation on the GPS oracle. Returns the transaction hash without waiting for a receipt.
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LocationUpdateInput  true  "Location"
// @Success      202      {object}  response.Response{data=chain.TxResult}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /chain/oracle/locations [post]
// @Security     BearerAuth
func (h *ChainHandler) UpdateLocation(c *gin.Context) {
	var in domain.LocationUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	tx, err := h.chainUC.UpdateLocation(c.Request.Context(), middleware.Actor(c), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "Transaction submitted", tx)
}

// GetPayment godoc
// @Summary      Get GPS payment
// @Tags         chain
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  response.Response{data=chain.Payment}
// @Failure      400  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /chain/payments/{id} [get]
func (h *ChainHandler) GetPayment(c *gin.Context) {
	p, err := h.chainUC.GetPayment(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Payment details", p)
}

// CreatePayment godoc
// @Summary      Escrow a GPS payment
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        request  body      domain.PaymentInput  true  "Payment"
// @Success      202      {object}  response.Response{data=chain.TxResult}
// @Failure      400      {object}  response.Response
// @Failure      429      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /chain/payments [post]
// @Security     BearerAuth
func (h *ChainHandler) CreatePayment(c *gin.Context) {
	var in domain.PaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	tx, err := h.chainUC.CreatePayment(c.Request.Context(), middleware.Actor(c), &in)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "Transaction submitted", tx)
}

// ReleasePayment godoc
// @Summary      Release a GPS payment
// @Tags         chain
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      202  {object}  response.Response{data=chain.TxResult}
// @Failure      400  {object}  response.Response
// @Failure      429  {object}  response.Response
// @Failure      503  {object}  response.Response
// @Router       /chain/payments/{id}/release [post]
// @Security     BearerAuth
func (h *ChainHandler) ReleasePayment(c *gin.Context) {
	tx, err := h.chainUC.ReleasePayment(c.Request.Context(), middleware.Actor(c), c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "Transaction submitted", tx)
}

// FundJobPosting godoc
// @Summary      Fund a job posting on chain
// @Description  Escrows the posting's payment_wei for the worker, bound to the posting's coordinates and radius.
// @Tags         chain
// @Accept       json
// @Produce      json
// @Param        id       path      int                    true  "Job posting ID"
// @Param        request  body      FundJobPostingRequest  true  "Worker"
// @Success      202      {object}  response.Response{data=chain.TxResult}
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      503      {object}  response.Response
// @Router       /job-postings/{id}/fund [post]
// @Security     BearerAuth
func (h *ChainHandler) FundJobPosting(c *gin.Context) {
	id, err := int64Param(c, "id")
	if err != nil {
		c.Error(err)
		return
	}
	var req FundJobPostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}
	tx, err := h.chainUC.FundJobPosting(c.Request.Context(), middleware.Actor(c), id, req.WorkerAddress)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusAccepted, "Transaction submitted", tx)
}
