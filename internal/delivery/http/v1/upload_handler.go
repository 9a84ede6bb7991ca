package v1

import (
	"io"
	"net/http"

	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// Reads past this are rejected by the usecase; the extra byte detects overflow.
const maxUploadRead = 5<<20 + 1

type UploadHandler struct {
	uploadUC domain.UploadUsecase
}

func NewUploadHandler(protected *gin.RouterGroup, uploadUC domain.UploadUsecase, limiter gin.HandlerFunc) {
	handler := &UploadHandler{uploadUC: uploadUC}
	protected.POST("/uploads", limiter, handler.Upload)
}

// UploadImage godoc
// @Summary      Upload an image
// @Description  Resizes and re-encodes the image as JPEG before storing it. Logos are capped at 512px, avatars at 1200px.
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file    true  "PNG or JPEG image, max 5MB"
// @Param        kind  formData  string  true  "logo or avatar"
// @Success      201   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Failure      503   {object}  response.Response
// @Router       /uploads [post]
// @Security     BearerAuth
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("file is required"))
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Could not read file"))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadRead))
	if err != nil {
		c.Error(apperror.BadRequest("Could not read file"))
		return
	}

	url, err := h.uploadUC.UploadImage(c.Request.Context(), middleware.Actor(c), c.PostForm("kind"), data)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusCreated, "File uploaded", gin.H{"url": url})
}
