package v1

import (
	"errors"
	"net/http"

	"go-jobboard-backend/pkg/logger"
	"go-jobboard-backend/pkg/rfid"

	"github.com/gin-gonic/gin"
)

type RFIDHandler struct {
	store rfid.Store
}

// NewRFIDHandler serves the latest simulated scan. The body is the bare tag
// object, not the response envelope, so RFID clients can consume it directly.
func NewRFIDHandler(routes []gin.IRoutes, store rfid.Store) {
	handler := &RFIDHandler{store: store}
	for _, r := range routes {
		r.GET("/rfid-scan", handler.Latest)
	}
}

// LatestRFIDScan godoc
// @Summary      Latest RFID scan
// @Description  Most recent tag produced by the RFID simulator
// @Tags         rfid
// @Produce      json
// @Success      200  {object}  rfid.Tag
// @Failure      404  {object}  map[string]string
// @Router       /rfid-scan [get]
func (h *RFIDHandler) Latest(c *gin.Context) {
	tag, err := h.store.Latest(c.Request.Context())
	if errors.Is(err, rfid.ErrNoTag) {
		c.JSON(http.StatusNotFound, gin.H{"message": "No RFID tag yet"})
		return
	}
	if err != nil {
		logger.Log.Error("rfid store read failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "RFID reader unavailable"})
		return
	}
	c.JSON(http.StatusOK, tag)
}
