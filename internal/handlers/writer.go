package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	v1 "github.com/tupyy/graph-crawler/api/v1"
)

// GetWriterStatus returns the write-queue worker status
// (GET /writer)
func (h *Handler) GetWriterStatus(c *gin.Context) {
	c.JSON(http.StatusOK, v1.WriterStatus{
		State:         string(h.writer.State()),
		QueueDepth:    h.writer.QueueDepth(),
		QueueCapacity: h.writer.QueueCapacity(),
	})
}
