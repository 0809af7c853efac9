package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/graph-crawler/api/v1"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

// StartCrawl starts a traversal from the requested seeds
// (POST /crawl)
func (h *Handler) StartCrawl(c *gin.Context) {
	var req v1.StartCrawlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Seeds) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one seed is required"})
		return
	}

	status, err := h.crawlerSrv.Start(c.Request.Context(), req.Seeds)
	if err != nil {
		if srvErrors.IsCrawlInProgressError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("crawl_handler").Errorw("failed to start crawl", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start crawl"})
		return
	}

	c.JSON(http.StatusAccepted, v1.NewCrawlStatus(status))
}

// GetCrawlStatus returns the current or last traversal status
// (GET /crawl)
func (h *Handler) GetCrawlStatus(c *gin.Context) {
	c.JSON(http.StatusOK, v1.NewCrawlStatus(h.crawlerSrv.Status()))
}

// CancelCrawl requests the running traversal to stop
// (DELETE /crawl)
func (h *Handler) CancelCrawl(c *gin.Context) {
	h.crawlerSrv.Cancel()
	c.JSON(http.StatusAccepted, v1.NewCrawlStatus(h.crawlerSrv.Status()))
}
