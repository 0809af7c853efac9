package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/graph-crawler/api/v1"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

// ImportWorkbook loads a graph from an uploaded xlsx workbook
// (POST /import)
func (h *Handler) ImportWorkbook(c *gin.Context) {
	file, _, err := c.Request.FormFile("workbook")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing workbook file"})
		return
	}
	defer file.Close()

	summary, err := h.importerSrv.Import(c.Request.Context(), file)
	if err != nil {
		if srvErrors.IsImportError(err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("import_handler").Errorw("failed to import workbook", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import workbook"})
		return
	}

	c.JSON(http.StatusOK, v1.NewImportResponse(summary))
}
