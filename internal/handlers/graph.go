package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	v1 "github.com/tupyy/graph-crawler/api/v1"
	"github.com/tupyy/graph-crawler/internal/services"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// GetNodes returns the list of nodes with filtering and pagination
// (GET /nodes)
func (h *Handler) GetNodes(c *gin.Context) {
	page := 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	pageSize := defaultPageSize
	if v, err := strconv.Atoi(c.Query("pageSize")); err == nil && v > 0 {
		pageSize = v
		if pageSize > maxPageSize {
			pageSize = maxPageSize
		}
	}

	params := services.NodeListParams{
		Labels:        c.QueryArray("label"),
		PropertyKey:   c.Query("propertyKey"),
		PropertyValue: c.Query("propertyValue"),
		Limit:         uint64(pageSize),
		Offset:        uint64((page - 1) * pageSize),
	}

	result, err := h.graphSrv.List(c.Request.Context(), params)
	if err != nil {
		zap.S().Named("graph_handler").Errorw("failed to list nodes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list nodes"})
		return
	}

	pageCount := (result.Total + pageSize - 1) / pageSize
	if pageCount == 0 {
		pageCount = 1
	}

	apiNodes := make([]v1.Node, 0, len(result.Nodes))
	for _, node := range result.Nodes {
		apiNodes = append(apiNodes, v1.NewNodeFromModel(node))
	}

	c.JSON(http.StatusOK, v1.NodeListResponse{
		Page:      page,
		PageCount: pageCount,
		Total:     result.Total,
		Nodes:     apiNodes,
	})
}

// GetNode returns a single node
// (GET /nodes/{id})
func (h *Handler) GetNode(c *gin.Context, id string) {
	node, err := h.graphSrv.Get(c.Request.Context(), id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("graph_handler").Errorw("failed to get node", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get node"})
		return
	}

	c.JSON(http.StatusOK, v1.NewNodeFromModel(node))
}

// GetRelationship returns a single relationship
// (GET /relationships/{id})
func (h *Handler) GetRelationship(c *gin.Context, id string) {
	rel, err := h.graphSrv.GetRelationship(c.Request.Context(), id)
	if err != nil {
		if srvErrors.IsResourceNotFoundError(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		zap.S().Named("graph_handler").Errorw("failed to get relationship", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get relationship"})
		return
	}

	c.JSON(http.StatusOK, v1.NewRelationshipFromModel(rel))
}
