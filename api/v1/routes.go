package v1

import "github.com/gin-gonic/gin"

// ServerInterface is implemented by the handlers layer.
type ServerInterface interface {
	GetWriterStatus(c *gin.Context)
	GetNodes(c *gin.Context)
	GetNode(c *gin.Context, id string)
	GetRelationship(c *gin.Context, id string)
	StartCrawl(c *gin.Context)
	GetCrawlStatus(c *gin.Context)
	CancelCrawl(c *gin.Context)
	ImportWorkbook(c *gin.Context)
}

// RegisterHandlers wires the API routes to the handler implementation.
func RegisterHandlers(router *gin.RouterGroup, si ServerInterface) {
	router.GET("/writer", si.GetWriterStatus)

	router.GET("/nodes", si.GetNodes)
	router.GET("/nodes/:id", func(c *gin.Context) {
		si.GetNode(c, c.Param("id"))
	})
	router.GET("/relationships/:id", func(c *gin.Context) {
		si.GetRelationship(c, c.Param("id"))
	})

	router.POST("/crawl", si.StartCrawl)
	router.GET("/crawl", si.GetCrawlStatus)
	router.DELETE("/crawl", si.CancelCrawl)

	router.POST("/import", si.ImportWorkbook)
}
