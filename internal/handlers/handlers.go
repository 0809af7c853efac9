package handlers

import (
	"github.com/tupyy/graph-crawler/internal/services"
	"github.com/tupyy/graph-crawler/internal/store"
	"github.com/tupyy/graph-crawler/pkg/writer"
)

type Handler struct {
	writer      *writer.Writer[*store.Store]
	graphSrv    *services.GraphService
	crawlerSrv  *services.CrawlerService
	importerSrv *services.ImporterService
}

func New(w *writer.Writer[*store.Store], graphSrv *services.GraphService, crawlerSrv *services.CrawlerService, importerSrv *services.ImporterService) *Handler {
	return &Handler{
		writer:      w,
		graphSrv:    graphSrv,
		crawlerSrv:  crawlerSrv,
		importerSrv: importerSrv,
	}
}
