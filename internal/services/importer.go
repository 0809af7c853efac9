package services

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/store"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
	"github.com/tupyy/graph-crawler/pkg/writer"
)

const (
	nodesSheet         = "nodes"
	relationshipsSheet = "relationships"

	importSubmitWait = 5 * time.Second
)

// ImporterService loads a graph from an xlsx workbook. The workbook carries
// a "nodes" sheet (id, label, then property columns) and an optional
// "relationships" sheet (id, type, start_id, end_id, then property columns).
// Every row becomes one writer task.
type ImporterService struct {
	writer *writer.Writer[*store.Store]
}

func NewImporterService(w *writer.Writer[*store.Store]) *ImporterService {
	return &ImporterService{writer: w}
}

// Import reads the workbook and writes its rows to the graph. Rows the
// writer sheds under overload are counted in the summary, not treated as
// errors. A malformed row aborts the import with an ImportError.
func (s *ImporterService) Import(ctx context.Context, r io.Reader) (models.ImportSummary, error) {
	var summary models.ImportSummary

	f, err := excelize.OpenReader(r)
	if err != nil {
		return summary, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if err := s.importNodes(ctx, f, &summary); err != nil {
		return summary, err
	}
	if err := s.importRelationships(ctx, f, &summary); err != nil {
		return summary, err
	}

	zap.S().Named("importer").Infow("workbook imported",
		"nodes", summary.Nodes,
		"relationships", summary.Relationships,
		"dropped", summary.Dropped,
	)
	return summary, nil
}

func (s *ImporterService) importNodes(ctx context.Context, f *excelize.File, summary *models.ImportSummary) error {
	rows, err := f.GetRows(nodesSheet)
	if err != nil {
		return srvErrors.NewImportError(nodesSheet, 0, err)
	}
	if len(rows) == 0 {
		return srvErrors.NewImportError(nodesSheet, 0, fmt.Errorf("sheet is empty"))
	}

	header := rows[0]
	if len(header) < 2 || header[0] != "id" || header[1] != "label" {
		return srvErrors.NewImportError(nodesSheet, 1, fmt.Errorf("header must start with id, label"))
	}

	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) < 2 || row[0] == "" || row[1] == "" {
			return srvErrors.NewImportError(nodesSheet, rowNum, fmt.Errorf("id and label are required"))
		}

		node := models.Node{
			ID:         row[0],
			Label:      row[1],
			Properties: rowProperties(header, row, 2),
		}

		written, err := s.submit(ctx, "import-node-"+node.ID, func(ctx context.Context, st *store.Store) (any, error) {
			return true, st.Nodes().Save(ctx, node)
		})
		if err != nil {
			return srvErrors.NewImportError(nodesSheet, rowNum, err)
		}
		if !written {
			summary.Dropped++
			continue
		}
		summary.Nodes++
	}
	return nil
}

func (s *ImporterService) importRelationships(ctx context.Context, f *excelize.File, summary *models.ImportSummary) error {
	rows, err := f.GetRows(relationshipsSheet)
	if err != nil {
		// the relationships sheet is optional
		return nil
	}
	if len(rows) == 0 {
		return nil
	}

	header := rows[0]
	if len(header) < 4 || header[0] != "id" || header[1] != "type" || header[2] != "start_id" || header[3] != "end_id" {
		return srvErrors.NewImportError(relationshipsSheet, 1, fmt.Errorf("header must start with id, type, start_id, end_id"))
	}

	for i, row := range rows[1:] {
		rowNum := i + 2
		if len(row) < 4 || row[0] == "" || row[1] == "" || row[2] == "" || row[3] == "" {
			return srvErrors.NewImportError(relationshipsSheet, rowNum, fmt.Errorf("id, type, start_id and end_id are required"))
		}

		rel := models.Relationship{
			ID:         row[0],
			Type:       row[1],
			StartID:    row[2],
			EndID:      row[3],
			Properties: rowProperties(header, row, 4),
		}

		written, err := s.submit(ctx, "import-rel-"+rel.ID, func(ctx context.Context, st *store.Store) (any, error) {
			return true, st.Relationships().Save(ctx, rel)
		})
		if err != nil {
			return srvErrors.NewImportError(relationshipsSheet, rowNum, err)
		}
		if !written {
			summary.Dropped++
			continue
		}
		summary.Relationships++
	}
	return nil
}

// submit pushes one row through the writer and waits for it. The work
// returns a non-nil marker, so a (nil, nil) outcome means the task was shed
// or the wait gave up.
func (s *ImporterService) submit(ctx context.Context, id string, work writer.Work[*store.Store]) (bool, error) {
	v, err := s.writer.Submit(ctx, work, id, importSubmitWait)
	if err != nil {
		return false, err
	}
	return v != nil, nil
}

// rowProperties pairs the property columns with their header names. Values
// parsing as numbers or booleans keep their type.
func rowProperties(header, row []string, from int) map[string]any {
	var props map[string]any
	for i := from; i < len(row) && i < len(header); i++ {
		if header[i] == "" || row[i] == "" {
			continue
		}
		if props == nil {
			props = make(map[string]any)
		}
		props[header[i]] = parseCell(row[i])
	}
	return props
}

func parseCell(v string) any {
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	if v == "true" || v == "false" {
		return v == "true"
	}
	return v
}
