package services_test

import (
	"bytes"
	"context"
	"database/sql"
	"io"

	"github.com/xuri/excelize/v2"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/graph-crawler/internal/services"
	"github.com/tupyy/graph-crawler/internal/store"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
	"github.com/tupyy/graph-crawler/pkg/writer"
)

// buildWorkbook writes the given sheets to an in-memory xlsx file.
func buildWorkbook(sheets map[string][][]any) io.Reader {
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			Expect(f.SetSheetName("Sheet1", name)).To(Succeed())
			first = false
		} else {
			_, err := f.NewSheet(name)
			Expect(err).NotTo(HaveOccurred())
		}
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			Expect(err).NotTo(HaveOccurred())
			Expect(f.SetSheetRow(name, cell, &row)).To(Succeed())
		}
	}

	var buf bytes.Buffer
	Expect(f.Write(&buf)).To(Succeed())
	return &buf
}

var _ = Describe("ImporterService", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
		w   *writer.Writer[*store.Store]
		svc *services.ImporterService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore()
		w = newTestWriter(s)
		svc = services.NewImporterService(w)
	})

	AfterEach(func() {
		w.Stop(ctx)
		if db != nil {
			db.Close()
		}
	})

	It("should import nodes and relationships", func() {
		workbook := buildWorkbook(map[string][][]any{
			"nodes": {
				{"id", "label", "name", "age"},
				{"a", "person", "ada", 36},
				{"b", "person", "bob", 17},
				{"c0", "company", "initech", nil},
			},
			"relationships": {
				{"id", "type", "start_id", "end_id", "since"},
				{"r1", "KNOWS", "a", "b", 2020},
				{"r2", "WORKS_AT", "a", "c0", nil},
			},
		})

		summary, err := svc.Import(ctx, workbook)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Nodes).To(Equal(3))
		Expect(summary.Relationships).To(Equal(2))
		Expect(summary.Dropped).To(BeZero())

		node, err := s.Nodes().Get(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
		Expect(node.Label).To(Equal("person"))
		Expect(node.Properties).To(HaveKeyWithValue("name", "ada"))
		Expect(node.Properties).To(HaveKeyWithValue("age", float64(36)))

		neighbors, err := s.Relationships().Neighbors(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
		Expect(neighbors).To(HaveLen(2))
	})

	It("should import a workbook without a relationships sheet", func() {
		workbook := buildWorkbook(map[string][][]any{
			"nodes": {
				{"id", "label"},
				{"a", "person"},
			},
		})

		summary, err := svc.Import(ctx, workbook)
		Expect(err).NotTo(HaveOccurred())
		Expect(summary.Nodes).To(Equal(1))
		Expect(summary.Relationships).To(BeZero())
	})

	It("should reject a workbook without a nodes sheet", func() {
		workbook := buildWorkbook(map[string][][]any{
			"other": {
				{"id", "label"},
			},
		})

		_, err := svc.Import(ctx, workbook)
		Expect(srvErrors.IsImportError(err)).To(BeTrue())
	})

	It("should reject a malformed header", func() {
		workbook := buildWorkbook(map[string][][]any{
			"nodes": {
				{"identifier", "label"},
				{"a", "person"},
			},
		})

		_, err := svc.Import(ctx, workbook)
		Expect(srvErrors.IsImportError(err)).To(BeTrue())
	})

	It("should abort on a row missing required fields", func() {
		workbook := buildWorkbook(map[string][][]any{
			"nodes": {
				{"id", "label"},
				{"a", "person"},
				{"b", nil},
			},
		})

		summary, err := svc.Import(ctx, workbook)
		Expect(srvErrors.IsImportError(err)).To(BeTrue())
		Expect(summary.Nodes).To(Equal(1))
	})

	It("should fail once the writer is stopped", func() {
		Expect(w.Stop(ctx)).To(Succeed())

		workbook := buildWorkbook(map[string][][]any{
			"nodes": {
				{"id", "label"},
				{"a", "person"},
			},
		})

		_, err := svc.Import(ctx, workbook)
		Expect(srvErrors.IsImportError(err)).To(BeTrue())
	})
})
