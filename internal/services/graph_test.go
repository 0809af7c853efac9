package services_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/services"
	"github.com/tupyy/graph-crawler/internal/store"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

var _ = Describe("GraphService", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
		svc *services.GraphService
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore()
		svc = services.NewGraphService(s)

		Expect(s.Nodes().Save(ctx, models.Node{
			ID: "a", Label: "person", Properties: map[string]any{"name": "ada"},
		})).To(Succeed())
		Expect(s.Nodes().Save(ctx, models.Node{
			ID: "b", Label: "person", Properties: map[string]any{"name": "bob"},
		})).To(Succeed())
		Expect(s.Nodes().Save(ctx, models.Node{ID: "c0", Label: "company"})).To(Succeed())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	It("should get a node by id", func() {
		node, err := svc.Get(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
		Expect(node.Label).To(Equal("person"))
	})

	It("should return not found for a missing node", func() {
		_, err := svc.Get(ctx, "missing")
		Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
	})

	It("should list with the total unaffected by pagination", func() {
		result, err := svc.List(ctx, services.NodeListParams{
			Labels: []string{"person"},
			Limit:  1,
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Nodes).To(HaveLen(1))
		Expect(result.Total).To(Equal(2))
	})

	It("should filter by property", func() {
		result, err := svc.List(ctx, services.NodeListParams{
			PropertyKey:   "name",
			PropertyValue: "bob",
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Nodes).To(HaveLen(1))
		Expect(result.Nodes[0].ID).To(Equal("b"))
	})
})
