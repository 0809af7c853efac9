package store_test

import (
	"context"
	"database/sql"
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/store"
	"github.com/tupyy/graph-crawler/internal/store/migrations"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

var _ = Describe("NodeStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		// Given an empty store
		// When we try to get a node
		// Then it should return a not found error
		It("should return not found for a missing node", func() {
			_, err := s.Nodes().Get(ctx, "missing")

			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given a saved node
		// When we retrieve it by id
		// Then the label and properties round-trip
		It("should return a saved node", func() {
			node := models.Node{
				ID:    "n1",
				Label: "person",
				Properties: map[string]any{
					"name": "ada",
					"age":  float64(36),
				},
			}
			Expect(s.Nodes().Save(ctx, node)).To(Succeed())

			got, err := s.Nodes().Get(ctx, "n1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Label).To(Equal("person"))
			Expect(got.Properties).To(Equal(node.Properties))
			Expect(got.CreatedAt).NotTo(BeZero())
		})
	})

	Context("Save", func() {
		It("should update an existing node in place", func() {
			Expect(s.Nodes().Save(ctx, models.Node{ID: "n1", Label: "person"})).To(Succeed())
			Expect(s.Nodes().Save(ctx, models.Node{ID: "n1", Label: "robot"})).To(Succeed())

			got, err := s.Nodes().Get(ctx, "n1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Label).To(Equal("robot"))

			count, err := s.Nodes().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})

		It("should accept a node without properties", func() {
			Expect(s.Nodes().Save(ctx, models.Node{ID: "bare", Label: "person"})).To(Succeed())

			got, err := s.Nodes().Get(ctx, "bare")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Properties).To(BeEmpty())
		})
	})

	Context("SetProperty", func() {
		It("should merge a property into an existing document", func() {
			Expect(s.Nodes().Save(ctx, models.Node{
				ID:         "n1",
				Label:      "person",
				Properties: map[string]any{"name": "ada"},
			})).To(Succeed())

			Expect(s.Nodes().SetProperty(ctx, "n1", "visited", true)).To(Succeed())

			got, err := s.Nodes().Get(ctx, "n1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Properties).To(HaveKeyWithValue("name", "ada"))
			Expect(got.Properties).To(HaveKeyWithValue("visited", true))
		})

		It("should return not found for a missing node", func() {
			err := s.Nodes().SetProperty(ctx, "missing", "visited", true)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})

	Context("Delete", func() {
		It("should remove the node", func() {
			Expect(s.Nodes().Save(ctx, models.Node{ID: "n1", Label: "person"})).To(Succeed())
			Expect(s.Nodes().Delete(ctx, "n1")).To(Succeed())

			_, err := s.Nodes().Get(ctx, "n1")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should not fail for a missing node", func() {
			Expect(s.Nodes().Delete(ctx, "missing")).To(Succeed())
		})
	})

	Context("List", func() {
		BeforeEach(func() {
			for i := 0; i < 5; i++ {
				node := models.Node{
					ID:    fmt.Sprintf("p%d", i),
					Label: "person",
					Properties: map[string]any{
						"name": fmt.Sprintf("person-%d", i),
					},
				}
				Expect(s.Nodes().Save(ctx, node)).To(Succeed())
			}
			Expect(s.Nodes().Save(ctx, models.Node{ID: "c0", Label: "company"})).To(Succeed())
		})

		It("should list all nodes ordered by id", func() {
			nodes, err := s.Nodes().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes).To(HaveLen(6))
			Expect(nodes[0].ID).To(Equal("c0"))
		})

		It("should filter by label", func() {
			nodes, err := s.Nodes().List(ctx, store.ByLabels("company"))
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes).To(HaveLen(1))
			Expect(nodes[0].ID).To(Equal("c0"))
		})

		It("should filter by property value", func() {
			nodes, err := s.Nodes().List(ctx, store.ByProperty("name", "person-3"))
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes).To(HaveLen(1))
			Expect(nodes[0].ID).To(Equal("p3"))
		})

		It("should page with limit and offset", func() {
			nodes, err := s.Nodes().List(ctx, store.WithLimit(2), store.WithOffset(1))
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes).To(HaveLen(2))
			Expect(nodes[0].ID).To(Equal("p0"))
			Expect(nodes[1].ID).To(Equal("p1"))
		})

		It("should count with filters", func() {
			count, err := s.Nodes().Count(ctx, store.ByLabels("person"))
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(5))
		})
	})
})
