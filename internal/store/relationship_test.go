package store_test

import (
	"context"
	"database/sql"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/store"
	"github.com/tupyy/graph-crawler/internal/store/migrations"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
)

var _ = Describe("RelationshipStore", func() {
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

		for _, id := range []string{"a", "b", "c"} {
			Expect(s.Nodes().Save(ctx, models.Node{ID: id, Label: "person"})).To(Succeed())
		}
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Save and Get", func() {
		It("should round-trip a relationship", func() {
			rel := models.Relationship{
				ID:      "r1",
				Type:    "KNOWS",
				StartID: "a",
				EndID:   "b",
				Properties: map[string]any{
					"since": "2020",
				},
			}
			Expect(s.Relationships().Save(ctx, rel)).To(Succeed())

			got, err := s.Relationships().Get(ctx, "r1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Type).To(Equal("KNOWS"))
			Expect(got.StartID).To(Equal("a"))
			Expect(got.EndID).To(Equal("b"))
			Expect(got.Properties).To(HaveKeyWithValue("since", "2020"))
		})

		It("should return not found for a missing relationship", func() {
			_, err := s.Relationships().Get(ctx, "missing")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should update an existing relationship in place", func() {
			rel := models.Relationship{ID: "r1", Type: "KNOWS", StartID: "a", EndID: "b"}
			Expect(s.Relationships().Save(ctx, rel)).To(Succeed())

			rel.Type = "WORKS_WITH"
			Expect(s.Relationships().Save(ctx, rel)).To(Succeed())

			got, err := s.Relationships().Get(ctx, "r1")
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Type).To(Equal("WORKS_WITH"))

			count, err := s.Relationships().Count(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(count).To(Equal(1))
		})
	})

	Context("Neighbors", func() {
		BeforeEach(func() {
			Expect(s.Relationships().Save(ctx, models.Relationship{
				ID: "r1", Type: "KNOWS", StartID: "a", EndID: "b",
			})).To(Succeed())
			Expect(s.Relationships().Save(ctx, models.Relationship{
				ID: "r2", Type: "KNOWS", StartID: "c", EndID: "a",
			})).To(Succeed())
		})

		It("should return neighbors in both directions", func() {
			nodes, err := s.Relationships().Neighbors(ctx, "a")
			Expect(err).NotTo(HaveOccurred())

			ids := make([]string, 0, len(nodes))
			for _, n := range nodes {
				ids = append(ids, n.ID)
			}
			Expect(ids).To(ConsistOf("b", "c"))
		})

		It("should return no neighbors for an isolated node", func() {
			Expect(s.Nodes().Save(ctx, models.Node{ID: "lonely", Label: "person"})).To(Succeed())

			nodes, err := s.Relationships().Neighbors(ctx, "lonely")
			Expect(err).NotTo(HaveOccurred())
			Expect(nodes).To(BeEmpty())
		})
	})

	Context("Delete", func() {
		It("should remove the relationship", func() {
			Expect(s.Relationships().Save(ctx, models.Relationship{
				ID: "r1", Type: "KNOWS", StartID: "a", EndID: "b",
			})).To(Succeed())
			Expect(s.Relationships().Delete(ctx, "r1")).To(Succeed())

			_, err := s.Relationships().Get(ctx, "r1")
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})
