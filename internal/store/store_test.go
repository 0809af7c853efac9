package store_test

import (
	"context"
	"database/sql"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/store"
	"github.com/tupyy/graph-crawler/internal/store/migrations"
	"github.com/tupyy/graph-crawler/pkg/writer"
)

var _ = Describe("TxTaskFactory", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
		w   *writer.Writer[*store.Store]
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)
		w = writer.NewWithFactory(s, s.TxTaskFactory())
		Expect(w.Start(ctx)).To(Succeed())
	})

	AfterEach(func() {
		w.Stop(ctx)
		if db != nil {
			db.Close()
		}
	})

	It("should commit the task's writes when the work succeeds", func() {
		_, err := w.Submit(ctx, func(ctx context.Context, st *store.Store) (any, error) {
			return nil, st.Nodes().Save(ctx, models.Node{ID: "n1", Label: "person"})
		}, "save-node", time.Second)
		Expect(err).NotTo(HaveOccurred())

		got, err := s.Nodes().Get(ctx, "n1")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Label).To(Equal("person"))
	})

	It("should roll back the task's writes when the work fails", func() {
		boom := errors.New("boom")
		_, err := w.Submit(ctx, func(ctx context.Context, st *store.Store) (any, error) {
			if err := st.Nodes().Save(ctx, models.Node{ID: "n1", Label: "person"}); err != nil {
				return nil, err
			}
			return nil, boom
		}, "save-then-fail", time.Second)
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, boom)).To(BeTrue())

		count, err := s.Nodes().Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(BeZero())
	})

	It("should keep writes from separate tasks independent", func() {
		_, err := w.Submit(ctx, func(ctx context.Context, st *store.Store) (any, error) {
			return nil, st.Nodes().Save(ctx, models.Node{ID: "a", Label: "person"})
		}, "first", time.Second)
		Expect(err).NotTo(HaveOccurred())

		_, err = w.Submit(ctx, func(ctx context.Context, st *store.Store) (any, error) {
			return nil, errors.New("boom")
		}, "second", time.Second)
		Expect(err).To(HaveOccurred())

		count, err := s.Nodes().Count(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(count).To(Equal(1))
	})
})
