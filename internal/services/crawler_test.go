package services_test

import (
	"context"
	"database/sql"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/tupyy/graph-crawler/internal/models"
	"github.com/tupyy/graph-crawler/internal/services"
	"github.com/tupyy/graph-crawler/internal/store"
	"github.com/tupyy/graph-crawler/pkg/crawler"
	srvErrors "github.com/tupyy/graph-crawler/pkg/errors"
	"github.com/tupyy/graph-crawler/pkg/scheduler"
	"github.com/tupyy/graph-crawler/pkg/writer"
)

var _ = Describe("CrawlerService", func() {
	var (
		ctx  context.Context
		s    *store.Store
		db   *sql.DB
		w    *writer.Writer[*store.Store]
		pool *scheduler.Scheduler
	)

	BeforeEach(func() {
		ctx = context.Background()
		s, db = newTestStore()
		w = newTestWriter(s)
		pool = scheduler.NewScheduler(2)

		seedChain(ctx, s, 4)
	})

	AfterEach(func() {
		pool.Close()
		w.Stop(ctx)
		if db != nil {
			db.Close()
		}
	})

	It("should start in the ready state", func() {
		svc := services.NewCrawlerService(s, w, pool)
		Expect(svc.Status().State).To(Equal(models.CrawlStateReady))
	})

	It("should visit every reachable node and complete", func() {
		svc := services.NewCrawlerService(s, w, pool)

		status, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())
		Expect(status.State).To(Equal(models.CrawlStateRunning))
		Expect(status.RunID).NotTo(BeEmpty())

		Eventually(func() models.CrawlState {
			return svc.Status().State
		}, 5*time.Second).Should(Equal(models.CrawlStateCompleted))

		final := svc.Status()
		Expect(final.Visited).To(Equal(4))
		Expect(final.Matched).To(Equal(4))
	})

	It("should stamp matched nodes through the writer", func() {
		svc := services.NewCrawlerService(s, w, pool)

		_, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		// the stamps are fire-and-forget, so wait for them to land
		Eventually(func() any {
			node, err := s.Nodes().Get(ctx, "n3")
			if err != nil {
				return nil
			}
			return node.Property("last_crawled")
		}, 5*time.Second).ShouldNot(BeNil())
	})

	It("should honor the inclusion strategy", func() {
		Expect(s.Nodes().Save(ctx, models.Node{ID: "c0", Label: "company"})).To(Succeed())
		Expect(s.Relationships().Save(ctx, models.Relationship{
			ID: "rc", Type: "WORKS_AT", StartID: "n0", EndID: "c0",
		})).To(Succeed())

		svc := services.NewCrawlerService(s, w, pool,
			crawler.WithStrategy(crawler.ByLabel("company")),
		)

		_, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() models.CrawlState {
			return svc.Status().State
		}, 5*time.Second).Should(Equal(models.CrawlStateCompleted))

		final := svc.Status()
		Expect(final.Visited).To(Equal(5))
		Expect(final.Matched).To(Equal(1))
	})

	It("should reject a second crawl while one is running", func() {
		svc := services.NewCrawlerService(s, w, pool,
			crawler.WithThrottle(50*time.Millisecond),
		)

		_, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Start(ctx, []string{"n1"})
		Expect(srvErrors.IsCrawlInProgressError(err)).To(BeTrue())
	})

	It("should cancel a running crawl", func() {
		svc := services.NewCrawlerService(s, w, pool,
			crawler.WithThrottle(100*time.Millisecond),
		)

		_, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		svc.Cancel()

		Eventually(func() models.CrawlState {
			return svc.Status().State
		}, 5*time.Second).Should(Equal(models.CrawlStateCanceled))
	})

	It("should allow a new crawl after the previous one finished", func() {
		svc := services.NewCrawlerService(s, w, pool)

		_, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() models.CrawlState {
			return svc.Status().State
		}, 5*time.Second).Should(Equal(models.CrawlStateCompleted))

		first := svc.Status().RunID

		_, err = svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() models.CrawlState {
			return svc.Status().State
		}, 5*time.Second).Should(Equal(models.CrawlStateCompleted))
		Expect(svc.Status().RunID).NotTo(Equal(first))
	})

	It("should record a handler failure in the error state", func() {
		svc := services.NewCrawlerService(s, w, pool)
		svc.SetHandler(func(ctx context.Context, node models.Node) error {
			return errors.New("handler boom")
		})

		_, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		Eventually(func() models.CrawlState {
			return svc.Status().State
		}, 5*time.Second).Should(Equal(models.CrawlStateError))
		Expect(svc.Status().Error).To(HaveOccurred())
	})

	It("should cancel the crawl on module shutdown", func() {
		svc := services.NewCrawlerService(s, w, pool,
			crawler.WithThrottle(100*time.Millisecond),
		)
		Expect(svc.ID()).To(Equal("crawler"))
		Expect(svc.Initialize(ctx)).To(Succeed())

		_, err := svc.Start(ctx, []string{"n0"})
		Expect(err).NotTo(HaveOccurred())

		Expect(svc.Shutdown(ctx)).To(Succeed())

		Eventually(func() models.CrawlState {
			return svc.Status().State
		}, 5*time.Second).Should(Equal(models.CrawlStateCanceled))
	})
})
