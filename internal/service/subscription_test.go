package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/service"
)

func freeUser(reviewsLeft int) *model.User {
	return &model.User{
		ID:    101,
		Email: "dev@example.com",
		Role:  model.RoleUser,
		Subscription: model.Subscription{
			Plan:                model.PlanFree,
			Status:              model.SubscriptionActive,
			ReviewsLeft:         reviewsLeft,
			ReviewsUsed:         10 - reviewsLeft,
			TotalReviewsAllowed: 10,
		},
	}
}

var _ = Describe("SubscriptionService", func() {
	var (
		svc       service.SubscriptionService
		mockUsers *mockUserStore
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		mockUsers = &mockUserStore{}
		svc = service.NewSubscriptionService(mockUsers)
	})

	Describe("CheckQuota", func() {
		It("passes while reviews remain", func() {
			Expect(svc.CheckQuota(freeUser(3))).To(Succeed())
		})

		It("rejects an exhausted free account", func() {
			Expect(svc.CheckQuota(freeUser(0))).To(MatchError(service.ErrQuotaExceeded))
		})

		It("always passes admins", func() {
			user := freeUser(0)
			user.Role = model.RoleAdmin
			Expect(svc.CheckQuota(user)).To(Succeed())
		})

		It("always passes unlimited plans", func() {
			user := freeUser(0)
			user.Subscription.Plan = model.PlanEnterprise
			user.Subscription.TotalReviewsAllowed = model.UnlimitedReviews
			Expect(svc.CheckQuota(user)).To(Succeed())
		})
	})

	Describe("ChargeReview", func() {
		It("debits the store and refreshes the in-memory ledger", func() {
			mockUsers.chargeReviewFn = func(_ context.Context, userID int64) (int, int, error) {
				Expect(userID).To(Equal(int64(101)))
				return 2, 8, nil
			}

			user := freeUser(3)
			Expect(svc.ChargeReview(ctx, user)).To(Succeed())
			Expect(user.Subscription.ReviewsLeft).To(Equal(2))
			Expect(user.Subscription.ReviewsUsed).To(Equal(8))
			Expect(mockUsers.chargeCalls).To(Equal(1))
		})

		It("leaves an already-empty ledger untouched", func() {
			mockUsers.chargeReviewFn = func(_ context.Context, _ int64) (int, int, error) {
				return 0, 10, nil
			}

			user := freeUser(0)
			user.Subscription.ReviewsUsed = 10

			Expect(svc.ChargeReview(ctx, user)).To(Succeed())
			Expect(user.Subscription.ReviewsLeft).To(BeZero())
			Expect(user.Subscription.ReviewsUsed).To(Equal(10))
		})

		It("never touches the store for admins", func() {
			user := freeUser(3)
			user.Role = model.RoleAdmin

			Expect(svc.ChargeReview(ctx, user)).To(Succeed())
			Expect(mockUsers.chargeCalls).To(BeZero())
		})

		It("never touches the store for unlimited plans", func() {
			user := freeUser(0)
			user.Subscription.TotalReviewsAllowed = model.UnlimitedReviews

			Expect(svc.ChargeReview(ctx, user)).To(Succeed())
			Expect(mockUsers.chargeCalls).To(BeZero())
		})

		It("propagates store errors", func() {
			mockUsers.chargeReviewFn = func(_ context.Context, _ int64) (int, int, error) {
				return 0, 0, errors.New("db down")
			}

			err := svc.ChargeReview(ctx, freeUser(3))
			Expect(err).To(MatchError(ContainSubstring("db down")))
		})
	})

	Describe("Upgrade", func() {
		It("moves a free account to pro with a fresh 30-day window", func() {
			var captured model.Subscription
			mockUsers.updateSubscriptionFn = func(_ context.Context, userID int64, sub model.Subscription) error {
				Expect(userID).To(Equal(int64(101)))
				captured = sub
				return nil
			}

			user := freeUser(0)
			user.Subscription.ReviewsUsed = 10

			sub, err := svc.Upgrade(ctx, user, model.PlanPro)

			Expect(err).NotTo(HaveOccurred())
			Expect(sub.Plan).To(Equal(model.PlanPro))
			Expect(sub.ReviewsLeft).To(Equal(1000))
			Expect(sub.ReviewsUsed).To(BeZero())
			Expect(sub.TotalReviewsAllowed).To(Equal(1000))
			Expect(sub.EndDate).NotTo(BeNil())
			Expect(sub.EndDate.Sub(sub.StartDate)).To(BeNumerically("~", 30*24*time.Hour, time.Minute))

			Expect(captured.Plan).To(Equal(model.PlanPro))
			Expect(user.Subscription.Plan).To(Equal(model.PlanPro))
		})

		It("grants unlimited reviews on enterprise", func() {
			sub, err := svc.Upgrade(ctx, freeUser(0), model.PlanEnterprise)

			Expect(err).NotTo(HaveOccurred())
			Expect(sub.TotalReviewsAllowed).To(Equal(model.UnlimitedReviews))
			Expect(sub.ReviewsLeft).To(Equal(model.UnlimitedReviews))
		})

		It("rejects free as an upgrade target", func() {
			_, err := svc.Upgrade(ctx, freeUser(5), model.PlanFree)
			Expect(err).To(MatchError(service.ErrInvalidPlan))
		})

		It("rejects unknown plans", func() {
			_, err := svc.Upgrade(ctx, freeUser(5), model.Plan("platinum"))
			Expect(err).To(MatchError(service.ErrInvalidPlan))
		})
	})

	Describe("Plans", func() {
		It("lists the three plans with their prices", func() {
			plans := svc.Plans()

			Expect(plans).To(HaveLen(3))
			Expect(plans[0].Plan).To(Equal(model.PlanFree))
			Expect(plans[0].PriceUSD).To(BeZero())
			Expect(plans[1].Plan).To(Equal(model.PlanPro))
			Expect(plans[1].PriceUSD).To(Equal(29))
			Expect(plans[2].Plan).To(Equal(model.PlanEnterprise))
			Expect(plans[2].PriceUSD).To(Equal(99))
			Expect(plans[2].TotalReviews).To(Equal(model.UnlimitedReviews))
		})
	})
})
