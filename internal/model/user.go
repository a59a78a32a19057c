package model

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Plan string

const (
	PlanFree       Plan = "free"
	PlanPro        Plan = "pro"
	PlanEnterprise Plan = "enterprise"
)

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
	SubscriptionExpired   SubscriptionStatus = "expired"
)

// UnlimitedReviews is the sentinel for plans without a review cap.
const UnlimitedReviews = -1

// Subscription is the per-account quota ledger.
type Subscription struct {
	Plan                Plan               `json:"plan"`
	Status              SubscriptionStatus `json:"status"`
	ReviewsLeft         int                `json:"reviewsLeft"`
	ReviewsUsed         int                `json:"reviewsUsed"`
	TotalReviewsAllowed int                `json:"totalReviewsAllowed"`
	StartDate           time.Time          `json:"startDate"`
	EndDate             *time.Time         `json:"endDate,omitempty"`
}

// Unlimited reports whether the subscription has no review cap.
func (s Subscription) Unlimited() bool {
	return s.TotalReviewsAllowed == UnlimitedReviews
}

type User struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Email        string       `json:"email"`
	AvatarURL    *string      `json:"avatar_url,omitempty"`
	Role         Role         `json:"role"`
	WorkOSID     *string      `json:"-"`
	Subscription Subscription `json:"subscription"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// HasQuota reports whether the account may start another review.
// Admins and unlimited plans always pass; everyone else needs reviews left.
func (u *User) HasQuota() bool {
	if u.Role == RoleAdmin {
		return true
	}
	if u.Subscription.Unlimited() {
		return true
	}
	return u.Subscription.ReviewsLeft > 0
}

// ChargeExempt reports whether completing a review leaves the ledger
// untouched for this account.
func (u *User) ChargeExempt() bool {
	return u.Role == RoleAdmin || u.Subscription.Unlimited()
}
