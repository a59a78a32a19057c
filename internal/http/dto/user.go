package dto

import (
	"time"

	"lintora.co/server/internal/model"
	"lintora.co/server/internal/service"
)

type UserResponse struct {
	ID           int64                `json:"id,string"`
	Name         string               `json:"name"`
	Email        string               `json:"email"`
	AvatarURL    *string              `json:"avatar_url,omitempty"`
	Role         model.Role           `json:"role"`
	Subscription SubscriptionResponse `json:"subscription"`
	CreatedAt    time.Time            `json:"created_at"`
}

type SubscriptionResponse struct {
	Plan                model.Plan               `json:"plan"`
	Status              model.SubscriptionStatus `json:"status"`
	ReviewsLeft         int                      `json:"reviewsLeft"`
	ReviewsUsed         int                      `json:"reviewsUsed"`
	TotalReviewsAllowed int                      `json:"totalReviewsAllowed"`
	StartDate           time.Time                `json:"startDate"`
	EndDate             *time.Time               `json:"endDate,omitempty"`
}

func ToUserResponse(u *model.User) *UserResponse {
	return &UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		AvatarURL:    u.AvatarURL,
		Role:         u.Role,
		Subscription: ToSubscriptionResponse(u.Subscription),
		CreatedAt:    u.CreatedAt,
	}
}

func ToSubscriptionResponse(s model.Subscription) SubscriptionResponse {
	return SubscriptionResponse{
		Plan:                s.Plan,
		Status:              s.Status,
		ReviewsLeft:         s.ReviewsLeft,
		ReviewsUsed:         s.ReviewsUsed,
		TotalReviewsAllowed: s.TotalReviewsAllowed,
		StartDate:           s.StartDate,
		EndDate:             s.EndDate,
	}
}

type UpgradeRequest struct {
	Plan string `json:"plan" binding:"required,oneof=pro enterprise"`
}

type PricingResponse struct {
	Plans []service.PlanSpec `json:"plans"`
}
