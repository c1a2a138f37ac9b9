package model

import (
	"errors"
	"time"
)

// Subscription tiers recognized by the platform. Anything else is grouped
// under TierOther when breaking users down by tier.
const (
	TierFree    = "free"
	TierPro     = "pro"
	TierPremium = "premium"
	TierOther   = "other"
)

// User is a platform account as returned by GET /api/users/all.
// The backend is the only writer; this service never invents or retires ids.
type User struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`

	SubscriptionTier        string `json:"subscriptionTier"`
	SubscriptionPlan        string `json:"subscriptionPlan,omitempty"`
	SubscriptionStatus      string `json:"subscriptionStatus,omitempty"`
	SubscriptionStore       string `json:"subscriptionStore,omitempty"`
	SubscriptionEnvironment string `json:"subscriptionEnvironment,omitempty"`
	SubscriptionPlatform    string `json:"subscriptionPlatform,omitempty"`

	IsActive bool `json:"isActive"`

	TotalXP            int `json:"totalXP"`
	RizzLevel          int `json:"rizzLevel"`
	StreakCount        int `json:"streakCount"`
	DailyAnalysisCount int `json:"dailyAnalysisCount"`

	UserGoal        string `json:"userGoal"`
	UserChallenge   string `json:"userChallenge"`
	UserPersonality string `json:"userPersonality,omitempty"`

	CreatedAt *time.Time `json:"createdAt,omitempty"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Tier normalizes the subscription tier to one of the recognized enum
// values, mapping unknown or empty values to TierOther.
func (u User) Tier() string {
	switch u.SubscriptionTier {
	case TierFree, TierPro, TierPremium:
		return u.SubscriptionTier
	default:
		return TierOther
	}
}

// ErrUserNotFound is returned when the backend reports an unknown user id.
var ErrUserNotFound = errors.New("user not found")
