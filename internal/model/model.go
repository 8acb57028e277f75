package model

import "time"

// CampaignStatus is the lifecycle state of a campaign as reported by the server.
type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusCompleted CampaignStatus = "completed"
	CampaignStatusCancelled CampaignStatus = "cancelled"
)

func (s CampaignStatus) String() string {
	return string(s)
}

type Campaign struct {
	// ID is the server-assigned identifier
	ID int64 `json:"id"`

	// Title is the campaign headline
	Title string `json:"title"`

	// Description is the optional long-form text
	Description string `json:"description"`

	// TargetAmount is the fundraising goal
	TargetAmount float64 `json:"target_amount"`

	// CurrentAmount is the sum donated so far; it may exceed TargetAmount
	CurrentAmount float64 `json:"current_amount"`

	// CategoryID references a Category, absent when uncategorized
	CategoryID *int64 `json:"category_id"`

	// CreatorID is the user who created the campaign
	CreatorID int64 `json:"creator_id"`

	// Status is the lifecycle state
	Status CampaignStatus `json:"status"`

	// CreatedAt is the server-side creation timestamp
	CreatedAt time.Time `json:"created_at"`
}

// ProgressPercent returns the funding progress as a percentage. The value is
// deliberately not clamped: an overfunded campaign reports more than 100.
func (c Campaign) ProgressPercent() float64 {
	if c.TargetAmount <= 0 {
		return 0
	}

	return c.CurrentAmount / c.TargetAmount * 100
}

// ProgressRatio returns the funding progress clamped to [0, 1] for use as a
// visual bar width.
func (c Campaign) ProgressRatio() float64 {
	r := c.ProgressPercent() / 100

	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type Donation struct {
	ID          int64     `json:"id"`
	Amount      float64   `json:"amount"`
	Message     string    `json:"message"`
	IsAnonymous bool      `json:"is_anonymous"`
	CampaignID  int64     `json:"campaign_id"`
	DonorID     int64     `json:"donor_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// User is the authenticated account as returned by GET /me.
type User struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	FullName    string    `json:"full_name"`
	City        string    `json:"city"`
	PhoneNumber string    `json:"phone_number"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserProfile holds the editable profile plus server-derived statistics.
// Only Bio and ProfilePicture are writable by this client.
type UserProfile struct {
	ID                 int64   `json:"id"`
	UserID             int64   `json:"user_id"`
	Bio                string  `json:"bio"`
	ProfilePicture     string  `json:"profile_picture"`
	TotalDonated       float64 `json:"total_donated"`
	TotalCampaigns     int     `json:"total_campaigns"`
	VerificationStatus string  `json:"verification_status"`
}
