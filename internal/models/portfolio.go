package models

import "time"

// Portfolio is a performer's self-described profile. At most one exists per
// user (unique index on user_id); saves are upserts keyed by that identity
// and a portfolio is never independently deleted, so there is no soft-delete
// column here.
type Portfolio struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	EventName   string    `json:"event_name"`
	ThemeName   string    `json:"theme_name"`
	TalentName  string    `json:"talent_name"`
	Location    string    `json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	Rate        float64   `json:"rate"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PerformerProfile is the combined payload the performer endpoints return:
// the identity plus its portfolio. Clients replace their cached identity
// with the user in this response after a save.
type PerformerProfile struct {
	User      *User      `json:"user"`
	Portfolio *Portfolio `json:"portfolio"`
}
