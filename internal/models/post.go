package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Talents is the set of talent categories requested by an event post.
// It is persisted as a JSON array and round-trips in insertion order so
// clients get a stable display order.
type Talents []string

// Value serializes the talent list to JSON for storage.
func (t Talents) Value() (driver.Value, error) {
	if t == nil {
		t = Talents{}
	}
	return json.Marshal(t)
}

// Scan deserializes a JSON column value into the talent list.
func (t *Talents) Scan(value any) error {
	if value == nil {
		*t = Talents{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, t)
	case string:
		return json.Unmarshal([]byte(v), t)
	default:
		return fmt.Errorf("unsupported talents column type %T", value)
	}
}

// Post represents a client's event-booking request.
// The original schema carries no author column; client_name is free text.
type Post struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	ClientName string `gorm:"not null" json:"client_name"`
	EventName  string `gorm:"not null" json:"event_name"`
	// StartTime and EndTime are wall-clock "HH:MM" values. End may precede
	// start; no cross-field ordering is enforced.
	StartTime   string         `json:"start_time"`
	EndTime     string         `json:"end_time"`
	Description string         `gorm:"type:text;not null" json:"description"`
	Talents     Talents        `gorm:"type:json" json:"talents"`
	Comments    []Comment      `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
