// Package models defines the diary entry entity as exchanged with the
// mydiary service.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the only timestamp format the service emits. A value
// that does not match is a decode failure for the whole response; no
// fallback layout is attempted.
const TimestampLayout = "2006-01-02 15:04:05"

// Timestamp is a time.Time that marshals to and from the service's fixed
// "2006-01-02 15:04:05" layout.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(TimestampLayout))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := time.Parse(TimestampLayout, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Diary is a single diary entry. IDs are assigned by the server; the client
// only ever holds a transient copy. Field names on the wire follow the
// service schema (diary_user is the entry body).
type Diary struct {
	ID        int       `json:"id_diary"`
	UserID    int       `json:"user_id"`
	Title     string    `json:"title"`
	Body      string    `json:"diary_user"`
	CreatedAt Timestamp `json:"create_at"`
	UpdatedAt Timestamp `json:"update_at"`
}
