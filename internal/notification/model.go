package notification

import "time"

// Timing values the frontend understands.
const (
	TimingOnExpiryDate  = "on_expiry_date"
	TimingDayBefore     = "day_before"
	TimingTwoDaysBefore = "two_days_before"
)

// Settings is the one-per-user notification preference record.
type Settings struct {
	UserID       string    `json:"user_id" db:"user_id"`
	Enabled      bool      `json:"enabled" db:"enabled"`
	Timing       string    `json:"timing" db:"timing"`
	VoiceEnabled bool      `json:"voice_enabled" db:"voice_enabled"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Update carries a partial settings change; nil fields keep their current
// value.
type Update struct {
	Enabled      *bool   `json:"enabled"`
	Timing       *string `json:"timing"`
	VoiceEnabled *bool   `json:"voice_enabled"`
}

// Default is what a user without a stored record sees. Nothing is persisted
// until the first update.
func Default(userID string) Settings {
	now := time.Now()
	return Settings{
		UserID:       userID,
		Enabled:      true,
		Timing:       TimingOnExpiryDate,
		VoiceEnabled: true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Apply merges an update into s and returns the result.
func (s Settings) Apply(u Update) Settings {
	if u.Enabled != nil {
		s.Enabled = *u.Enabled
	}
	if u.Timing != nil {
		s.Timing = *u.Timing
	}
	if u.VoiceEnabled != nil {
		s.VoiceEnabled = *u.VoiceEnabled
	}
	s.UpdatedAt = time.Now()
	return s
}
