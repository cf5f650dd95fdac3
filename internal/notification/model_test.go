package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	s := Default("user-123")

	assert.Equal(t, "user-123", s.UserID)
	assert.True(t, s.Enabled)
	assert.Equal(t, TimingOnExpiryDate, s.Timing)
	assert.True(t, s.VoiceEnabled)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestApplyPartialUpdate(t *testing.T) {
	s := Default("user-123")
	disabled := false
	timing := TimingDayBefore

	got := s.Apply(Update{Enabled: &disabled, Timing: &timing})

	assert.False(t, got.Enabled)
	assert.Equal(t, TimingDayBefore, got.Timing)
	// Fields absent from the update keep their current values.
	assert.True(t, got.VoiceEnabled)
	assert.Equal(t, s.CreatedAt, got.CreatedAt)
	assert.False(t, got.UpdatedAt.Before(s.UpdatedAt))
}

func TestApplyEmptyUpdateKeepsValues(t *testing.T) {
	s := Default("user-123")

	got := s.Apply(Update{})

	assert.Equal(t, s.Enabled, got.Enabled)
	assert.Equal(t, s.Timing, got.Timing)
	assert.Equal(t, s.VoiceEnabled, got.VoiceEnabled)
}
