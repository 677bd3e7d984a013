package featureflags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		flag   string
		userID int
		want   bool
	}{
		{"On", "admin_reset=on", "admin_reset", 0, true},
		{"True", "admin_reset=true", "admin_reset", 0, true},
		{"One", "admin_reset=1", "admin_reset", 0, true},
		{"Off", "admin_reset=off", "admin_reset", 0, false},
		{"Unknown flag", "admin_reset=on", "other", 0, false},
		{"Case and whitespace", " Admin_Reset = ON ", "ADMIN_RESET", 0, true},
		{"Full rollout", "new_feed=100%", "new_feed", 7, true},
		{"Zero rollout", "new_feed=0%", "new_feed", 7, false},
		{"Rollout without user", "new_feed=50%", "new_feed", 0, false},
		{"Garbage value", "new_feed=maybe", "new_feed", 7, false},
		{"Garbage percent", "new_feed=x%", "new_feed", 7, false},
		{"Empty config", "", "admin_reset", 0, false},
		{"Malformed pair skipped", "admin_reset,other=on", "other", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager(tt.raw)
			assert.Equal(t, tt.want, m.Enabled(tt.flag, tt.userID))
		})
	}
}

func TestRolloutIsDeterministic(t *testing.T) {
	m := NewManager("new_feed=50%")

	first := m.Enabled("new_feed", 42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, m.Enabled("new_feed", 42))
	}
}

func TestNilManager(t *testing.T) {
	var m *Manager
	assert.False(t, m.Enabled("anything", 1))
}

func TestRaw(t *testing.T) {
	m := NewManager("a=on,b=off")

	raw := m.Raw()
	assert.Equal(t, map[string]string{"a": "on", "b": "off"}, raw)

	// Mutating the copy must not affect the manager.
	raw["a"] = "off"
	assert.True(t, m.Enabled("a", 0))
}
