package ride

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedNeverGoesBackward(t *testing.T) {
	ordered := []Status{StatusSearching, StatusAccepted, StatusPickup, StatusInProgress, StatusCompleted}

	for i, from := range ordered {
		for j, to := range ordered {
			if j >= i {
				assert.True(t, Allowed(from, to), "%s -> %s should be allowed", from, to)
			} else {
				assert.False(t, Allowed(from, to), "%s -> %s should be rejected", from, to)
			}
		}
	}
}

func TestNext(t *testing.T) {
	assert.Equal(t, StatusAccepted, Next(StatusSearching))
	assert.Equal(t, StatusPickup, Next(StatusAccepted))
	assert.Equal(t, StatusInProgress, Next(StatusPickup))
	assert.Equal(t, StatusCompleted, Next(StatusInProgress))
	assert.Equal(t, StatusCompleted, Next(StatusCompleted))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(StatusCompleted))
	assert.False(t, IsTerminal(StatusSearching))
	assert.False(t, IsTerminal(StatusInProgress))
}
