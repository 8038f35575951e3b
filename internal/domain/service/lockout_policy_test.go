package service

import (
	"testing"

	"backoffice/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestLockoutPolicy_IsLocked(t *testing.T) {
	policy := NewLockoutPolicy(5)

	tests := []struct {
		failed int
		want   bool
	}{
		{failed: 0, want: false},
		{failed: 4, want: false},
		{failed: 5, want: true},
		{failed: 9, want: true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, policy.IsLocked(tt.failed), "failed=%d", tt.failed)
	}

	assert.False(t, NewLockoutPolicy(0).IsLocked(100))
}

func TestLockoutPolicy_EvaluateChecksEnabledFirst(t *testing.T) {
	policy := NewLockoutPolicy(3)

	assert.Equal(t, LockoutOpen, policy.Evaluate(&entity.AuthAccount{Enabled: true, FailedAttempts: 2}))
	assert.Equal(t, LockoutLocked, policy.Evaluate(&entity.AuthAccount{Enabled: true, FailedAttempts: 3}))
	assert.Equal(t, LockoutDisabled, policy.Evaluate(&entity.AuthAccount{Enabled: false, FailedAttempts: 3}))
}

func TestLockoutPolicy_RemainingAttempts(t *testing.T) {
	policy := NewLockoutPolicy(5)

	assert.Equal(t, 5, policy.RemainingAttempts(0))
	assert.Equal(t, 1, policy.RemainingAttempts(4))
	assert.Equal(t, 0, policy.RemainingAttempts(7))
	assert.Equal(t, -1, NewLockoutPolicy(0).RemainingAttempts(7))
}
