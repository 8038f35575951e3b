package service

import "backoffice/internal/domain/entity"

// LockoutState is the outcome of evaluating an account against the lockout policy.
type LockoutState int

const (
	LockoutOpen LockoutState = iota
	LockoutDisabled
	LockoutLocked
)

func (s LockoutState) String() string {
	switch s {
	case LockoutOpen:
		return "open"
	case LockoutDisabled:
		return "disabled"
	case LockoutLocked:
		return "locked"
	default:
		return "unknown"
	}
}

// LockoutPolicy is the counter-only brute-force policy. There is no time-based unlock;
// only an administrative reset clears a lock.
type LockoutPolicy struct {
	Threshold int
}

func NewLockoutPolicy(threshold int) LockoutPolicy {
	return LockoutPolicy{Threshold: threshold}
}

// IsLocked reports failed >= threshold. A non-positive threshold never locks.
func (p LockoutPolicy) IsLocked(failedAttempts int) bool {
	return p.Threshold > 0 && failedAttempts >= p.Threshold
}

// Evaluate checks the enabled flag before the counter.
func (p LockoutPolicy) Evaluate(account *entity.AuthAccount) LockoutState {
	if !account.Enabled {
		return LockoutDisabled
	}
	if p.IsLocked(account.FailedAttempts) {
		return LockoutLocked
	}

	return LockoutOpen
}

// RemainingAttempts returns how many failures are left before the account locks.
func (p LockoutPolicy) RemainingAttempts(failedAttempts int) int {
	if p.Threshold <= 0 {
		return -1
	}

	return max(p.Threshold-failedAttempts, 0)
}
