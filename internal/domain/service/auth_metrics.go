package service

// Outcome labels recorded for login and refresh attempts.
const (
	OutcomeSuccess            = "success"
	OutcomeInvalidCredentials = "invalid_credentials"
	OutcomeLocked             = "locked"
	OutcomeInvalidToken       = "invalid_token"
	OutcomeExpiredToken       = "expired_token"
	OutcomeError              = "error"
)

// AuthMetrics records authentication events.
type AuthMetrics interface {
	LoginAttempt(outcome string)
	RefreshAttempt(outcome string)
	SessionsEvicted(count int)
	SessionsSwept(count int)
}
