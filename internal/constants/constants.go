package constants

// Session
const (
	SessionCookieName = "projecthub_session"
	ContextKeyUserID  = "user_id"
	ContextKeyActor   = "actor"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Auth
const MinPasswordLength = 8

// Date format used by due dates and referral expirations.
const DateLayout = "2006-01-02"
