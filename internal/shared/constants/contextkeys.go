// Package constants holds shared context keys set by the HTTP middleware
// and read by handlers.
package constants

const (
	ContextKeyUserID      = "user_id"
	ContextKeyUserRole    = "user_role"
	ContextKeyAccountCode = "account_code"
	ContextKeyDisplayName = "display_name"
	ContextKeyEmail       = "email"
)
