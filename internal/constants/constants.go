package constants

import "time"

// Context keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyNote   = "note"
)

// Auth
const (
	TokenLifetime = 24 * time.Hour
)

// Chat relay
const (
	CompletionTimeout = 30 * time.Second
)
