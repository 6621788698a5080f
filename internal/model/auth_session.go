package model

import "time"

// AuthSession is an append-only login audit record. Never mutated or deleted.
type AuthSession struct {
	ID        int       `json:"id"`
	TenantID  string    `json:"tenant_id"`
	UserID    int       `json:"user_id"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
