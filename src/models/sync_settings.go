package models

import "time"

// SyncSettings is the per-account bookkeeping row written after every
// successful sync run. The API token is never echoed back to clients.
type SyncSettings struct {
	AccountID string    `json:"accountId"`
	APIToken  string    `json:"-"`
	LastSync  time.Time `json:"lastSync"`
	IsActive  bool      `json:"isActive"`
}
