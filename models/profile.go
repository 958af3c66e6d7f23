package models

import "time"

// StoreProfile is the cached session/tenant identity for this terminal. It
// is obtained from the backend session lookup and stored in the settings
// collection so that sync passes can scope queries while offline.
type StoreProfile struct {
	StoreID     string    `json:"store_id"`
	UserID      string    `json:"user_id"`
	AccessToken string    `json:"access_token"`
	CachedAt    time.Time `json:"cached_at"`
}
