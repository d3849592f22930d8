package models

import "time"

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
)

// Connection links a requesting user to a recipient. Every connection is
// created pending; only the recipient may accept or ignore it.
type Connection struct {
	ID              int              `json:"id"`
	UserID          int              `json:"userId"`
	ConnectedUserID int              `json:"connectedUserId"`
	Status          ConnectionStatus `json:"status"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Stat is a display-only dashboard metric; values are stored, not recomputed
// from other entities.
type Stat struct {
	ID        int    `json:"id"`
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Value     int    `json:"value"`
	Icon      string `json:"icon"`
	IconColor string `json:"iconColor"`
	Change    int    `json:"change"`
	Timeframe string `json:"timeframe"`
}
