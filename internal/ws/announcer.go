package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// RankingsReadyEvent tells a connected client that a fresh ranking is
// available; the client layer turns it into its screen-reader / haptic
// announcement.
type RankingsReadyEvent struct {
	Type      string `json:"type"`
	UserID    string `json:"user_id"`
	Total     int    `json:"total"`
	TopScore  int    `json:"top_score"`
	Timestamp string `json:"timestamp"`
}

// Announcer satisfies usecase.Announcer by broadcasting over the hub.
type Announcer struct {
	hub *Hub
}

func NewAnnouncer(hub *Hub) *Announcer {
	return &Announcer{hub: hub}
}

func (a *Announcer) RankingsReady(userID uuid.UUID, total int, topScore int) {
	if a == nil || a.hub == nil {
		return
	}

	evt := RankingsReadyEvent{
		Type:      "rankings_ready",
		UserID:    userID.String(),
		Total:     total,
		TopScore:  topScore,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	a.hub.Broadcast(b)
}
