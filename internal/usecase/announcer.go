package usecase

import "github.com/google/uuid"

// Announcer is the "announce an event" seam. The matching engine never
// calls it; the ranking usecase decides what to announce from the
// finished results, and the delivery layer (websocket hub, screen-reader
// bridge in the client) decides how to surface it.
type Announcer interface {
	RankingsReady(userID uuid.UUID, total int, topScore int)
}

type NopAnnouncer struct{}

func (NopAnnouncer) RankingsReady(uuid.UUID, int, int) {}
