package service

// Event types pushed to WebSocket subscribers after a write.
const (
	EventPlayerCreated   = "player_created"
	EventPlayerDeleted   = "player_deleted"
	EventMatchCreated    = "match_created"
	EventMatchDeleted    = "match_deleted"
	EventSettingsUpdated = "settings_updated"
)

// Publisher broadcasts change notifications. *websocket.Hub implements it.
type Publisher interface {
	Broadcast(msgType string, payload interface{})
}

type noopPublisher struct{}

func (noopPublisher) Broadcast(string, interface{}) {}

func publisherOrNoop(p Publisher) Publisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}
