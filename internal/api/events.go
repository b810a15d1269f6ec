package api

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/estate-core/internal/audit"
)

// Resource names used in events, audit entries and topics.
const (
	ResourceProperty = "property"
	ResourceList     = "list"
)

// ChannelAll receives every event on the WebSocket hub.
const ChannelAll = "*"

// Event describes a successful change to a collection. It is broadcast on
// the WebSocket hub and published to MQTT.
type Event struct {
	ID        string    `json:"id"`
	Resource  string    `json:"resource"`
	Action    string    `json:"action"`
	EntityID  string    `json:"entity_id,omitempty"`
	Payload   any       `json:"payload,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Channel is the WebSocket channel the event is broadcast on,
// e.g. "property.create".
func (e Event) Channel() string {
	return e.Resource + "." + e.Action
}

// countMessage is the retained MQTT payload carrying a collection's size.
type countMessage struct {
	Resource  string    `json:"resource"`
	Count     int       `json:"count"`
	Timestamp time.Time `json:"timestamp"`
}

// change is the input to publishChange.
type change struct {
	resource string
	action   string
	entityID string
	payload  any
	details  map[string]any // stored with the audit entry
}

// publishChange fans a change out to the audit log, WebSocket clients,
// MQTT and InfluxDB. The request has already succeeded, so failures here
// are logged and never surface to the client.
func (s *Server) publishChange(ctx context.Context, c change) {
	ev := Event{
		ID:        uuid.NewString(),
		Resource:  c.resource,
		Action:    c.action,
		EntityID:  c.entityID,
		Payload:   c.payload,
		Timestamp: time.Now().UTC(),
	}
	size := s.collectionSize(c.resource)

	if s.recorder != nil {
		s.recorder.Record(&audit.Entry{
			ID:         ev.ID,
			Action:     c.action,
			EntityType: c.resource,
			EntityID:   c.entityID,
			Source:     audit.SourceAPI,
			Details:    c.details,
			CreatedAt:  ev.Timestamp,
		})
	}

	if s.hub != nil {
		s.hub.Broadcast(ev.Channel(), ev)
	}

	s.publishEvent(ev, size)
	s.writePoints(ctx, ev, size)
}

// publishEvent sends the event and the retained collection size to MQTT.
func (s *Server) publishEvent(ev Event, size int) {
	if s.events == nil || !s.events.IsConnected() {
		return
	}

	topics := s.events.Topics()
	if err := s.events.PublishJSON(topics.Event(ev.Resource, ev.Action), ev, false); err != nil {
		s.logger.Warn("publishing change event failed",
			"resource", ev.Resource,
			"action", ev.Action,
			"error", err,
		)
		return
	}

	count := countMessage{Resource: ev.Resource, Count: size, Timestamp: ev.Timestamp}
	if err := s.events.PublishJSON(topics.CollectionCount(ev.Resource), count, true); err != nil {
		s.logger.Warn("publishing collection count failed", "resource", ev.Resource, "error", err)
	}
}

// writePoints records the event and, after listing changes, a statistics
// snapshot. An empty collection has no statistics to write.
func (s *Server) writePoints(ctx context.Context, ev Event, size int) {
	if s.points == nil || !s.points.IsConnected() {
		return
	}

	s.points.WriteCollectionEvent(ev.Resource, ev.Action, size)

	if ev.Resource != ResourceProperty {
		return
	}
	stats, err := s.properties.Stats(ctx)
	if err != nil {
		s.logger.Debug("skipping property stats point", "error", err)
		return
	}
	s.points.WritePropertyStats(size, stats.Flat())
}

func (s *Server) collectionSize(resource string) int {
	switch resource {
	case ResourceProperty:
		return s.properties.Count()
	case ResourceList:
		return s.array.Len()
	default:
		return 0
	}
}
