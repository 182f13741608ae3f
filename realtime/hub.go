// Package realtime distributes deviation-report change events to
// connected clients over server-sent events.
package realtime

import (
	"sync"

	"recheck-api/models"
)

type EventType string

const (
	EventInsert EventType = "insert"
	EventUpdate EventType = "update"
	EventDelete EventType = "delete"
)

// Event is one change to the deviation_reports table. Report is set for
// inserts and updates; deletes carry only the id.
type Event struct {
	Type     EventType               `json:"type"`
	ReportID int                     `json:"report_id"`
	Report   *models.DeviationReport `json:"report,omitempty"`
}

const subscriberBuffer = 16

// Hub fans change events out to subscribers. Slow subscribers lose
// events rather than block writers; a lost event only costs one extra
// list refresh on the client.
type Hub struct {
	mu   sync.Mutex
	subs map[chan Event]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{})}
}

// Reports is the process-wide hub for deviation report changes.
var Reports = NewHub()

// Subscribe registers a listener. The returned cancel func must be
// called when the client disconnects.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		if _, ok := h.subs[ch]; ok {
			delete(h.subs, ch)
			close(ch)
		}
		h.mu.Unlock()
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber without blocking.
func (h *Hub) Publish(e Event) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// PublishInsert, PublishUpdate and PublishDelete are the write-path
// helpers controllers call after a committed change.
func (h *Hub) PublishInsert(r *models.DeviationReport) {
	h.Publish(Event{Type: EventInsert, ReportID: r.ID, Report: r})
}

func (h *Hub) PublishUpdate(r *models.DeviationReport) {
	h.Publish(Event{Type: EventUpdate, ReportID: r.ID, Report: r})
}

func (h *Hub) PublishDelete(id int) {
	h.Publish(Event{Type: EventDelete, ReportID: id})
}
