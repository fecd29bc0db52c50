package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jameshuangoutlook/arkiviatodo/models"
)

// Severity variants, matching the toast variants the web client renders.
const (
	SeveritySuccess = "success"
	SeverityDanger  = "danger"
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// DefaultTTL is how long an event stays visible unless dismissed first.
const DefaultTTL = 5 * time.Second

type event struct {
	models.NotificationEvent
	expiresAt time.Time
}

// Queue is one user's ephemeral notification list. Events expire TTL after
// creation; expiry is deadline-based and pruned on every access, so no
// per-event timer is needed.
type Queue struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	events []event
}

func NewQueue(ttl time.Duration) *Queue {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Queue{ttl: ttl, now: time.Now}
}

// Push appends an event and returns its id. Ids are unique (timestamp plus
// a random tie-breaker); ordering beyond insertion order is not guaranteed.
func (q *Queue) Push(severity, message, title string) string {
	q.mu.Lock()
	defer q.mu.Unlock()
	now := q.now()
	q.prune(now)

	id := fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
	q.events = append(q.events, event{
		NotificationEvent: models.NotificationEvent{
			ID:        id,
			Severity:  severity,
			Title:     title,
			Message:   message,
			CreatedAt: now,
		},
		expiresAt: now.Add(q.ttl),
	})
	return id
}

// Dismiss removes an event immediately. Dismissing an unknown or already
// expired id is a no-op.
func (q *Queue) Dismiss(id string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.prune(q.now())
	for i, e := range q.events {
		if e.ID == id {
			q.events = append(q.events[:i], q.events[i+1:]...)
			return
		}
	}
}

// List returns the live events in insertion order.
func (q *Queue) List() []models.NotificationEvent {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.prune(q.now())
	out := make([]models.NotificationEvent, 0, len(q.events))
	for _, e := range q.events {
		out = append(out, e.NotificationEvent)
	}
	return out
}

// prune drops expired events. Caller must hold q.mu.
func (q *Queue) prune(now time.Time) {
	live := q.events[:0]
	for _, e := range q.events {
		if now.Before(e.expiresAt) {
			live = append(live, e)
		}
	}
	q.events = live
}

// Center holds one queue per authenticated user.
type Center struct {
	mu     sync.Mutex
	ttl    time.Duration
	queues map[string]*Queue
}

func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl, queues: make(map[string]*Queue)}
}

// Queue returns the queue for uid, creating it on first use.
func (c *Center) Queue(uid string) *Queue {
	c.mu.Lock()
	defer c.mu.Unlock()
	q, ok := c.queues[uid]
	if !ok {
		q = NewQueue(c.ttl)
		c.queues[uid] = q
	}
	return q
}
