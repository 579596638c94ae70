package relay

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-llm-relay/models"
)

// Collector is a Replier that keeps replies in memory, in the order they
// were sent. Request/response transports return them in one body.
type Collector struct {
	mu      sync.Mutex
	replies []models.Reply
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Reply(_ context.Context, _ string, reply models.Reply) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.replies = append(c.replies, reply)
	return nil
}

// Replies returns the collected replies. The result is never nil.
func (c *Collector) Replies() []models.Reply {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]models.Reply, len(c.replies))
	copy(out, c.replies)
	return out
}
