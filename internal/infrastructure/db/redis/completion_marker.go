package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const markerTTL = 30 * 24 * time.Hour

// CompletionMarker remembers which requests already had their completion
// mail sent, so repeated completed writes on the same request do not spam
// the customer. Key format: completion_mail:<request_id>
type CompletionMarker struct {
	client *redis.Client
}

// NewCompletionMarker creates a CompletionMarker wrapping the given client.
func NewCompletionMarker(client *redis.Client) *CompletionMarker {
	return &CompletionMarker{client: client}
}

// MarkIfFirst atomically records the completion and reports whether this
// call was the first for the request.
func (m *CompletionMarker) MarkIfFirst(ctx context.Context, requestID string) (bool, error) {
	ok, err := m.client.SetNX(ctx, m.key(requestID), "1", markerTTL).Result()
	if err != nil {
		return false, fmt.Errorf("completion marker: %w", err)
	}
	return ok, nil
}

func (m *CompletionMarker) key(requestID string) string {
	return "completion_mail:" + requestID
}
