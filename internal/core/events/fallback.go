package events

import (
	"context"

	"github.com/savannacrm/kenya-ai-crm-be/internal/shared/utils"
)

// FallbackPublisher stands in when no broker is configured. Event log
// records are still persisted; only the broadcast is skipped.
type FallbackPublisher struct{}

func NewFallback() Publisher {
	return &FallbackPublisher{}
}

func (p *FallbackPublisher) Publish(ctx context.Context, key string, payload interface{}) error {
	utils.LogWarn("FallbackPublisher: skipped publish", map[string]interface{}{"key": key})
	return nil
}

func (p *FallbackPublisher) Close() error {
	return nil
}
