package outbox

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcd-sim/franchise/go/internal/events"
)

// OutboxRepository defines what the app layer needs from the repository.
type OutboxRepository interface {
	InsertEvent(ctx context.Context, eventType string, payload []byte) error
	FetchUnsent(ctx context.Context, limit int32) ([]Event, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
}

// App handles outbox business logic.
type App struct {
	repo OutboxRepository
}

func NewApp(repo OutboxRepository) *App {
	return &App{repo: repo}
}

// LogEvent appends a news-feed entry to the outbox.
func (a *App) LogEvent(ctx context.Context, ev events.LogEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event payload: %w", err)
	}
	if err := a.repo.InsertEvent(ctx, string(ev.Type), payload); err != nil {
		return fmt.Errorf("failed to insert %s event: %w", ev.Type, err)
	}

	log.Debug().
		Str("event_type", string(ev.Type)).
		Bool("notify", ev.ShowNotification).
		Msg("outbox event inserted")
	return nil
}

// FetchUnsentEvents fetches events waiting for relay.
func (a *App) FetchUnsentEvents(ctx context.Context, limit int32) ([]Event, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}
	evs, err := a.repo.FetchUnsent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch unsent events: %w", err)
	}
	return evs, nil
}

// MarkEventSent marks an event as relayed.
func (a *App) MarkEventSent(ctx context.Context, id uuid.UUID) error {
	if err := a.repo.MarkSent(ctx, id); err != nil {
		return fmt.Errorf("failed to mark event sent: %w", err)
	}
	return nil
}

// ProcessUnsentEvents relays a batch of unsent events through processor,
// marking each successfully relayed event as sent. Per-event failures are
// logged and skipped.
func (a *App) ProcessUnsentEvents(ctx context.Context, batchSize int32, processor func(ev Event) error) error {
	evs, err := a.FetchUnsentEvents(ctx, batchSize)
	if err != nil {
		return err
	}

	processed := 0
	for _, ev := range evs {
		if err := processor(ev); err != nil {
			log.Error().
				Err(err).
				Str("event_id", ev.ID.String()).
				Str("event_type", ev.EventType).
				Msg("failed to relay event")
			continue
		}
		if err := a.MarkEventSent(ctx, ev.ID); err != nil {
			log.Error().Err(err).Str("event_id", ev.ID.String()).Msg("failed to mark event sent")
			continue
		}
		processed++
	}

	if processed > 0 {
		log.Info().Int("processed", processed).Int("fetched", len(evs)).Msg("relayed outbox batch")
	}
	return nil
}
