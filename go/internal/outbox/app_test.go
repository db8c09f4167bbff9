package outbox

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcd-sim/franchise/go/internal/events"
)

type fakeOutboxRepo struct {
	rows []Event
	sent map[uuid.UUID]bool
}

func newFakeOutboxRepo() *fakeOutboxRepo {
	return &fakeOutboxRepo{sent: make(map[uuid.UUID]bool)}
}

func (f *fakeOutboxRepo) InsertEvent(ctx context.Context, eventType string, payload []byte) error {
	f.rows = append(f.rows, Event{
		ID:        uuid.New(),
		EventType: eventType,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
	return nil
}

func (f *fakeOutboxRepo) FetchUnsent(ctx context.Context, limit int32) ([]Event, error) {
	var out []Event
	for _, ev := range f.rows {
		if f.sent[ev.ID] {
			continue
		}
		out = append(out, ev)
		if int32(len(out)) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeOutboxRepo) MarkSent(ctx context.Context, id uuid.UUID) error {
	f.sent[id] = true
	return nil
}

func TestLogEventRoundTrips(t *testing.T) {
	repo := newFakeOutboxRepo()
	app := NewApp(repo)

	ev := events.LogEvent{
		Type:   events.EventTypeDraftPick,
		Text:   "Team 4 selected Prospect with pick 1 of round 1.",
		PIDs:   []int{7},
		TIDs:   []int{4},
		Season: 2026,
	}
	require.NoError(t, app.LogEvent(context.Background(), ev))

	require.Len(t, repo.rows, 1)
	assert.Equal(t, string(events.EventTypeDraftPick), repo.rows[0].EventType)

	var got events.LogEvent
	require.NoError(t, json.Unmarshal(repo.rows[0].Payload, &got))
	assert.Equal(t, ev, got)
}

func TestFetchUnsentEventsRejectsBadLimit(t *testing.T) {
	app := NewApp(newFakeOutboxRepo())

	_, err := app.FetchUnsentEvents(context.Background(), 0)
	assert.Error(t, err)
}

func TestProcessUnsentEventsSkipsFailures(t *testing.T) {
	repo := newFakeOutboxRepo()
	app := NewApp(repo)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, app.LogEvent(ctx, events.LogEvent{Type: events.EventTypeDraftLottery, Season: 2026}))
	}
	failID := repo.rows[1].ID

	err := app.ProcessUnsentEvents(ctx, 10, func(ev Event) error {
		if ev.ID == failID {
			return errors.New("publish failed")
		}
		return nil
	})
	require.NoError(t, err, "per-event failures never fail the batch")

	assert.True(t, repo.sent[repo.rows[0].ID])
	assert.False(t, repo.sent[failID], "a failed event stays unsent for the next batch")
	assert.True(t, repo.sent[repo.rows[2].ID])

	// The failed event is retried on the next pass.
	unsent, err := app.FetchUnsentEvents(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, failID, unsent[0].ID)
}
