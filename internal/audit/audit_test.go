package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublisherAndWorker(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := NewMemoryStore()
	pub := NewPublisher(8, logger)
	worker := NewWorker(store, pub.Inbox())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- worker.Run(ctx) }()

	pub.Emit(ctx, Event{RecordID: "rec-1", CaseID: "42", Action: ActionCaseCreated, EventID: "validAppealCreated"})
	pub.Emit(ctx, Event{RecordID: "rec-2", Action: ActionDuplicateFound})

	require.Eventually(t, func() bool {
		return len(store.Events()) == 2
	}, time.Second, 10*time.Millisecond)

	events := store.Events()
	assert.Equal(t, ActionCaseCreated, events[0].Action)
	assert.Equal(t, "42", events[0].CaseID)
	assert.False(t, events[0].Timestamp.IsZero())
	assert.Equal(t, ActionDuplicateFound, events[1].Action)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestEmitNeverBlocks(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	pub := NewPublisher(1, logger)

	// No worker draining the inbox; the second emit must drop, not hang.
	pub.Emit(context.Background(), Event{RecordID: "rec-1", Action: ActionCasesLinked})
	pub.Emit(context.Background(), Event{RecordID: "rec-2", Action: ActionCasesLinked})

	assert.Len(t, pub.Inbox(), 1)
}

func TestNilPublisherEmit(t *testing.T) {
	var pub *Publisher
	pub.Emit(context.Background(), Event{Action: ActionCaseUpdated})
}

func TestMemoryStoreCopies(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Append(context.Background(), Event{Action: ActionCaseCreated}))

	events := store.Events()
	events[0].Action = "mutated"

	assert.Equal(t, ActionCaseCreated, store.Events()[0].Action)
}
