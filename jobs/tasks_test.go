package jobs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockExpirer struct {
	expired int64
	err     error
	asOf    time.Time
	calls   int
}

func (m *mockExpirer) ExpireOverdue(ctx context.Context, asOf time.Time) (int64, error) {
	m.calls++
	m.asOf = asOf
	return m.expired, m.err
}

func TestExpireSweepHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	expirer := &mockExpirer{expired: 3}

	handler := NewExpireSweepHandler(logger, expirer)
	err := handler(context.Background(), NewExpireSweepTask())
	require.NoError(t, err)

	assert.Equal(t, 1, expirer.calls)
	assert.WithinDuration(t, time.Now().UTC(), expirer.asOf, time.Minute)
}

func TestExpireSweepHandlerPropagatesError(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	wantErr := errors.New("connection refused")
	expirer := &mockExpirer{err: wantErr}

	handler := NewExpireSweepHandler(logger, expirer)
	err := handler(context.Background(), NewExpireSweepTask())
	require.Error(t, err)
	assert.True(t, errors.Is(err, wantErr))
}

func TestExpireSweepTaskType(t *testing.T) {
	task := NewExpireSweepTask()
	assert.Equal(t, TaskExpireSweep, task.Type())
}
