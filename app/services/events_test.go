package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rosemaria96/SmartCampusSystem/app/database"
)

func TestDispatcherRunsHandlersInOrder(t *testing.T) {
	d := NewDispatcher()
	var calls []string

	d.Register("thing.created", Handler{Name: "first", Fn: func(q database.DBTX, e Event) error {
		calls = append(calls, "first")
		return nil
	}})
	d.Register("thing.created", Handler{Name: "second", Fn: func(q database.DBTX, e Event) error {
		calls = append(calls, "second")
		return nil
	}})

	warnings, err := d.Emit(nil, Event{Name: "thing.created"})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatcherCriticalFailureAborts(t *testing.T) {
	d := NewDispatcher()
	var secondRan bool

	d.Register("thing.created", Handler{Name: "boom", Critical: true, Fn: func(q database.DBTX, e Event) error {
		return errors.New("boom")
	}})
	d.Register("thing.created", Handler{Name: "after", Fn: func(q database.DBTX, e Event) error {
		secondRan = true
		return nil
	}})

	_, err := d.Emit(nil, Event{Name: "thing.created"})
	require.Error(t, err)
	assert.False(t, secondRan, "handlers after a failed critical handler must not run")
}

func TestDispatcherNonCriticalFailureIsSuppressed(t *testing.T) {
	d := NewDispatcher()
	var secondRan bool

	d.Register("thing.created", Handler{Name: "flaky", Fn: func(q database.DBTX, e Event) error {
		return errors.New("lookup failed")
	}})
	d.Register("thing.created", Handler{Name: "after", Fn: func(q database.DBTX, e Event) error {
		secondRan = true
		return nil
	}})

	warnings, err := d.Emit(nil, Event{Name: "thing.created"})
	require.NoError(t, err, "non-critical failures never escalate")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "flaky")
	assert.True(t, secondRan)
}

func TestDispatcherUnknownEventIsNoop(t *testing.T) {
	d := NewDispatcher()
	warnings, err := d.Emit(nil, Event{Name: "nobody.cares"})
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
