package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryPersistence keeps the saved collection in memory and can be told to
// fail, which is how the rollback paths are exercised.
type memoryPersistence struct {
	periods []Period
	saveErr error
	loadErr error
	saves   int
}

func (m *memoryPersistence) Save(_ context.Context, periods []Period) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.periods = make([]Period, len(periods))
	copy(m.periods, periods)
	m.saves++
	return nil
}

func (m *memoryPersistence) Load(_ context.Context) ([]Period, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.periods, nil
}

func unlockedStore(t *testing.T, storage Persistence) *Store {
	t.Helper()
	gate := NewGate("sirr")
	require.True(t, gate.Unlock("sirr"))
	return NewStore(gate, storage)
}

var testStaff = []string{"نايف", "عبيد", "عوض", "سند"}

func TestGate(t *testing.T) {
	t.Run("starts locked", func(t *testing.T) {
		gate := NewGate("sirr")
		assert.False(t, gate.Unlocked())
	})

	t.Run("wrong secret does not unlock", func(t *testing.T) {
		gate := NewGate("sirr")
		assert.False(t, gate.Unlock("khata"))
		assert.False(t, gate.Unlocked())
	})

	t.Run("unlock is one way", func(t *testing.T) {
		gate := NewGate("sirr")
		require.True(t, gate.Unlock("sirr"))
		require.True(t, gate.Unlocked())

		// a later wrong guess must not re-lock
		assert.False(t, gate.Unlock("khata"))
		assert.True(t, gate.Unlocked())
	})
}

func TestStoreAddPeriod(t *testing.T) {
	t.Run("locked store rejects any input", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := NewStore(NewGate("sirr"), storage)

		_, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 4, testStaff)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLocked)
		assert.Empty(t, store.ListPeriods())
		assert.Zero(t, storage.saves)
	})

	t.Run("appends and persists", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := unlockedStore(t, storage)

		period, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 4, testStaff)
		require.NoError(t, err)

		assert.Equal(t, NewDate(2025, time.January, 1), period.StartDate)
		assert.Equal(t, NewDate(2025, time.January, 4), period.EndDate)
		assert.Len(t, period.Assignments, 4)

		require.Len(t, store.ListPeriods(), 1)
		require.Len(t, storage.periods, 1)
		assert.Equal(t, period, storage.periods[0])
	})

	t.Run("validation failure leaves store untouched", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := unlockedStore(t, storage)

		_, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 0, testStaff)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrValidation)
		assert.Empty(t, store.ListPeriods())
	})

	t.Run("save failure rolls the append back", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := unlockedStore(t, storage)

		_, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 4, testStaff)
		require.NoError(t, err)

		storage.saveErr = errors.New("connection refused")
		_, err = store.AddPeriod(context.Background(), NewDate(2025, time.February, 1), 4, testStaff)
		require.Error(t, err)

		assert.Len(t, store.ListPeriods(), 1)
	})

	t.Run("overlapping ranges are allowed", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := unlockedStore(t, storage)

		_, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 10, testStaff)
		require.NoError(t, err)
		_, err = store.AddPeriod(context.Background(), NewDate(2025, time.January, 5), 10, testStaff)
		require.NoError(t, err)

		assert.Len(t, store.ListPeriods(), 2)
	})
}

func TestStoreDeletePeriod(t *testing.T) {
	populated := func(t *testing.T, storage *memoryPersistence) *Store {
		store := unlockedStore(t, storage)
		for _, month := range []time.Month{time.January, time.February, time.March} {
			_, err := store.AddPeriod(context.Background(), NewDate(2025, month, 1), 4, testStaff)
			require.NoError(t, err)
		}
		return store
	}

	t.Run("removes the whole unit", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := populated(t, storage)

		require.NoError(t, store.DeletePeriod(context.Background(), 1))

		periods := store.ListPeriods()
		require.Len(t, periods, 2)
		assert.Equal(t, NewDate(2025, time.January, 1), periods[0].StartDate)
		assert.Equal(t, NewDate(2025, time.March, 1), periods[1].StartDate)
		assert.Len(t, storage.periods, 2)
	})

	t.Run("index out of range", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := populated(t, storage)

		for _, index := range []int{-1, 3, 100} {
			err := store.DeletePeriod(context.Background(), index)
			require.Error(t, err, "index %d", index)
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		}
		assert.Len(t, store.ListPeriods(), 3)
	})

	t.Run("save failure reinserts the period", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := populated(t, storage)

		storage.saveErr = errors.New("connection refused")
		err := store.DeletePeriod(context.Background(), 1)
		require.Error(t, err)

		periods := store.ListPeriods()
		require.Len(t, periods, 3)
		assert.Equal(t, NewDate(2025, time.February, 1), periods[1].StartDate)
	})
}

func TestStoreClearAll(t *testing.T) {
	t.Run("requires the gate", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := NewStore(NewGate("sirr"), storage)

		err := store.ClearAll(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrLocked)
	})

	t.Run("empties store and storage", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := unlockedStore(t, storage)

		_, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 4, testStaff)
		require.NoError(t, err)

		require.NoError(t, store.ClearAll(context.Background()))
		assert.Empty(t, store.ListPeriods())
		assert.Empty(t, storage.periods)
	})

	t.Run("save failure keeps the periods", func(t *testing.T) {
		storage := &memoryPersistence{}
		store := unlockedStore(t, storage)

		_, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 4, testStaff)
		require.NoError(t, err)

		storage.saveErr = errors.New("connection refused")
		require.Error(t, store.ClearAll(context.Background()))
		assert.Len(t, store.ListPeriods(), 1)
	})
}

func TestStoreRestore(t *testing.T) {
	t.Run("loads the persisted collection", func(t *testing.T) {
		assignments, err := Generate(NewDate(2025, time.January, 1), 4, testStaff)
		require.NoError(t, err)

		storage := &memoryPersistence{periods: []Period{{
			StartDate:   NewDate(2025, time.January, 1),
			EndDate:     NewDate(2025, time.January, 4),
			Assignments: assignments,
		}}}

		store := NewStore(NewGate("sirr"), storage)
		require.NoError(t, store.Restore(context.Background()))

		periods := store.ListPeriods()
		require.Len(t, periods, 1)
		assert.Equal(t, assignments, periods[0].Assignments)
	})

	t.Run("load failure propagates", func(t *testing.T) {
		storage := &memoryPersistence{loadErr: errors.New("connection refused")}
		store := NewStore(NewGate("sirr"), storage)
		assert.Error(t, store.Restore(context.Background()))
	})
}

func TestStoreListPeriodsReturnsCopy(t *testing.T) {
	storage := &memoryPersistence{}
	store := unlockedStore(t, storage)

	_, err := store.AddPeriod(context.Background(), NewDate(2025, time.January, 1), 4, testStaff)
	require.NoError(t, err)

	periods := store.ListPeriods()
	periods[0].StartDate = NewDate(1999, time.January, 1)

	assert.Equal(t, NewDate(2025, time.January, 1), store.ListPeriods()[0].StartDate)
}
