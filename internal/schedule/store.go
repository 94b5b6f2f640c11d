package schedule

import (
	"context"
	"fmt"
	"sync"
)

// Persistence stores the full period collection as one unit. Implementations
// must round-trip every field losslessly, date values included.
type Persistence interface {
	Save(ctx context.Context, periods []Period) error
	Load(ctx context.Context) ([]Period, error)
}

// Store owns the ordered collection of generated periods. Order is insertion
// order (oldest generation first), not chronological: overlapping date ranges
// between periods are allowed and never detected.
//
// The mutex only guards memory; semantically the system still assumes a
// single active editor session at a time.
type Store struct {
	mu      sync.Mutex
	gate    *Gate
	storage Persistence
	periods []Period
}

func NewStore(gate *Gate, storage Persistence) *Store {
	return &Store{
		gate:    gate,
		storage: storage,
		periods: make([]Period, 0),
	}
}

// Restore replaces the in-memory collection with the persisted one.
func (s *Store) Restore(ctx context.Context) error {
	periods, err := s.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("تعذر تحميل جدول المناوبات: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.periods = periods
	return nil
}

// AddPeriod generates a rotation block and appends it. The gate must be
// unlocked; validation failures propagate from Generate and leave the store
// untouched.
func (s *Store) AddPeriod(ctx context.Context, start Date, days int, staff []string) (Period, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.Unlocked() {
		return Period{}, ErrLocked
	}

	assignments, err := Generate(start, days, staff)
	if err != nil {
		return Period{}, err
	}

	period := Period{
		StartDate:   start,
		EndDate:     start.AddDays(days - 1),
		Assignments: assignments,
	}

	s.periods = append(s.periods, period)
	if err := s.storage.Save(ctx, s.periods); err != nil {
		s.periods = s.periods[:len(s.periods)-1]
		return Period{}, fmt.Errorf("تعذر حفظ جدول المناوبات: %w", err)
	}

	return period, nil
}

// DeletePeriod removes one period as a whole unit.
func (s *Store) DeletePeriod(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.periods) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	removed := s.periods[index]
	s.periods = append(s.periods[:index], s.periods[index+1:]...)
	if err := s.storage.Save(ctx, s.periods); err != nil {
		s.periods = append(s.periods[:index], append([]Period{removed}, s.periods[index:]...)...)
		return fmt.Errorf("تعذر حفظ جدول المناوبات: %w", err)
	}

	return nil
}

// ClearAll empties the store. The gate must be unlocked.
func (s *Store) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.Unlocked() {
		return ErrLocked
	}

	previous := s.periods
	s.periods = make([]Period, 0)
	if err := s.storage.Save(ctx, s.periods); err != nil {
		s.periods = previous
		return fmt.Errorf("تعذر حفظ جدول المناوبات: %w", err)
	}

	return nil
}

// ListPeriods returns the periods in insertion order.
func (s *Store) ListPeriods() []Period {
	s.mu.Lock()
	defer s.mu.Unlock()

	periods := make([]Period, len(s.periods))
	copy(periods, s.periods)
	return periods
}
