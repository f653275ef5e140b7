// FilePath: internal/store/store.go
package store

import (
	"sync"

	"github.com/airsentry/hub/internal/models"
	nuts "github.com/vaudience/go-nuts"
)

// DefaultCapacity is the number of readings retained when no capacity is
// configured.
const DefaultCapacity = 50

// HistoryStore is a bounded, insertion-ordered buffer of readings, oldest
// first. Append is the sole mutation point: once the store is full, each
// append evicts the oldest reading (strict FIFO). Readers always observe a
// fully applied append, never a partial one.
type HistoryStore struct {
	mu       sync.RWMutex
	readings []*models.Reading
	capacity int
	events   *nuts.EventEmitter
}

// New creates an empty store. Capacities below 1 fall back to DefaultCapacity.
func New(capacity int) *HistoryStore {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	return &HistoryStore{
		readings: make([]*models.Reading, 0, capacity),
		capacity: capacity,
		events:   nuts.NewEventEmitter(),
	}
}

// Append adds a reading, evicting the oldest one first when at capacity.
func (s *HistoryStore) Append(r *models.Reading) {
	s.mu.Lock()
	if len(s.readings) == s.capacity {
		copy(s.readings, s.readings[1:])
		s.readings[len(s.readings)-1] = r
	} else {
		s.readings = append(s.readings, r)
	}
	size := len(s.readings)
	s.mu.Unlock()

	s.events.Emit("reading.appended", r, size)
}

// Snapshot returns a copy of the current contents, oldest first.
func (s *HistoryStore) Snapshot() []*models.Reading {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Reading, len(s.readings))
	copy(out, s.readings)
	return out
}

// Latest returns the most recent reading, or false when none has arrived yet.
func (s *HistoryStore) Latest() (*models.Reading, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.readings) == 0 {
		return nil, false
	}
	return s.readings[len(s.readings)-1], true
}

// Len returns the current number of retained readings.
func (s *HistoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.readings)
}

// Capacity returns the fixed capacity of the store.
func (s *HistoryStore) Capacity() int {
	return s.capacity
}

// Series extracts the chart series for one metric field from the current
// contents: one point per reading, indexed 0..N-1 in store order. It is
// recomputed on every call and never cached.
func (s *HistoryStore) Series(field models.MetricField) []models.SeriesPoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	points := make([]models.SeriesPoint, len(s.readings))
	for i, r := range s.readings {
		points[i] = models.SeriesPoint{Index: i, Value: r.Value(field)}
	}
	return points
}

// OnAppend registers a callback invoked after each successful append with the
// appended reading and the resulting store size.
func (s *HistoryStore) OnAppend(handlerID string, handler func(r *models.Reading, size int)) {
	s.events.On("reading.appended", handlerID, func(args ...interface{}) {
		if len(args) < 2 {
			return
		}
		r, ok := args[0].(*models.Reading)
		if !ok {
			return
		}
		size, ok := args[1].(int)
		if !ok {
			return
		}
		handler(r, size)
	})
}
