package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airsentry/hub/internal/models"
)

func reading(co2 float64) *models.Reading {
	return &models.Reading{CO2: co2, Thresholds: map[string]float64{}}
}

func TestAppendBelowCapacityPreservesOrder(t *testing.T) {
	s := New(5)

	for i := 1; i <= 3; i++ {
		s.Append(reading(float64(i)))
		assert.Equal(t, i, s.Len())
	}

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 3)
	for i, r := range snapshot {
		assert.Equal(t, float64(i+1), r.CO2)
	}
}

func TestAppendAtCapacityEvictsOldestFIFO(t *testing.T) {
	s := New(DefaultCapacity)

	for i := 0; i < DefaultCapacity; i++ {
		s.Append(reading(float64(i)))
	}
	require.Equal(t, DefaultCapacity, s.Len())

	s.Append(reading(999))

	snapshot := s.Snapshot()
	require.Len(t, snapshot, DefaultCapacity)
	// First element is now the second-oldest of the prior store.
	assert.Equal(t, 1.0, snapshot[0].CO2)
	assert.Equal(t, 999.0, snapshot[len(snapshot)-1].CO2)
}

func TestNewFallsBackToDefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0).Capacity())
	assert.Equal(t, DefaultCapacity, New(-3).Capacity())
	assert.Equal(t, 10, New(10).Capacity())
}

func TestLatest(t *testing.T) {
	s := New(3)

	_, ok := s.Latest()
	assert.False(t, ok)

	s.Append(reading(1))
	s.Append(reading(2))

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, 2.0, latest.CO2)
}

func TestSnapshotIsACopy(t *testing.T) {
	s := New(3)
	s.Append(reading(1))
	s.Append(reading(2))

	snapshot := s.Snapshot()
	snapshot[0] = reading(42)

	assert.Equal(t, 1.0, s.Snapshot()[0].CO2)
}

func TestSeriesMatchesStoreOrderAndField(t *testing.T) {
	s := New(10)
	for i := 0; i < 4; i++ {
		s.Append(&models.Reading{CO2: float64(i * 100), Humidity: float64(50 + i)})
	}

	points := s.Series(models.FieldCO2)
	require.Len(t, points, 4)
	for i, p := range points {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, float64(i*100), p.Value)
	}

	humidity := s.Series(models.FieldHumidity)
	require.Len(t, humidity, 4)
	assert.Equal(t, 53.0, humidity[3].Value)
}

func TestSeriesReflectsCurrentContents(t *testing.T) {
	s := New(2)
	s.Append(reading(1))
	s.Append(reading(2))
	require.Len(t, s.Series(models.FieldCO2), 2)

	// Eviction shifts the series: same length, new values, reindexed from 0.
	s.Append(reading(3))
	points := s.Series(models.FieldCO2)
	require.Len(t, points, 2)
	assert.Equal(t, 0, points[0].Index)
	assert.Equal(t, 2.0, points[0].Value)
	assert.Equal(t, 3.0, points[1].Value)
}

func TestEvictionUnderSustainedAppends(t *testing.T) {
	s := New(4)
	for i := 0; i < 100; i++ {
		s.Append(reading(float64(i)))
	}

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 4)
	for i, r := range snapshot {
		assert.Equal(t, float64(96+i), r.CO2, fmt.Sprintf("position %d", i))
	}
}
