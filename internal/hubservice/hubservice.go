package hubservice

import (
	"context"
	"sync"

	nuts "github.com/vaudience/go-nuts"

	"github.com/airsentry/hub/internal/device"
	"github.com/airsentry/hub/internal/errors"
	"github.com/airsentry/hub/internal/models"
	"github.com/airsentry/hub/internal/monitoring"
	"github.com/airsentry/hub/internal/poller"
	"github.com/airsentry/hub/internal/store"
)

// HubService is the presentation boundary: read access to the history store,
// the current classification, chart series extraction with a selectable
// field, manual refresh, and the two control commands.
type HubService struct {
	Store      *store.HistoryStore
	Device     *device.Client
	Poller     *poller.Poller
	Monitoring *monitoring.Service

	mu       sync.RWMutex
	selected models.MetricField
}

// New creates a new HubService instance. The charted field starts at the
// default selection (CO2).
func New(st *store.HistoryStore, dev *device.Client, pol *poller.Poller, mon *monitoring.Service) *HubService {
	return &HubService{
		Store:      st,
		Device:     dev,
		Poller:     pol,
		Monitoring: mon,
		selected:   models.DefaultField,
	}
}

// Validate checks if all required collaborators are initialized
func (s *HubService) Validate() error {
	if s.Store == nil {
		return ErrMissingCollaborator("store")
	}
	if s.Device == nil {
		return ErrMissingCollaborator("device")
	}
	if s.Poller == nil {
		return ErrMissingCollaborator("poller")
	}
	return nil
}

func ErrMissingCollaborator(name string) error {
	return errors.NewInternalError("missing collaborator: "+name, nil)
}

// Snapshot returns up to limit readings, oldest first. A limit below 1
// returns the full history.
func (s *HubService) Snapshot(limit int) []*models.Reading {
	readings := s.Store.Snapshot()
	if limit > 0 && limit < len(readings) {
		readings = readings[len(readings)-limit:]
	}
	return readings
}

// Latest returns the most recent reading, or false when none has arrived yet.
func (s *HubService) Latest() (*models.Reading, bool) {
	return s.Store.Latest()
}

// AirStatus is the current classification of the latest reading.
type AirStatus struct {
	Level       models.Level    `json:"level"`
	Accent      string          `json:"accent"`
	Description string          `json:"description"`
	Reading     *models.Reading `json:"reading,omitempty"`
}

// CurrentStatus classifies the latest reading. With an empty history it
// reports the Unknown level and no reading.
func (s *HubService) CurrentStatus() AirStatus {
	reading, ok := s.Store.Latest()
	if !ok {
		meta := models.Meta(models.LevelUnknown)
		return AirStatus{Level: meta.Level, Accent: meta.Accent, Description: meta.Description}
	}

	meta := models.Meta(reading.Classify())
	return AirStatus{
		Level:       meta.Level,
		Accent:      meta.Accent,
		Description: meta.Description,
		Reading:     reading,
	}
}

// SelectedField returns the currently charted metric field.
func (s *HubService) SelectedField() models.MetricField {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SelectField changes the charted metric field.
func (s *HubService) SelectField(field models.MetricField) error {
	if !field.Valid() {
		return errors.NewValidationError("unknown metric field: "+string(field), nil)
	}
	s.mu.Lock()
	s.selected = field
	s.mu.Unlock()
	nuts.L.Infof("[HubService] Charted field set to %s", field)
	return nil
}

// Series extracts the chart series for the given field from the current
// history, recomputed on every call. An empty field uses the current
// selection.
func (s *HubService) Series(field models.MetricField) ([]models.SeriesPoint, error) {
	if field == "" {
		field = s.SelectedField()
	}
	if !field.Valid() {
		return nil, errors.NewValidationError("unknown metric field: "+string(field), nil)
	}
	return s.Store.Series(field), nil
}

// Refresh runs one fetch cycle on demand and reports its outcome. It shares
// the poller's FetchOnce path, so eviction and failure handling are identical
// to the periodic case, and the periodic timer is unaffected.
func (s *HubService) Refresh(ctx context.Context) poller.Outcome {
	return s.Poller.FetchOnce(ctx)
}

// SetFan dispatches one fan control command, fire-and-forget relative to the
// acquisition cycle. The returned flag is only a confirmation hint; failures
// are logged and swallowed.
func (s *HubService) SetFan(ctx context.Context, action device.Action) bool {
	return s.dispatch(ctx, "fan", action, s.Device.SetFan)
}

// SetBuzzer dispatches one buzzer control command.
func (s *HubService) SetBuzzer(ctx context.Context, action device.Action) bool {
	return s.dispatch(ctx, "buzzer", action, s.Device.SetBuzzer)
}

func (s *HubService) dispatch(ctx context.Context, name string, action device.Action, send func(context.Context, device.Action) error) bool {
	if err := send(ctx, action); err != nil {
		kind := errors.FailureKind(err)
		s.Monitoring.RecordCommand(name, string(action), kind)
		nuts.L.Warnf("[HubService] %s command %s failed (%s): %v", name, action, kind, err)
		return false
	}
	s.Monitoring.RecordCommand(name, string(action), "ok")
	nuts.L.Infof("[HubService] %s set to %s", name, action)
	return true
}
