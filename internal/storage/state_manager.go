package storage

import (
	"aquad/internal/models"
	"aquad/internal/providers"
	"aquad/internal/services"
	"aquad/internal/structures"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"go.uber.org/atomic"
)

// stateVersion is the current persisted envelope format.
const stateVersion = 1

// stateEnvelope wraps the persisted aggregate so future format changes can
// migrate on load. Blobs written before the envelope existed are the bare
// aggregate JSON; they are recognized by the missing state field.
type stateEnvelope struct {
	Version int                    `json:"version"`
	State   *models.HydrationState `json:"state"`
}

// StateManager owns the persistence round-trip for the hydration aggregate.
// It subscribes to the store and writes a compressed JSON blob after every
// mutation; writes are fire-and-forget and only need to converge on the
// latest state, so stale snapshots are dropped rather than queued.
type StateManager struct {
	conf       *structures.Config
	store      StoreInterface
	compressor CompressorInterface
	service    services.HydrationServiceInterface
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface

	opsMu       sync.Mutex
	seq         atomic.Uint64
	lastWritten uint64
}

func NewStateManager(conf *structures.Config, store StoreInterface, compressor CompressorInterface, service services.HydrationServiceInterface, logger providers.Logger, metrics providers.MetricsProviderInterface) *StateManager {
	return &StateManager{
		conf:       conf,
		store:      store,
		compressor: compressor,
		service:    service,
		logger:     logger,
		metrics:    metrics,
	}
}

// Restore loads the persisted blob into the service. A missing blob is the
// first-run case and keeps the defaults; a corrupt one is reported so the
// caller can log it, but the session continues on defaults either way.
func (m *StateManager) Restore() error {
	blob, ok, err := m.store.Get(m.conf.Persistence.StateKey)
	if err != nil {
		return err
	}
	if !ok {
		m.logger.Infof(providers.TypeApp, "No persisted state found, starting with defaults")
		return nil
	}

	data, err := m.compressor.Decompress(blob)
	if err != nil {
		return err
	}

	state, err := decodeState(data)
	if err != nil {
		return err
	}

	state.Normalize()
	m.service.Dispatch(models.LoadState{State: state})
	m.logger.Infof(providers.TypeApp, "Restored persisted state (last log %q)", state.LastLogDate)
	return nil
}

// decodeState reads a persisted blob, accepting both the current envelope
// and the bare aggregate written by earlier releases.
func decodeState(data []byte) (*models.HydrationState, error) {
	var env stateEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.State != nil {
		return env.State, nil
	}

	var state models.HydrationState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	return &state, nil
}

// OnStateChange is the service listener; it persists the new snapshot
// without blocking the dispatcher.
func (m *StateManager) OnStateChange(_, next *models.HydrationState) {
	seq := m.seq.Inc()
	go func() {
		if err := m.save(seq, next); err != nil {
			m.logger.Errorf(providers.TypeApp, "Error while persisting state: %s", err)
		}
	}()
}

// Persist writes the current state synchronously; used at shutdown.
func (m *StateManager) Persist() error {
	seq := m.seq.Inc()
	if err := m.save(seq, m.service.State()); err != nil {
		m.logger.Errorf(providers.TypeApp, "Error while persisting state: %s", err)
		return err
	}
	return nil
}

func (m *StateManager) save(seq uint64, state *models.HydrationState) error {
	m.opsMu.Lock()
	defer m.opsMu.Unlock()

	// A later snapshot already landed; writing this one would go backwards.
	if seq < m.lastWritten {
		return nil
	}

	start := time.Now()

	data, err := json.Marshal(stateEnvelope{Version: stateVersion, State: state})
	if err != nil {
		return err
	}
	blob, err := m.compressor.Compress(data)
	if err != nil {
		return err
	}
	if err := m.store.Set(m.conf.Persistence.StateKey, blob); err != nil {
		return err
	}

	m.lastWritten = seq
	m.metrics.ObservePersistenceDuration(time.Since(start))
	return nil
}

func (m *StateManager) Close() {
	m.compressor.Close()
}
