package testutil

import (
	"aquad/internal/models"
	"aquad/internal/providers"
	"sync"
	"time"
)

// MockLogger implements providers.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   providers.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t providers.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Debugf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Infof(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Fatalf(t providers.TypeEnum, format string, args ...interface{}) {
	m.record("fatal", t, format, args...)
}
func (m *MockLogger) Close() {}

// MockClock implements services.Clock with a settable current time.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewMockClock(now time.Time) *MockClock {
	return &MockClock{now: now}
}

func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *MockClock) Set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// MockSink implements interfaces.NotificationSink and records the batch.
type MockSink struct {
	mu             sync.Mutex
	Scheduled      []models.NotificationPayload
	CancelAllCalls int
	ScheduleErr    error
	CancelErr      error
}

func (m *MockSink) ScheduleAt(payload models.NotificationPayload, _ time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ScheduleErr != nil {
		return m.ScheduleErr
	}
	m.Scheduled = append(m.Scheduled, payload)
	return nil
}

func (m *MockSink) CancelAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CancelAllCalls++
	m.Scheduled = nil
	return m.CancelErr
}

func (m *MockSink) Close() error { return nil }

func (m *MockSink) Batch() []models.NotificationPayload {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.NotificationPayload(nil), m.Scheduled...)
}

func (m *MockSink) Cancellations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CancelAllCalls
}

// MockOracle implements interfaces.PermissionOracle with a settable status.
type MockOracle struct {
	mu          sync.Mutex
	Current     models.PermissionStatus
	StatusCalls int
}

func (m *MockOracle) Status() models.PermissionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StatusCalls++
	return m.Current
}

func (m *MockOracle) Request() models.PermissionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Current == models.PermissionUndetermined {
		m.Current = models.PermissionGranted
	}
	return m.Current
}

func (m *MockOracle) Set(status models.PermissionStatus) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Current = status
}

// MockStore implements storage.StoreInterface backed by a map.
type MockStore struct {
	mu     sync.Mutex
	Data   map[string][]byte
	GetErr error
	SetErr error
}

func NewMockStore() *MockStore {
	return &MockStore{Data: make(map[string][]byte)}
}

func (m *MockStore) Get(key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return nil, false, m.GetErr
	}
	val, ok := m.Data[key]
	return val, ok, nil
}

func (m *MockStore) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Data[key] = append([]byte(nil), value...)
	return nil
}

// MockCompressor implements storage.CompressorInterface with injectable behavior.
type MockCompressor struct {
	CompressFn   func([]byte) ([]byte, error)
	DecompressFn func([]byte) ([]byte, error)
}

func (m *MockCompressor) Compress(val []byte) ([]byte, error) {
	if m.CompressFn != nil {
		return m.CompressFn(val)
	}
	// Default: return as-is (identity)
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Decompress(val []byte) ([]byte, error) {
	if m.DecompressFn != nil {
		return m.DecompressFn(val)
	}
	out := make([]byte, len(val))
	copy(out, val)
	return out, nil
}

func (m *MockCompressor) Close() {}

// MockMetrics implements providers.MetricsProviderInterface and counts calls.
type MockMetrics struct {
	mu                 sync.Mutex
	Requests           int
	Actions            map[string]int
	PersistenceWrites  int
	RemindersScheduled int
	BatchCancellations int
	RemindersDelivered int
}

func (m *MockMetrics) IncRequestsTotal(_ string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Requests++
}
func (m *MockMetrics) ObserveRequestDuration(_ string, _ time.Duration) {}
func (m *MockMetrics) IncCacheHits()                                    {}
func (m *MockMetrics) IncCacheMisses()                                  {}
func (m *MockMetrics) IncActionsTotal(action string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Actions == nil {
		m.Actions = make(map[string]int)
	}
	m.Actions[action]++
}
func (m *MockMetrics) ObservePersistenceDuration(_ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.PersistenceWrites++
}
func (m *MockMetrics) AddRemindersScheduled(count int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemindersScheduled += count
}
func (m *MockMetrics) IncBatchCancellations() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.BatchCancellations++
}
func (m *MockMetrics) IncRemindersDelivered() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RemindersDelivered++
}
