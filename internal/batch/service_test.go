package batch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pvillanueva/fup-consult/constants"
	"github.com/pvillanueva/fup-consult/internal/common"
	"github.com/pvillanueva/fup-consult/internal/entity"
	"github.com/pvillanueva/fup-consult/internal/provider"
)

// memStore is an in-memory JobStore and ItemStore with the same transition
// semantics as the ent-backed repositories.
type memStore struct {
	mu        sync.Mutex
	jobs      map[uuid.UUID]*entity.BatchJob
	items     map[uuid.UUID]*entity.BatchItem
	itemOrder []uuid.UUID
}

func newMemStore() *memStore {
	return &memStore{
		jobs:  make(map[uuid.UUID]*entity.BatchJob),
		items: make(map[uuid.UUID]*entity.BatchItem),
	}
}

func (m *memStore) CreateWithItems(_ context.Context, filename string, rucs []string, maxRetries int) (*entity.BatchJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job := &entity.BatchJob{
		ID:         uuid.New(),
		Filename:   filename,
		Status:     constants.JobStatusPending,
		TotalItems: len(rucs),
		CreatedAt:  time.Now(),
	}
	m.jobs[job.ID] = job
	for i, ruc := range rucs {
		item := &entity.BatchItem{
			ID:         uuid.New(),
			JobID:      job.ID,
			RUC:        ruc,
			Status:     constants.ItemStatusPending,
			MaxRetries: maxRetries,
			CreatedAt:  job.CreatedAt.Add(time.Duration(i) * time.Microsecond),
		}
		m.items[item.ID] = item
		m.itemOrder = append(m.itemOrder, item.ID)
	}
	cp := *job
	return &cp, nil
}

func (m *memStore) Get(_ context.Context, id uuid.UUID) (*entity.BatchJob, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *job
	return &cp, nil
}

func (m *memStore) MarkStarted(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job := m.jobs[id]
	if job.Status == constants.JobStatusPending {
		job.Status = constants.JobStatusProcessing
		now := time.Now()
		job.StartedAt = &now
	}
	return nil
}

func (m *memStore) MarkCompleted(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job := m.jobs[id]
	job.Status = constants.JobStatusCompleted
	now := time.Now()
	job.CompletedAt = &now
	return nil
}

func (m *memStore) MarkFailed(_ context.Context, id uuid.UUID, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	job := m.jobs[id]
	job.Status = constants.JobStatusFailed
	job.ErrorMessage = &message
	now := time.Now()
	job.CompletedAt = &now
	return nil
}

func (m *memStore) MarkCancelled(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	job, ok := m.jobs[id]
	if !ok || job.Status != constants.JobStatusProcessing {
		return false, nil
	}
	job.Status = constants.JobStatusCancelled
	now := time.Now()
	job.CompletedAt = &now
	return true, nil
}

func (m *memStore) IncrementCompleted(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].CompletedItems++
	return nil
}

func (m *memStore) IncrementFailed(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].FailedItems++
	return nil
}

func (m *memStore) AttachResult(_ context.Context, id uuid.UUID, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs[id].ResultFile = &path
	return nil
}

func (m *memStore) listByStatus(jobID uuid.UUID, statuses ...constants.ItemStatus) []*entity.BatchItem {
	var out []*entity.BatchItem
	for _, id := range m.itemOrder {
		item := m.items[id]
		if item.JobID != jobID {
			continue
		}
		for _, st := range statuses {
			if item.Status == st {
				cp := *item
				out = append(out, &cp)
				break
			}
		}
	}
	return out
}

func (m *memStore) ListOutstanding(_ context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listByStatus(jobID, constants.ItemStatusPending, constants.ItemStatusRetrying), nil
}

func (m *memStore) ListCompleted(_ context.Context, jobID uuid.UUID) ([]*entity.BatchItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listByStatus(jobID, constants.ItemStatusCompleted), nil
}

func (m *memStore) CountByStatus(_ context.Context, jobID uuid.UUID) (map[constants.ItemStatus]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	counts := make(map[constants.ItemStatus]int, len(constants.ItemStatuses))
	for _, st := range constants.ItemStatuses {
		counts[constants.ItemStatus(st)] = 0
	}
	for _, item := range m.items {
		if item.JobID == jobID {
			counts[item.Status]++
		}
	}
	return counts, nil
}

func (m *memStore) MarkProcessing(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[id].Status = constants.ItemStatusProcessing
	return nil
}

func (m *memStore) itemMark(id uuid.UUID, status constants.ItemStatus, retryCount int, message *string) {
	item := m.items[id]
	item.Status = status
	item.RetryCount = retryCount
	item.ErrorMessage = message
	now := time.Now()
	item.ProcessedAt = &now
}

func (m *memStore) MarkRetrying(_ context.Context, id uuid.UUID, retryCount int, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itemMark(id, constants.ItemStatusRetrying, retryCount, &message)
	return nil
}

func (m *memStore) MarkFailedItem(_ context.Context, id uuid.UUID, retryCount int, message string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.itemMark(id, constants.ItemStatusFailed, retryCount, &message)
	return nil
}

// itemStoreView adapts memStore's job/item method name collisions onto the
// ItemStore contract.
type itemStoreView struct{ *memStore }

func (v itemStoreView) MarkCompleted(_ context.Context, id uuid.UUID, result json.RawMessage) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	item := v.items[id]
	item.Status = constants.ItemStatusCompleted
	item.ResultData = result
	now := time.Now()
	item.ProcessedAt = &now
	return nil
}

func (v itemStoreView) MarkFailed(ctx context.Context, id uuid.UUID, retryCount int, message string) error {
	return v.MarkFailedItem(ctx, id, retryCount, message)
}

// fakeLookup is a scriptable Lookup that tracks concurrency.
type fakeLookup struct {
	mu       sync.Mutex
	failures map[string]int
	calls    map[string]int
	inFlight int
	maxSeen  int
	delay    time.Duration
	onCall   func(ruc string)
}

func newFakeLookup() *fakeLookup {
	return &fakeLookup{failures: make(map[string]int), calls: make(map[string]int)}
}

func (f *fakeLookup) GetProviderData(_ context.Context, ruc string) (*provider.Record, error) {
	f.mu.Lock()
	f.calls[ruc]++
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	fail := f.failures[ruc] > 0
	if fail {
		f.failures[ruc]--
	}
	hook := f.onCall
	f.mu.Unlock()

	if hook != nil {
		hook(ruc)
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.inFlight--
	f.mu.Unlock()

	if fail {
		return nil, fmt.Errorf("upstream unavailable")
	}
	return &provider.Record{
		General: provider.General{RUC: ruc, RazonSocial: "EMPRESA " + ruc, Estado: "ACTIVO"},
	}, nil
}

type fakeAssembler struct {
	mu    sync.Mutex
	calls int
	path  string
	err   error
}

func (f *fakeAssembler) AssembleResult(_ context.Context, job *entity.BatchJob, _ []*entity.BatchItem) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.path == "" {
		f.path = fmt.Sprintf("results/batch_result_%s.xlsx", job.ID)
	}
	return f.path, nil
}

func testConfig() common.BatchConfig {
	return common.BatchConfig{
		MaxConcurrent: 4,
		MaxRetries:    3,
		RetryDelay:    0,
		ChunkSize:     100,
	}
}

func newTestService(store *memStore, lookup Lookup, asm Assembler) *Service {
	return NewService(store, itemStoreView{store}, lookup, asm, testConfig(), slog.New(slog.DiscardHandler))
}

func mustRun(t *testing.T, svc *Service, jobID uuid.UUID) {
	t.Helper()
	_, err := svc.Run(context.Background(), jobID)
	require.NoError(t, err)
}

func rucList(n int) []string {
	rucs := make([]string, n)
	for i := range rucs {
		rucs[i] = fmt.Sprintf("20%09d", i+1)
	}
	return rucs
}

func TestSubmitDedupesAndValidates(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, newFakeLookup(), &fakeAssembler{})

	job, err := svc.Submit(context.Background(), "proveedores.xlsx", []string{
		" 20100070970 ",
		"20100070970",
		"20600055519",
		"not-a-ruc",
		"123",
		"20100070970",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, job.TotalItems)
	assert.Equal(t, constants.JobStatusPending, job.Status)

	items, err := store.ListOutstanding(context.Background(), job.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "20100070970", items[0].RUC)
	assert.Equal(t, "20600055519", items[1].RUC)
}

func TestSubmitEmptyInput(t *testing.T) {
	svc := newTestService(newMemStore(), newFakeLookup(), &fakeAssembler{})

	_, err := svc.Submit(context.Background(), "vacio.xlsx", []string{"abc", ""})
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestRunAllSuccess(t *testing.T) {
	store := newMemStore()
	lookup := newFakeLookup()
	asm := &fakeAssembler{}
	svc := newTestService(store, lookup, asm)
	ctx := context.Background()

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucList(5))
	require.NoError(t, err)
	mustRun(t, svc, job.ID)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 5, got.CompletedItems)
	assert.Equal(t, 0, got.FailedItems)
	require.NotNil(t, got.ResultFile)
	assert.Equal(t, 1, asm.calls)
	assert.NotNil(t, got.StartedAt)
	assert.NotNil(t, got.CompletedAt)

	completed, err := store.ListCompleted(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, completed, 5)
	for _, item := range completed {
		assert.NotEmpty(t, item.ResultData)
		assert.NotNil(t, item.ProcessedAt)
	}
}

func TestRunDefaultsConcurrencyWhenUnset(t *testing.T) {
	store := newMemStore()
	cfg := testConfig()
	cfg.MaxConcurrent = 0
	svc := NewService(store, itemStoreView{store}, newFakeLookup(), &fakeAssembler{}, cfg, slog.New(slog.DiscardHandler))
	ctx := context.Background()

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucList(3))
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() {
		_, err := svc.Run(ctx, job.ID)
		done <- err
	}()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("run stalled with a zero-value concurrency setting")
	}

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
}

func TestRunRetriesThenSucceeds(t *testing.T) {
	store := newMemStore()
	lookup := newFakeLookup()
	svc := newTestService(store, lookup, &fakeAssembler{})
	ctx := context.Background()

	rucs := rucList(3)
	lookup.failures[rucs[1]] = 2 // two failed attempts, third succeeds

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucs)
	require.NoError(t, err)
	mustRun(t, svc, job.ID)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 3, got.CompletedItems)
	assert.Equal(t, 0, got.FailedItems)
	assert.Equal(t, 3, lookup.calls[rucs[1]])
	assert.Equal(t, 1, lookup.calls[rucs[0]])

	completed, err := store.ListCompleted(ctx, job.ID)
	require.NoError(t, err)
	for _, item := range completed {
		if item.RUC == rucs[1] {
			assert.Equal(t, 2, item.RetryCount)
		}
	}
}

func TestRunExhaustsRetries(t *testing.T) {
	store := newMemStore()
	lookup := newFakeLookup()
	svc := newTestService(store, lookup, &fakeAssembler{})
	ctx := context.Background()

	rucs := rucList(2)
	lookup.failures[rucs[0]] = 100 // never succeeds

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucs)
	require.NoError(t, err)
	mustRun(t, svc, job.ID)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Equal(t, 1, got.CompletedItems)
	assert.Equal(t, 1, got.FailedItems)

	// max_retries attempts in total, then the item is failed for good
	assert.Equal(t, 3, lookup.calls[rucs[0]])
	store.mu.Lock()
	for _, item := range store.items {
		if item.RUC == rucs[0] {
			assert.Equal(t, constants.ItemStatusFailed, item.Status)
			assert.Equal(t, 3, item.RetryCount)
			require.NotNil(t, item.ErrorMessage)
		}
	}
	store.mu.Unlock()
}

func TestRunRespectsConcurrencyLimit(t *testing.T) {
	store := newMemStore()
	lookup := newFakeLookup()
	lookup.delay = 5 * time.Millisecond
	svc := newTestService(store, lookup, &fakeAssembler{})
	ctx := context.Background()

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucList(20))
	require.NoError(t, err)
	mustRun(t, svc, job.ID)

	assert.LessOrEqual(t, lookup.maxSeen, 4)
	assert.Greater(t, lookup.maxSeen, 1, "items should actually run in parallel")
}

func TestRunNoopOnTerminalJob(t *testing.T) {
	store := newMemStore()
	lookup := newFakeLookup()
	svc := newTestService(store, lookup, &fakeAssembler{})
	ctx := context.Background()

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucList(1))
	require.NoError(t, err)
	mustRun(t, svc, job.ID)

	callsBefore := len(lookup.calls)
	got, err := svc.Run(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, got.Status)
	assert.Len(t, lookup.calls, callsBefore, "settled job must not refetch items")
}

func TestCancelMidRun(t *testing.T) {
	store := newMemStore()
	lookup := newFakeLookup()
	asm := &fakeAssembler{}
	svc := newTestService(store, lookup, asm)
	ctx := context.Background()

	rucs := rucList(2)
	for _, r := range rucs {
		lookup.failures[r] = 100
	}

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucs)
	require.NoError(t, err)

	// cancel as soon as the first attempt is in flight; the runner notices
	// at the next round boundary
	var once sync.Once
	lookup.onCall = func(string) {
		once.Do(func() { _, _ = store.MarkCancelled(ctx, job.ID) })
	}

	mustRun(t, svc, job.ID)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCancelled, got.Status)
	assert.Nil(t, got.ResultFile)
	assert.Equal(t, 0, asm.calls)
}

func TestCancelRequiresProcessingJob(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store, newFakeLookup(), &fakeAssembler{})
	ctx := context.Background()

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucList(1))
	require.NoError(t, err)

	err = svc.Cancel(ctx, job.ID)
	require.ErrorIs(t, err, ErrNotCancellable)
}

func TestRunMarksJobFailedOnAssemblyError(t *testing.T) {
	store := newMemStore()
	asm := &fakeAssembler{err: fmt.Errorf("disk full")}
	svc := newTestService(store, newFakeLookup(), asm)
	ctx := context.Background()

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucList(2))
	require.NoError(t, err)

	_, err = svc.Run(ctx, job.ID)
	require.Error(t, err)

	got, err := store.Get(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusFailed, got.Status)
	require.NotNil(t, got.ErrorMessage)
	assert.Contains(t, *got.ErrorMessage, "disk full")
}

func TestStatusSnapshot(t *testing.T) {
	store := newMemStore()
	lookup := newFakeLookup()
	svc := newTestService(store, lookup, &fakeAssembler{})
	ctx := context.Background()

	rucs := rucList(15)
	lookup.failures[rucs[0]] = 100

	job, err := svc.Submit(ctx, "proveedores.xlsx", rucs)
	require.NoError(t, err)
	mustRun(t, svc, job.ID)

	st, err := svc.Status(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, constants.JobStatusCompleted, st.Status)
	assert.Equal(t, 15, st.TotalItems)
	assert.Equal(t, 14, st.CompletedItems)
	assert.Equal(t, 1, st.FailedItems)
	assert.Equal(t, 0, st.PendingItems)
	assert.Equal(t, 14*100/15, st.ProgressPercentage)
	assert.Equal(t, 14, st.ItemsByStatus[constants.ItemStatusCompleted])
	assert.Equal(t, 1, st.ItemsByStatus[constants.ItemStatusFailed])
	assert.True(t, st.HasResultFile)
	assert.Len(t, st.SampleResults, 10)
}

func TestStatusUnknownJob(t *testing.T) {
	svc := newTestService(newMemStore(), newFakeLookup(), &fakeAssembler{})

	_, err := svc.Status(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
}
