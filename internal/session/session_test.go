package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeforge/internal/model"
)

type memStore struct {
	mu      sync.Mutex
	records map[string][]byte
	sets    int
	failAll bool
}

func newMemStore() *memStore {
	return &memStore{records: map[string][]byte{}}
}

func (s *memStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return nil, errors.New("store unavailable")
	}
	b, ok := s.records[key]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.failAll {
		return errors.New("store unavailable")
	}
	s.records[key] = append([]byte(nil), value...)
	return nil
}

func (s *memStore) Clear(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failAll {
		return errors.New("store unavailable")
	}
	delete(s.records, key)
	return nil
}

func (s *memStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

// newTestSession uses a debounce long enough that persistence only
// happens when a test flushes explicitly.
func newTestSession(store Store) *Session {
	return New(store, time.Hour, zerolog.Nop())
}

func TestExportImportRoundTrip(t *testing.T) {
	src := newTestSession(newMemStore())
	src.SetPersonalInfo(model.SampleResume().PersonalInfo)
	src.SetSummary("A short professional summary for the round trip.")
	src.AddExperience(model.SampleResume().Experience[0])
	src.AddSkill(model.Skill{Category: "Languages", Skills: []string{"Go"}, Visible: true})
	c := model.DefaultCustomization()
	c.TemplateID = "timeline"
	c.BulletStyle = "arrow"
	src.SetCustomization(c)

	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))

	dst := newTestSession(newMemStore())
	require.NoError(t, dst.Import(buf.Bytes()))

	assert.Equal(t, src.Data(), dst.Data())
	assert.Equal(t, src.Customization(), dst.Customization())
}

func TestImportMalformedFileLeavesStateUntouched(t *testing.T) {
	s := newTestSession(newMemStore())
	s.SetSummary("original summary")
	before := s.State()

	err := s.Import([]byte("{not json"))
	require.Error(t, err)
	assert.Equal(t, before, s.State())

	// valid JSON with the wrong shape is rejected too
	err = s.Import([]byte(`{"data": "nope"}`))
	require.Error(t, err)
	assert.Equal(t, before, s.State())
}

func TestLoadVersionMismatchFallsBackToDefaults(t *testing.T) {
	store := newMemStore()
	stale := model.ResumeState{
		Data:          model.SampleResume(),
		Customization: model.DefaultCustomization(),
		Metadata:      model.Metadata{Version: "0.9.0"},
	}
	raw, err := json.Marshal(stale)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), model.StorageKey, raw))

	s := newTestSession(store)
	s.Load(context.Background())

	assert.Empty(t, s.Data().PersonalInfo.FullName)
	assert.Equal(t, model.Version, s.State().Metadata.Version)
}

func TestLoadRestoresMatchingVersion(t *testing.T) {
	store := newMemStore()
	saved := model.ResumeState{
		Data:          model.SampleResume(),
		Customization: model.DefaultCustomization(),
		Metadata:      model.Metadata{Version: model.Version},
	}
	raw, err := json.Marshal(saved)
	require.NoError(t, err)
	require.NoError(t, store.Set(context.Background(), model.StorageKey, raw))

	s := newTestSession(store)
	s.Load(context.Background())
	assert.Equal(t, "Alex Johnson", s.Data().PersonalInfo.FullName)
}

func TestDebouncedSaveCoalescesBurst(t *testing.T) {
	store := newMemStore()
	s := New(store, 100*time.Millisecond, zerolog.Nop())

	for i := 0; i < 10; i++ {
		s.SetSummary("edit")
	}
	assert.Equal(t, 0, store.setCount(), "no write inside the debounce window")

	assert.Eventually(t, func() bool { return store.setCount() == 1 },
		500*time.Millisecond, 10*time.Millisecond)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, store.setCount(), "a burst persists exactly once")
}

func TestStoreFailureDoesNotBreakEditing(t *testing.T) {
	store := newMemStore()
	store.failAll = true
	s := newTestSession(store)

	s.Load(context.Background())
	s.SetSummary("still editable")
	s.Flush(context.Background())
	s.Reset(context.Background())
	s.SetSummary("after reset")

	assert.Equal(t, "after reset", s.Data().Summary)
}

func TestEntityLifecycle(t *testing.T) {
	s := newTestSession(newMemStore())

	added := s.AddExperience(model.Experience{Company: "Acme", Visible: true})
	require.NotEmpty(t, added.ID)

	other := s.AddExperience(model.Experience{Company: "Globex", Visible: true})
	assert.NotEqual(t, added.ID, other.ID)

	added.Position = "Engineer"
	require.NoError(t, s.UpdateExperience(added))
	assert.Equal(t, "Engineer", s.Data().Experience[0].Position)

	err := s.UpdateExperience(model.Experience{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)

	s.RemoveExperience(added.ID)
	data := s.Data()
	require.Len(t, data.Experience, 1)
	assert.Equal(t, "Globex", data.Experience[0].Company)

	// removal never cascades: hiding is a flag, not a delete
	g := s.AddSkill(model.Skill{Category: "Tools", Skills: []string{"Git"}, Visible: true})
	g.Visible = false
	require.NoError(t, s.UpdateSkill(g))
	require.Len(t, s.Data().Skills, 1)
	assert.False(t, s.Data().Skills[0].Visible)
}

func TestResetRestoresDefaults(t *testing.T) {
	store := newMemStore()
	s := newTestSession(store)
	s.SetSummary("something")
	s.Flush(context.Background())
	require.NotEmpty(t, store.records[model.StorageKey])

	s.Reset(context.Background())
	assert.Empty(t, s.Data().Summary)
	assert.Empty(t, store.records[model.StorageKey])
	assert.Equal(t, model.DefaultSectionOrder(), s.Data().SectionOrder)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	ctx := context.Background()

	_, err := store.Get(ctx, model.StorageKey)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, store.Set(ctx, model.StorageKey, []byte(`{"a":1}`)))
	got, err := store.Get(ctx, model.StorageKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), got)

	require.NoError(t, store.Clear(ctx, model.StorageKey))
	_, err = store.Get(ctx, model.StorageKey)
	assert.ErrorIs(t, err, ErrNotFound)

	// clearing a missing record is not an error
	assert.NoError(t, store.Clear(ctx, model.StorageKey))
}
