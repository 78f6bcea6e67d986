// Package session owns the single editing-session state: one ResumeState
// aggregate mutated in place by the editor and persisted to a Store on a
// debounced timer. There are no ambient globals; callers hold a *Session
// and pass it through the validate/estimate/render chain.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"resumeforge/internal/model"
)

type Session struct {
	mu       sync.Mutex
	state    model.ResumeState
	store    Store
	debounce time.Duration
	timer    *time.Timer
	log      zerolog.Logger
}

func New(store Store, debounce time.Duration, logger zerolog.Logger) *Session {
	return &Session{
		state:    defaultState(),
		store:    store,
		debounce: debounce,
		log:      logger,
	}
}

func defaultState() model.ResumeState {
	return model.ResumeState{
		Data:          model.NewResumeData(),
		Customization: model.DefaultCustomization(),
		Metadata: model.Metadata{
			LastModified: time.Now().UTC().Format(time.RFC3339),
			Version:      model.Version,
		},
	}
}

// Load reads the persisted record. A missing record, unreadable store,
// malformed JSON or version mismatch all fall back to the default state;
// there is no migration path for old versions.
func (s *Session) Load(ctx context.Context) {
	raw, err := s.store.Get(ctx, model.StorageKey)
	if err != nil {
		if err != ErrNotFound {
			s.log.Warn().Err(err).Msg("session load failed, using defaults")
		}
		return
	}
	var state model.ResumeState
	if err := json.Unmarshal(raw, &state); err != nil {
		s.log.Warn().Err(err).Msg("stored record unreadable, using defaults")
		return
	}
	if state.Metadata.Version != model.Version {
		s.log.Warn().
			Str("stored", state.Metadata.Version).
			Str("expected", model.Version).
			Msg("version mismatch, using defaults")
		return
	}
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

// State returns a snapshot of the full session record.
func (s *Session) State() model.ResumeState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Data() model.ResumeData {
	return s.State().Data
}

func (s *Session) Customization() model.CustomizationSettings {
	return s.State().Customization
}

// mutate applies one edit, stamps LastModified and schedules a coalesced
// save. A burst of edits inside the debounce window produces one write.
func (s *Session) mutate(fn func(*model.ResumeState)) {
	s.mu.Lock()
	fn(&s.state)
	s.state.Metadata.LastModified = time.Now().UTC().Format(time.RFC3339)
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.debounce, func() {
		s.Flush(context.Background())
	})
	s.mu.Unlock()
}

// Flush persists the current record immediately. Store failures are
// logged and swallowed: persistence is best-effort and the in-memory
// session stays authoritative.
func (s *Session) Flush(ctx context.Context) {
	s.mu.Lock()
	raw, err := json.Marshal(s.state)
	s.mu.Unlock()
	if err != nil {
		s.log.Error().Err(err).Msg("marshal session state")
		return
	}
	if err := s.store.Set(ctx, model.StorageKey, raw); err != nil {
		s.log.Warn().Err(err).Msg("session persist failed")
	}
}

// Close stops the debounce timer and performs a final flush.
func (s *Session) Close(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.Flush(ctx)
}

// Reset restores the default state and clears the persisted record.
func (s *Session) Reset(ctx context.Context) {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.state = defaultState()
	s.mu.Unlock()
	if err := s.store.Clear(ctx, model.StorageKey); err != nil {
		s.log.Warn().Err(err).Msg("session clear failed")
	}
}

func (s *Session) SetPersonalInfo(p model.PersonalInfo) {
	s.mutate(func(st *model.ResumeState) { st.Data.PersonalInfo = p })
}

func (s *Session) SetSummary(summary string) {
	s.mutate(func(st *model.ResumeState) { st.Data.Summary = summary })
}

// SetSectionOrder stores the order as given. Unknown identifiers are
// retained; the renderer skips them.
func (s *Session) SetSectionOrder(order []string) {
	s.mutate(func(st *model.ResumeState) { st.Data.SectionOrder = append([]string(nil), order...) })
}

func (s *Session) SetCustomization(c model.CustomizationSettings) {
	s.mutate(func(st *model.ResumeState) { st.Customization = c })
}

// Entity lifecycle: add assigns a fresh id, update replaces the matching
// element in place, remove filters it out. Nothing is deleted implicitly.

func replaceByID[T any](items []T, id func(T) string, item T) ([]T, bool) {
	for i := range items {
		if id(items[i]) == id(item) {
			items[i] = item
			return items, true
		}
	}
	return items, false
}

func removeByID[T any](items []T, id func(T) string, target string) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if id(it) != target {
			out = append(out, it)
		}
	}
	return out
}

func (s *Session) AddExperience(e model.Experience) model.Experience {
	if e.ID == "" {
		e.ID = model.NewID()
	}
	s.mutate(func(st *model.ResumeState) { st.Data.Experience = append(st.Data.Experience, e) })
	return e
}

func (s *Session) UpdateExperience(e model.Experience) error {
	var found bool
	s.mutate(func(st *model.ResumeState) {
		st.Data.Experience, found = replaceByID(st.Data.Experience, func(x model.Experience) string { return x.ID }, e)
	})
	if !found {
		return fmt.Errorf("experience %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (s *Session) RemoveExperience(id string) {
	s.mutate(func(st *model.ResumeState) {
		st.Data.Experience = removeByID(st.Data.Experience, func(x model.Experience) string { return x.ID }, id)
	})
}

func (s *Session) AddEducation(e model.Education) model.Education {
	if e.ID == "" {
		e.ID = model.NewID()
	}
	s.mutate(func(st *model.ResumeState) { st.Data.Education = append(st.Data.Education, e) })
	return e
}

func (s *Session) UpdateEducation(e model.Education) error {
	var found bool
	s.mutate(func(st *model.ResumeState) {
		st.Data.Education, found = replaceByID(st.Data.Education, func(x model.Education) string { return x.ID }, e)
	})
	if !found {
		return fmt.Errorf("education %s: %w", e.ID, ErrNotFound)
	}
	return nil
}

func (s *Session) RemoveEducation(id string) {
	s.mutate(func(st *model.ResumeState) {
		st.Data.Education = removeByID(st.Data.Education, func(x model.Education) string { return x.ID }, id)
	})
}

func (s *Session) AddProject(p model.Project) model.Project {
	if p.ID == "" {
		p.ID = model.NewID()
	}
	s.mutate(func(st *model.ResumeState) { st.Data.Projects = append(st.Data.Projects, p) })
	return p
}

func (s *Session) UpdateProject(p model.Project) error {
	var found bool
	s.mutate(func(st *model.ResumeState) {
		st.Data.Projects, found = replaceByID(st.Data.Projects, func(x model.Project) string { return x.ID }, p)
	})
	if !found {
		return fmt.Errorf("project %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (s *Session) RemoveProject(id string) {
	s.mutate(func(st *model.ResumeState) {
		st.Data.Projects = removeByID(st.Data.Projects, func(x model.Project) string { return x.ID }, id)
	})
}

func (s *Session) AddSkill(g model.Skill) model.Skill {
	if g.ID == "" {
		g.ID = model.NewID()
	}
	s.mutate(func(st *model.ResumeState) { st.Data.Skills = append(st.Data.Skills, g) })
	return g
}

func (s *Session) UpdateSkill(g model.Skill) error {
	var found bool
	s.mutate(func(st *model.ResumeState) {
		st.Data.Skills, found = replaceByID(st.Data.Skills, func(x model.Skill) string { return x.ID }, g)
	})
	if !found {
		return fmt.Errorf("skill group %s: %w", g.ID, ErrNotFound)
	}
	return nil
}

func (s *Session) RemoveSkill(id string) {
	s.mutate(func(st *model.ResumeState) {
		st.Data.Skills = removeByID(st.Data.Skills, func(x model.Skill) string { return x.ID }, id)
	})
}

func (s *Session) AddAchievement(a model.Achievement) model.Achievement {
	if a.ID == "" {
		a.ID = model.NewID()
	}
	s.mutate(func(st *model.ResumeState) { st.Data.Achievements = append(st.Data.Achievements, a) })
	return a
}

func (s *Session) UpdateAchievement(a model.Achievement) error {
	var found bool
	s.mutate(func(st *model.ResumeState) {
		st.Data.Achievements, found = replaceByID(st.Data.Achievements, func(x model.Achievement) string { return x.ID }, a)
	})
	if !found {
		return fmt.Errorf("achievement %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

func (s *Session) RemoveAchievement(id string) {
	s.mutate(func(st *model.ResumeState) {
		st.Data.Achievements = removeByID(st.Data.Achievements, func(x model.Achievement) string { return x.ID }, id)
	})
}

// Export writes the full session record as indented JSON.
func (s *Session) Export(w io.Writer) error {
	s.mu.Lock()
	raw, err := json.MarshalIndent(s.state, "", "  ")
	s.mu.Unlock()
	if err != nil {
		return err
	}
	_, err = w.Write(raw)
	return err
}

// ExportFilename names the download with a millisecond timestamp.
func (s *Session) ExportFilename() string {
	return fmt.Sprintf("resume-%d.json", time.Now().UnixMilli())
}

// Import replaces the whole session record with an uploaded one. The
// payload is schema-checked first; on any failure the current state is
// left untouched.
func (s *Session) Import(raw []byte) error {
	if err := model.ValidateRecord(raw); err != nil {
		return err
	}
	var state model.ResumeState
	if err := json.Unmarshal(raw, &state); err != nil {
		return fmt.Errorf("invalid JSON file: %w", err)
	}
	s.mutate(func(st *model.ResumeState) { *st = state })
	return nil
}
