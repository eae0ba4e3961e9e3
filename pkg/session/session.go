// Package session owns all single-user state: per-category inputs, the selected category,
// the current payload, settings, history and transient notifications.
// Persistence happens at explicit boundaries, Load at start and a save on every change.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/quickqr/pkg/category"
	"github.com/umputun/quickqr/pkg/domain"
	"github.com/umputun/quickqr/pkg/validate"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/renderer.go -pkg mocks -skip-ensure -fmt goimports . Renderer

// storage keys
const (
	settingsKey = "settings"
	historyKey  = "history"
)

// ErrNotFound is returned for missing history entries and missing current payload
var ErrNotFound = errors.New("not found")

// Store is a key-value storage, missing keys return empty value and zero time
type Store interface {
	GetSetting(ctx context.Context, key string) (string, error)
	SetSetting(ctx context.Context, key, value string) error
	DeleteSetting(ctx context.Context, key string) error
	SettingUpdatedAt(ctx context.Context, key string) (time.Time, error)
}

// Validator checks inputs against category rules
type Validator interface {
	Validate(in category.Input, id category.ID, enabled bool) validate.Verdict
}

// Renderer makes QR images
type Renderer interface {
	PNG(payload string, inverted bool) ([]byte, error)
}

// Params for New
type Params struct {
	Store     Store
	Validator Validator
	Renderer  Renderer
	NotifyTTL time.Duration // how long notifications live, 3s by default
}

// Session is the application state. Safe for concurrent use.
type Session struct {
	store     Store
	validator Validator
	renderer  Renderer
	notifyTTL time.Duration

	mu       sync.Mutex
	loaded   bool
	selected category.ID
	inputs   map[category.ID]category.Input
	current  *Current
	settings domain.Settings
	history  []domain.HistoryEntry

	notesMu sync.Mutex
	notes   []domain.Notification
	noteSeq int64
}

// Current is the last generated payload with its source
type Current struct {
	Category category.ID    `json:"category"`
	Input    category.Input `json:"input"`
	Payload  string         `json:"payload"`
}

// CategoryState is a category with its current input and verdict
type CategoryState struct {
	category.Category
	Input    category.Input   `json:"input"`
	Verdict  validate.Verdict `json:"verdict"`
	Selected bool             `json:"selected"`
}

// New makes a session with default settings and empty history, call Load to rehydrate.
func New(p Params) *Session {
	if p.NotifyTTL <= 0 {
		p.NotifyTTL = 3 * time.Second
	}
	s := &Session{
		store:     p.Store,
		validator: p.Validator,
		renderer:  p.Renderer,
		notifyTTL: p.NotifyTTL,
		settings:  domain.DefaultSettings(),
	}
	s.resetInputs()
	return s
}

// Load rehydrates settings and history from the store. Runs once, following calls are no-op.
// Corrupted values are logged and replaced by defaults; only store read errors are returned.
func (s *Session) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded || s.store == nil {
		return nil
	}

	rawSettings, err := s.store.GetSetting(ctx, settingsKey)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	rawHistory, err := s.store.GetSetting(ctx, historyKey)
	if err != nil {
		return fmt.Errorf("load history: %w", err)
	}

	s.settings = domain.DefaultSettings()
	if rawSettings != "" {
		var stored domain.StoredSettings
		if err := json.Unmarshal([]byte(rawSettings), &stored); err != nil {
			lgr.Printf("[WARN] can't decode stored settings, using defaults: %v", err)
		} else {
			s.settings = stored.Resolve()
		}
	}

	s.history = nil
	if rawHistory != "" {
		var entries []domain.HistoryEntry
		if err := json.Unmarshal([]byte(rawHistory), &entries); err != nil {
			lgr.Printf("[WARN] can't decode stored history, starting empty: %v", err)
		} else {
			s.history = entries
			if len(s.history) > domain.MaxHistory {
				s.history = s.history[:domain.MaxHistory]
			}
		}
	}

	s.loaded = true
	lgr.Printf("[DEBUG] session loaded, settings %+v, %d history entries", s.settings, len(s.history))
	return nil
}

// Categories returns all categories in display order with their current input and verdict
func (s *Session) Categories() []CategoryState {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := category.List()
	res := make([]CategoryState, 0, len(cats))
	for _, c := range cats {
		in := s.inputs[c.ID]
		res = append(res, CategoryState{
			Category: c,
			Input:    in,
			Verdict:  s.validator.Validate(in, c.ID, s.settings.EnableValidation),
			Selected: c.ID == s.selected,
		})
	}
	return res
}

// Select makes the category current and clears the current payload
func (s *Session) Select(id category.ID) error {
	if _, ok := category.Get(id); !ok {
		return fmt.Errorf("select %q: %w", id, category.ErrUnknownCategory)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = id
	s.current = nil
	return nil
}

// Selected returns the selected category id
func (s *Session) Selected() category.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selected
}

// Input returns the current input of the category with its verdict
func (s *Session) Input(id category.ID) (category.Input, validate.Verdict, error) {
	if _, ok := category.Get(id); !ok {
		return nil, validate.Verdict{}, fmt.Errorf("input %q: %w", id, category.ErrUnknownCategory)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	in := s.inputs[id]
	return in, s.validator.Validate(in, id, s.settings.EnableValidation), nil
}

// SetInput replaces the input of the category and returns its verdict.
// Invalid input is stored as well, the verdict only gates generation.
func (s *Session) SetInput(id category.ID, in category.Input) (validate.Verdict, error) {
	if _, ok := category.Get(id); !ok {
		return validate.Verdict{}, fmt.Errorf("set input %q: %w", id, category.ErrUnknownCategory)
	}
	if !category.Matches(id, in) {
		return validate.Verdict{}, fmt.Errorf("set input %q: %w", id, category.ErrInputShapeMismatch)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inputs[id] = in
	return s.validator.Validate(in, id, s.settings.EnableValidation), nil
}

// Validate checks the input against the category with current settings, state is untouched
func (s *Session) Validate(id category.ID, in category.Input) validate.Verdict {
	s.mu.Lock()
	enabled := s.settings.EnableValidation
	s.mu.Unlock()
	return s.validator.Validate(in, id, enabled)
}

// Current returns the last generated payload, nil if nothing generated since last selection
func (s *Session) Current() *Current {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	res := *s.current
	return &res
}

// Reset drops in-memory inputs, selection and current payload. Persisted settings and
// history are kept as is.
func (s *Session) Reset() {
	s.mu.Lock()
	s.resetInputs()
	s.mu.Unlock()
	lgr.Printf("[INFO] session state reset")
}

func (s *Session) resetInputs() {
	s.inputs = make(map[category.ID]category.Input, len(category.List()))
	for _, c := range category.List() {
		s.inputs[c.ID] = category.Default(c.ID)
	}
	s.selected = category.First().ID
	s.current = nil
}
