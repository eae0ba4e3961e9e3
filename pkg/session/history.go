package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/google/uuid"

	"github.com/umputun/quickqr/pkg/category"
	"github.com/umputun/quickqr/pkg/domain"
	"github.com/umputun/quickqr/pkg/validate"
)

// msgEmpty reported when validation is disabled and input is blank
const msgEmpty = "Input cannot be empty"

// GenerateError is returned when the generation gate blocks a payload
type GenerateError struct {
	Verdict validate.Verdict
	Missing []string // missing required fields, if any
	Reason  string
}

func (e *GenerateError) Error() string {
	return e.Reason
}

// Result of successful generation
type Result struct {
	Payload string               `json:"payload"`
	Verdict validate.Verdict     `json:"verdict"`
	Entry   *domain.HistoryEntry `json:"entry,omitempty"` // nil with history disabled
}

// Generate formats the current input of the category into a payload. The payload becomes
// current and, with history enabled, is added to history.
// Blocked generation returns *GenerateError and queues an error notification.
func (s *Session) Generate(ctx context.Context, id category.ID) (*Result, error) {
	if _, ok := category.Get(id); !ok {
		return nil, fmt.Errorf("generate %q: %w", id, category.ErrUnknownCategory)
	}

	s.mu.Lock()
	in := s.inputs[id]
	verdict := s.validator.Validate(in, id, s.settings.EnableValidation)
	if err := gate(id, in, verdict); err != nil {
		s.mu.Unlock()
		s.notify(err.Reason, true)
		return nil, err
	}

	payload, err := category.Format(id, in)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("generate %q: %w", id, err)
	}

	s.selected = id
	s.current = &Current{Category: id, Input: in, Payload: payload}
	res := &Result{Payload: payload, Verdict: verdict}

	if !s.settings.EnableHistory {
		s.mu.Unlock()
		return res, nil
	}

	rawInput, err := json.Marshal(in)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("marshal %q input: %w", id, err)
	}
	entry := domain.HistoryEntry{
		ID:        uuid.NewString(),
		Category:  id,
		Input:     rawInput,
		Payload:   payload,
		Summary:   category.Describe(id, in),
		CreatedAt: time.Now().UTC(),
	}
	s.history = insertHistory(s.history, entry)
	res.Entry = &entry
	persistErr := s.saveHistory(ctx)
	s.mu.Unlock()

	if persistErr != nil {
		lgr.Printf("[WARN] %v", persistErr)
		s.notify("Failed to save history", true)
	}
	return res, nil
}

// gate blocks generation for invalid, blank or incomplete input.
// The blank and required field checks apply even with validation disabled.
func gate(id category.ID, in category.Input, verdict validate.Verdict) *GenerateError {
	if !verdict.IsValid {
		return &GenerateError{Verdict: verdict, Reason: verdict.Error}
	}
	if category.IsBlank(in) {
		return &GenerateError{Verdict: verdict, Reason: msgEmpty}
	}
	if err := category.CheckRequired(id, in); err != nil {
		res := &GenerateError{Verdict: verdict, Reason: err.Error()}
		if category.IsMissingFields(err) {
			res.Missing = category.Missing(id, in)
		}
		return res
	}
	return nil
}

// insertHistory puts entry first, dropping any prior entry with the same payload and
// everything past the cap
func insertHistory(history []domain.HistoryEntry, entry domain.HistoryEntry) []domain.HistoryEntry {
	res := make([]domain.HistoryEntry, 0, len(history)+1)
	res = append(res, entry)
	for _, h := range history {
		if h.Payload == entry.Payload {
			continue
		}
		res = append(res, h)
	}
	if len(res) > domain.MaxHistory {
		res = res[:domain.MaxHistory]
	}
	return res
}

// History returns a copy of history entries, most recent first
func (s *Session) History() []domain.HistoryEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]domain.HistoryEntry, len(s.history))
	copy(res, s.history)
	return res
}

// HistoryEntry returns the entry by id
func (s *Session) HistoryEntry(id string) (domain.HistoryEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, h := range s.history {
		if h.ID == id {
			return h, nil
		}
	}
	return domain.HistoryEntry{}, fmt.Errorf("history entry %s: %w", id, ErrNotFound)
}

// DeleteHistory removes the entry by id
func (s *Session) DeleteHistory(ctx context.Context, id string) error {
	s.mu.Lock()
	idx := -1
	for i, h := range s.history {
		if h.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return fmt.Errorf("delete history entry %s: %w", id, ErrNotFound)
	}
	err := s.removeAtLocked(ctx, idx)
	s.mu.Unlock()
	return s.historyRemoved(err)
}

// DeleteHistoryAt removes the entry at index, 0 is the most recent
func (s *Session) DeleteHistoryAt(ctx context.Context, index int) error {
	s.mu.Lock()
	if index < 0 || index >= len(s.history) {
		s.mu.Unlock()
		return fmt.Errorf("delete history at %d: %w", index, ErrNotFound)
	}
	err := s.removeAtLocked(ctx, index)
	s.mu.Unlock()
	return s.historyRemoved(err)
}

// removeAtLocked drops the entry at a valid index and persists history, caller holds the lock
func (s *Session) removeAtLocked(ctx context.Context, index int) error {
	res := make([]domain.HistoryEntry, 0, len(s.history)-1)
	res = append(res, s.history[:index]...)
	s.history = append(res, s.history[index+1:]...)
	return s.saveHistory(ctx)
}

// historyRemoved reports the removal result, called without the lock
func (s *Session) historyRemoved(err error) error {
	if err != nil {
		lgr.Printf("[WARN] %v", err)
		s.notify("Failed to save history", true)
		return err
	}
	s.notify("History item removed", false)
	return nil
}

// ClearHistory drops all entries and removes the history key from the store
func (s *Session) ClearHistory(ctx context.Context) error {
	s.mu.Lock()
	s.history = nil
	var err error
	if s.store != nil {
		if err = s.store.DeleteSetting(ctx, historyKey); err != nil {
			err = fmt.Errorf("clear history: %w", err)
		}
	}
	s.mu.Unlock()

	if err != nil {
		lgr.Printf("[WARN] %v", err)
		s.notify("Failed to clear stored history", true)
		return err
	}
	s.notify("History cleared", false)
	return nil
}

// HistorySavedAt returns when history was last written to the store, zero time if never
func (s *Session) HistorySavedAt(ctx context.Context) (time.Time, error) {
	if s.store == nil {
		return time.Time{}, nil
	}
	ts, err := s.store.SettingUpdatedAt(ctx, historyKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("history saved at: %w", err)
	}
	return ts, nil
}

// saveHistory persists history when enabled, caller holds the lock
func (s *Session) saveHistory(ctx context.Context) error {
	if s.store == nil || !s.settings.EnableHistory {
		return nil
	}
	history := s.history
	if history == nil {
		history = []domain.HistoryEntry{}
	}
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := s.store.SetSetting(ctx, historyKey, string(data)); err != nil {
		return fmt.Errorf("save history: %w", err)
	}
	return nil
}
