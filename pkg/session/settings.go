package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/quickqr/pkg/domain"
)

// Settings returns current settings
func (s *Session) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings applies a partial change and persists settings. Every changed flag
// queues a notification. On store failure the in-memory settings keep the change.
func (s *Session) UpdateSettings(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	s.mu.Lock()
	prev := s.settings
	next := prev
	if upd.InvertColors != nil {
		next.InvertColors = *upd.InvertColors
	}
	if upd.EnableValidation != nil {
		next.EnableValidation = *upd.EnableValidation
	}
	if upd.EnableHistory != nil {
		next.EnableHistory = *upd.EnableHistory
	}
	s.settings = next

	err := s.saveSettings(ctx)
	if err == nil && !prev.EnableHistory && next.EnableHistory {
		// history kept in memory while disabled gets stored once enabled again
		err = s.saveHistory(ctx)
	}
	s.mu.Unlock()

	for _, msg := range settingsMessages(prev, next) {
		s.notify(msg, false)
	}
	if err != nil {
		lgr.Printf("[WARN] %v", err)
		s.notify("Failed to save settings", true)
		return next, err
	}
	return next, nil
}

// saveSettings persists settings, caller holds the lock
func (s *Session) saveSettings(ctx context.Context) error {
	if s.store == nil {
		return nil
	}
	data, err := json.Marshal(s.settings.Store())
	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}
	if err := s.store.SetSetting(ctx, settingsKey, string(data)); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

func settingsMessages(prev, next domain.Settings) []string {
	var res []string
	flag := func(name string, before, after bool) {
		if before == after {
			return
		}
		state := "disabled"
		if after {
			state = "enabled"
		}
		res = append(res, name+" "+state)
	}
	flag("QR code colors", prev.InvertColors, next.InvertColors)
	flag("Validation", prev.EnableValidation, next.EnableValidation)
	flag("History", prev.EnableHistory, next.EnableHistory)
	return res
}
