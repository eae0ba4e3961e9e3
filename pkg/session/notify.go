package session

import (
	"time"

	"github.com/umputun/quickqr/pkg/domain"
)

// Notifications returns active transient messages, oldest first
func (s *Session) Notifications() []domain.Notification {
	s.notesMu.Lock()
	defer s.notesMu.Unlock()
	res := make([]domain.Notification, len(s.notes))
	copy(res, s.notes)
	return res
}

// notify queues a message dropped after notifyTTL. The timer is never cancelled.
func (s *Session) notify(msg string, isErr bool) {
	s.notesMu.Lock()
	s.noteSeq++
	id := s.noteSeq
	s.notes = append(s.notes, domain.Notification{ID: id, Message: msg, Error: isErr, CreatedAt: time.Now().UTC()})
	s.notesMu.Unlock()

	time.AfterFunc(s.notifyTTL, func() { s.dropNote(id) })
}

func (s *Session) dropNote(id int64) {
	s.notesMu.Lock()
	defer s.notesMu.Unlock()
	for i, n := range s.notes {
		if n.ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return
		}
	}
}
