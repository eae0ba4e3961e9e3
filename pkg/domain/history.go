package domain

import (
	"encoding/json"
	"time"

	"github.com/umputun/quickqr/pkg/category"
)

// MaxHistory is the number of history entries kept, oldest dropped first
const MaxHistory = 10

// HistoryEntry represents one generated payload
type HistoryEntry struct {
	ID        string          `json:"id"`
	Category  category.ID     `json:"category"`
	Input     json.RawMessage `json:"input"`
	Payload   string          `json:"payload"`
	Summary   string          `json:"summary"`
	CreatedAt time.Time       `json:"created_at"`
}

// Notification is a transient message shown to the user
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Error     bool      `json:"error"`
	CreatedAt time.Time `json:"created_at"`
}
