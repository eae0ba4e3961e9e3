package session

import (
	"errors"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/quickqr/pkg/category"
)

const msgExportFailed = "Failed to export QR code"

// Image is a rendered QR code ready for download
type Image struct {
	Data     []byte
	FileName string
}

// Export renders the payload with colors from settings. Failures are logged and reported
// as a notification, session state is not changed.
func (s *Session) Export(payload string) ([]byte, error) {
	s.mu.Lock()
	inverted := s.settings.InvertColors
	s.mu.Unlock()

	if s.renderer == nil {
		return nil, s.exportFailed(errors.New("export: no renderer"))
	}
	data, err := s.renderer.PNG(payload, inverted)
	if err != nil {
		return nil, s.exportFailed(fmt.Errorf("export: %w", err))
	}
	return data, nil
}

// ExportCurrent renders the current payload
func (s *Session) ExportCurrent() (Image, error) {
	cur := s.Current()
	if cur == nil {
		return Image{}, fmt.Errorf("export current: %w", ErrNotFound)
	}
	data, err := s.Export(cur.Payload)
	if err != nil {
		return Image{}, err
	}
	return Image{Data: data, FileName: category.FileName(cur.Category, cur.Input)}, nil
}

// ExportHistory renders the payload of the history entry
func (s *Session) ExportHistory(id string) (Image, error) {
	entry, err := s.HistoryEntry(id)
	if err != nil {
		return Image{}, err
	}
	data, err := s.Export(entry.Payload)
	if err != nil {
		return Image{}, err
	}

	name := "qr-code.png"
	if in, decErr := category.DecodeInput(entry.Category, entry.Input); decErr == nil {
		name = category.FileName(entry.Category, in)
	}
	return Image{Data: data, FileName: name}, nil
}

func (s *Session) exportFailed(err error) error {
	lgr.Printf("[WARN] %v", err)
	s.notify(msgExportFailed, true)
	return err
}
