// Package render encodes payloads into QR code PNG images.
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the export canvas dimension in pixels
const DefaultSize = 1024

// Config of the renderer, colors are #RRGGBB
type Config struct {
	Size       int
	Foreground string
	Background string
}

// Renderer makes PNG images with high error correction level
type Renderer struct {
	size int
	fg   color.Color
	bg   color.Color
}

// New makes a renderer, empty config values fall back to 1024px black on white
func New(cfg Config) (*Renderer, error) {
	if cfg.Size <= 0 {
		cfg.Size = DefaultSize
	}
	if cfg.Foreground == "" {
		cfg.Foreground = "#000000"
	}
	if cfg.Background == "" {
		cfg.Background = "#FFFFFF"
	}

	fg, err := ParseColor(cfg.Foreground)
	if err != nil {
		return nil, fmt.Errorf("foreground color: %w", err)
	}
	bg, err := ParseColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background color: %w", err)
	}
	return &Renderer{size: cfg.Size, fg: fg, bg: bg}, nil
}

// PNG renders the payload. Inverted swaps foreground and background colors.
func (r *Renderer) PNG(payload string, inverted bool) ([]byte, error) {
	if payload == "" {
		return nil, errors.New("empty payload")
	}
	q, err := qrcode.New(payload, qrcode.High)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	q.ForegroundColor, q.BackgroundColor = r.fg, r.bg
	if inverted {
		q.ForegroundColor, q.BackgroundColor = r.bg, r.fg
	}

	data, err := q.PNG(r.size)
	if err != nil {
		return nil, fmt.Errorf("make png: %w", err)
	}
	return data, nil
}

// ParseColor parses #RRGGBB or RRGGBB into opaque color
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil //nolint:gosec // 24-bit value
}
