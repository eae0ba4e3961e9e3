package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/umputun/quickqr/pkg/category"
	"github.com/umputun/quickqr/pkg/domain"
	"github.com/umputun/quickqr/pkg/session"
	"github.com/umputun/quickqr/pkg/validate"
)

// inputResponse is an input of a category with its verdict
type inputResponse struct {
	Category category.ID      `json:"category"`
	Input    category.Input   `json:"input"`
	Verdict  validate.Verdict `json:"verdict"`
}

// generateFailure is returned when the generation gate blocks the payload
type generateFailure struct {
	Error   string           `json:"error"`
	Verdict validate.Verdict `json:"verdict"`
	Missing []string         `json:"missing,omitempty"`
}

// statusHandler returns server status, history_saved_at is null if history never stored
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	var savedAt *time.Time
	ts, err := s.session.HistorySavedAt(r.Context())
	if err != nil {
		log.Printf("[WARN] can't get history save time: %v", err)
	}
	if err == nil && !ts.IsZero() {
		savedAt = &ts
	}

	status := map[string]any{
		"status":   "ok",
		"version":  s.version,
		"time":     time.Now().UTC(),
		"selected": s.session.Selected(),
		"history":  len(s.session.History()),
		"settings": s.session.Settings(),

		"history_saved_at": savedAt,
	}
	renderJSON(w, r, http.StatusOK, status)
}

// categoriesHandler lists categories in display order with their inputs
func (s *Server) categoriesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.session.Categories())
}

func (s *Server) getInputHandler(w http.ResponseWriter, r *http.Request) {
	id := category.ID(r.PathValue("id"))
	in, verdict, err := s.session.Input(id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, inputResponse{Category: id, Input: in, Verdict: verdict})
}

// setInputHandler replaces the category input, invalid input is stored and reported by the verdict
func (s *Server) setInputHandler(w http.ResponseWriter, r *http.Request) {
	id := category.ID(r.PathValue("id"))
	in, err := decodeInput(r, id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	verdict, err := s.session.SetInput(id, in)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, inputResponse{Category: id, Input: in, Verdict: verdict})
}

// validateHandler reports the verdict for the body without changing stored input
func (s *Server) validateHandler(w http.ResponseWriter, r *http.Request) {
	id := category.ID(r.PathValue("id"))
	in, err := decodeInput(r, id)
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, s.session.Validate(id, in))
}

func (s *Server) selectHandler(w http.ResponseWriter, r *http.Request) {
	id := category.ID(r.PathValue("id"))
	if err := s.session.Select(id); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, map[string]any{"selected": id})
}

// generateHandler makes the payload from stored input. A non-empty body replaces the input first.
func (s *Server) generateHandler(w http.ResponseWriter, r *http.Request) {
	id := category.ID(r.PathValue("id"))

	body, err := io.ReadAll(r.Body)
	if err != nil {
		renderError(w, r, fmt.Errorf("read body: %w", err), http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		in, decErr := category.DecodeInput(id, body)
		if decErr != nil {
			renderError(w, r, decErr, errorCode(decErr))
			return
		}
		if _, err = s.session.SetInput(id, in); err != nil {
			renderError(w, r, err, errorCode(err))
			return
		}
	}

	res, err := s.session.Generate(r.Context(), id)
	if err != nil {
		var ge *session.GenerateError
		if errors.As(err, &ge) {
			renderJSON(w, r, http.StatusUnprocessableEntity, generateFailure{Error: ge.Reason, Verdict: ge.Verdict, Missing: ge.Missing})
			return
		}
		log.Printf("[WARN] failed to generate %s: %v", id, err)
		renderError(w, r, err, errorCode(err))
		return
	}
	renderJSON(w, r, http.StatusOK, res)
}

func (s *Server) currentImageHandler(w http.ResponseWriter, r *http.Request) {
	img, err := s.session.ExportCurrent()
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderPNG(w, img)
}

func (s *Server) historyHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.session.History())
}

func (s *Server) clearHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.session.ClearHistory(r.Context()); err != nil {
		log.Printf("[ERROR] failed to clear history: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) deleteHistoryHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.session.DeleteHistory(r.Context(), r.PathValue("id")); err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) historyImageHandler(w http.ResponseWriter, r *http.Request) {
	img, err := s.session.ExportHistory(r.PathValue("id"))
	if err != nil {
		renderError(w, r, err, errorCode(err))
		return
	}
	renderPNG(w, img)
}

func (s *Server) getSettingsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.session.Settings())
}

// updateSettingsHandler applies partial settings, omitted flags are left as is
func (s *Server) updateSettingsHandler(w http.ResponseWriter, r *http.Request) {
	var upd domain.SettingsUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		renderError(w, r, fmt.Errorf("decode settings: %w", err), http.StatusBadRequest)
		return
	}
	settings, err := s.session.UpdateSettings(r.Context(), upd)
	if err != nil {
		log.Printf("[ERROR] failed to save settings: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}
	renderJSON(w, r, http.StatusOK, settings)
}

func (s *Server) notificationsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.session.Notifications())
}

// resetHandler drops in-memory inputs, persisted settings and history stay
func (s *Server) resetHandler(w http.ResponseWriter, r *http.Request) {
	s.session.Reset()
	renderJSON(w, r, http.StatusOK, map[string]any{"status": "reset", "selected": s.session.Selected()})
}

// decodeInput reads category input from request body, empty body gives the category default
func decodeInput(r *http.Request, id category.ID) (category.Input, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return category.DecodeInput(id, body)
}

// errorCode maps domain errors to http status codes
func errorCode(err error) int {
	switch {
	case errors.Is(err, category.ErrUnknownCategory), errors.Is(err, session.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, category.ErrInputShapeMismatch):
		return http.StatusBadRequest
	}
	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &syntaxErr) || errors.As(err, &typeErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// renderPNG sends image as attachment
func renderPNG(w http.ResponseWriter, img session.Image) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", img.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(img.Data); err != nil {
		log.Printf("[WARN] can't write image: %v", err)
	}
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
