package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/quickqr/pkg/category"
	"github.com/umputun/quickqr/pkg/domain"
	"github.com/umputun/quickqr/pkg/session"
	"github.com/umputun/quickqr/pkg/validate"
	"github.com/umputun/quickqr/server/mocks"
)

// serve sends request through the full router
func serve(t *testing.T, sess Session, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	srv := New(testConfig(":8080"), sess, "1.2.3", false)
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	return w
}

func TestServer_statusHandler(t *testing.T) {
	sess := &mocks.SessionMock{
		SelectedFunc: func() category.ID { return category.WiFi },
		HistoryFunc:  func() []domain.HistoryEntry { return []domain.HistoryEntry{{ID: "1"}, {ID: "2"}} },
		SettingsFunc: func() domain.Settings { return domain.DefaultSettings() },
		HistorySavedAtFunc: func(context.Context) (time.Time, error) {
			return time.Date(2026, 10, 19, 12, 30, 0, 0, time.UTC), nil
		},
	}
	w := serve(t, sess, http.MethodGet, "/api/v1/status", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.Equal(t, "wifi", status["selected"])
	assert.InDelta(t, 2, status["history"], 0)
	assert.NotEmpty(t, status["time"])
	assert.Equal(t, "2026-10-19T12:30:00Z", status["history_saved_at"])

	t.Run("never saved or failed", func(t *testing.T) {
		for _, fn := range []func(context.Context) (time.Time, error){
			func(context.Context) (time.Time, error) { return time.Time{}, nil },
			func(context.Context) (time.Time, error) { return time.Time{}, errors.New("db gone") },
		} {
			sess.HistorySavedAtFunc = fn
			w := serve(t, sess, http.MethodGet, "/api/v1/status", "")
			require.Equal(t, http.StatusOK, w.Code)
			var status map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
			v, ok := status["history_saved_at"]
			assert.True(t, ok)
			assert.Nil(t, v)
		}
	})
}

func TestServer_categoriesHandler(t *testing.T) {
	sess := &mocks.SessionMock{
		CategoriesFunc: func() []session.CategoryState {
			c, _ := category.Get(category.LinkedIn)
			return []session.CategoryState{{
				Category: c,
				Input:    category.Default(category.LinkedIn),
				Verdict:  validate.Verdict{IsValid: false, Error: "Input cannot be empty"},
				Selected: true,
			}}
		},
	}
	w := serve(t, sess, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"linkedin","name":"LinkedIn Profile","shape":"record","fields":["username","type"],
		"input":{"username":"","type":"profile"},
		"verdict":{"is_valid":false,"error":"Input cannot be empty","message":""},"selected":true}]`, w.Body.String())
}

func TestServer_inputHandlers(t *testing.T) {
	t.Run("get", func(t *testing.T) {
		sess := &mocks.SessionMock{
			InputFunc: func(id category.ID) (category.Input, validate.Verdict, error) {
				return category.Text("a@b.com"), validate.Verdict{IsValid: true}, nil
			},
		}
		w := serve(t, sess, http.MethodGet, "/api/v1/categories/email/input", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"category":"email","input":"a@b.com","verdict":{"is_valid":true,"error":"","message":""}}`,
			w.Body.String())
		require.Len(t, sess.InputCalls(), 1)
		assert.Equal(t, category.Email, sess.InputCalls()[0].Id)
	})

	t.Run("get unknown", func(t *testing.T) {
		sess := &mocks.SessionMock{
			InputFunc: func(id category.ID) (category.Input, validate.Verdict, error) {
				return nil, validate.Verdict{}, fmt.Errorf("input %q: %w", id, category.ErrUnknownCategory)
			},
		}
		w := serve(t, sess, http.MethodGet, "/api/v1/categories/nope/input", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "unknown category")
	})

	t.Run("put record", func(t *testing.T) {
		sess := &mocks.SessionMock{
			SetInputFunc: func(id category.ID, in category.Input) (validate.Verdict, error) {
				return validate.Verdict{IsValid: true, Message: "WiFi connection link will be generated"}, nil
			},
		}
		w := serve(t, sess, http.MethodPut, "/api/v1/categories/wifi/input", `{"ssid":"Home","type":"WPA","password":"x"}`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sess.SetInputCalls(), 1)
		assert.Equal(t, category.WiFiInput{SSID: "Home", Type: "WPA", Password: "x"}, sess.SetInputCalls()[0].In)
		assert.Contains(t, w.Body.String(), "WiFi connection link will be generated")
	})

	t.Run("put bad json", func(t *testing.T) {
		sess := &mocks.SessionMock{}
		w := serve(t, sess, http.MethodPut, "/api/v1/categories/wifi/input", `{"ssid":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sess.SetInputCalls())
	})

	t.Run("put wrong type", func(t *testing.T) {
		sess := &mocks.SessionMock{}
		w := serve(t, sess, http.MethodPut, "/api/v1/categories/url/input", `{"ssid":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("put unknown category", func(t *testing.T) {
		sess := &mocks.SessionMock{}
		w := serve(t, sess, http.MethodPut, "/api/v1/categories/nope/input", `"x"`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestServer_validateHandler(t *testing.T) {
	sess := &mocks.SessionMock{
		ValidateFunc: func(id category.ID, in category.Input) validate.Verdict {
			return validate.Verdict{IsValid: false, Error: "Invalid latitude (-90 to 90)"}
		},
	}
	w := serve(t, sess, http.MethodPost, "/api/v1/categories/geo/validate", `{"lat":"91.0","lon":"0.0"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"is_valid":false,"error":"Invalid latitude (-90 to 90)","message":""}`, w.Body.String())
	require.Len(t, sess.ValidateCalls(), 1)
	assert.Equal(t, category.GeoInput{Lat: "91.0", Lon: "0.0"}, sess.ValidateCalls()[0].In)
	assert.Empty(t, sess.SetInputCalls())
}

func TestServer_selectHandler(t *testing.T) {
	sess := &mocks.SessionMock{SelectFunc: func(id category.ID) error {
		if id == "nope" {
			return category.ErrUnknownCategory
		}
		return nil
	}}
	w := serve(t, sess, http.MethodPost, "/api/v1/categories/geo/select", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"selected":"geo"}`, w.Body.String())

	w = serve(t, sess, http.MethodPost, "/api/v1/categories/nope/select", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_generateHandler(t *testing.T) {
	t.Run("stored input", func(t *testing.T) {
		sess := &mocks.SessionMock{
			GenerateFunc: func(ctx context.Context, id category.ID) (*session.Result, error) {
				return &session.Result{Payload: "geo:1.0,2.0", Verdict: validate.Verdict{IsValid: true}}, nil
			},
		}
		w := serve(t, sess, http.MethodPost, "/api/v1/categories/geo/generate", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"payload":"geo:1.0,2.0"`)
		assert.Empty(t, sess.SetInputCalls())
		require.Len(t, sess.GenerateCalls(), 1)
		assert.Equal(t, category.Geo, sess.GenerateCalls()[0].Id)
	})

	t.Run("body sets input first", func(t *testing.T) {
		sess := &mocks.SessionMock{
			SetInputFunc: func(id category.ID, in category.Input) (validate.Verdict, error) {
				return validate.Verdict{IsValid: true}, nil
			},
			GenerateFunc: func(ctx context.Context, id category.ID) (*session.Result, error) {
				return &session.Result{Payload: "https://example.com"}, nil
			},
		}
		w := serve(t, sess, http.MethodPost, "/api/v1/categories/url/generate", `"example.com"`)
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sess.SetInputCalls(), 1)
		assert.Equal(t, category.Text("example.com"), sess.SetInputCalls()[0].In)
	})

	t.Run("gate failure", func(t *testing.T) {
		sess := &mocks.SessionMock{
			GenerateFunc: func(ctx context.Context, id category.ID) (*session.Result, error) {
				return nil, &session.GenerateError{Verdict: validate.Verdict{IsValid: true},
					Missing: []string{"start", "end"}, Reason: "Missing required fields: start, end"}
			},
		}
		w := serve(t, sess, http.MethodPost, "/api/v1/categories/event/generate", "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{"error":"Missing required fields: start, end",
			"verdict":{"is_valid":true,"error":"","message":""},"missing":["start","end"]}`, w.Body.String())
	})

	t.Run("unknown category", func(t *testing.T) {
		sess := &mocks.SessionMock{
			GenerateFunc: func(ctx context.Context, id category.ID) (*session.Result, error) {
				return nil, fmt.Errorf("generate: %w", category.ErrUnknownCategory)
			},
		}
		w := serve(t, sess, http.MethodPost, "/api/v1/categories/nope/generate", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("bad body", func(t *testing.T) {
		sess := &mocks.SessionMock{}
		w := serve(t, sess, http.MethodPost, "/api/v1/categories/url/generate", `{`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, sess.GenerateCalls())
	})
}

func TestServer_imageHandlers(t *testing.T) {
	t.Run("current", func(t *testing.T) {
		sess := &mocks.SessionMock{
			ExportCurrentFunc: func() (session.Image, error) {
				return session.Image{Data: []byte("png-data"), FileName: "example-dot-com-qr-code.png"}, nil
			},
		}
		w := serve(t, sess, http.MethodGet, "/api/v1/qr.png", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="example-dot-com-qr-code.png"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t, "8", w.Header().Get("Content-Length"))
		assert.Equal(t, "png-data", w.Body.String())
	})

	t.Run("nothing generated", func(t *testing.T) {
		sess := &mocks.SessionMock{
			ExportCurrentFunc: func() (session.Image, error) {
				return session.Image{}, fmt.Errorf("export current: %w", session.ErrNotFound)
			},
		}
		w := serve(t, sess, http.MethodGet, "/api/v1/qr.png", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("render failure", func(t *testing.T) {
		sess := &mocks.SessionMock{
			ExportCurrentFunc: func() (session.Image, error) { return session.Image{}, errors.New("too big") },
		}
		w := serve(t, sess, http.MethodGet, "/api/v1/qr.png", "")
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":"too big"}`, w.Body.String())
	})

	t.Run("history", func(t *testing.T) {
		sess := &mocks.SessionMock{
			ExportHistoryFunc: func(id string) (session.Image, error) {
				return session.Image{Data: []byte("x"), FileName: "home-wifi-qr-code.png"}, nil
			},
		}
		w := serve(t, sess, http.MethodGet, "/api/v1/history/abc/qr.png", "")
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, sess.ExportHistoryCalls(), 1)
		assert.Equal(t, "abc", sess.ExportHistoryCalls()[0].Id)
	})
}

func TestServer_historyHandlers(t *testing.T) {
	sess := &mocks.SessionMock{
		HistoryFunc: func() []domain.HistoryEntry {
			return []domain.HistoryEntry{{ID: "1", Category: category.URL, Payload: "https://a.com", Input: json.RawMessage(`"a.com"`)}}
		},
		DeleteHistoryFunc: func(ctx context.Context, id string) error {
			if id != "1" {
				return fmt.Errorf("delete history entry %s: %w", id, session.ErrNotFound)
			}
			return nil
		},
		ClearHistoryFunc: func(ctx context.Context) error { return nil },
	}

	w := serve(t, sess, http.MethodGet, "/api/v1/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	var hist []domain.HistoryEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hist))
	require.Len(t, hist, 1)
	assert.Equal(t, "https://a.com", hist[0].Payload)

	w = serve(t, sess, http.MethodDelete, "/api/v1/history/1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = serve(t, sess, http.MethodDelete, "/api/v1/history/2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = serve(t, sess, http.MethodDelete, "/api/v1/history", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, sess.ClearHistoryCalls(), 1)

	sess.ClearHistoryFunc = func(ctx context.Context) error { return errors.New("locked") }
	w = serve(t, sess, http.MethodDelete, "/api/v1/history", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_settingsHandlers(t *testing.T) {
	sess := &mocks.SessionMock{
		SettingsFunc: func() domain.Settings { return domain.DefaultSettings() },
		UpdateSettingsFunc: func(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
			res := domain.DefaultSettings()
			if upd.InvertColors != nil {
				res.InvertColors = *upd.InvertColors
			}
			return res, nil
		},
	}

	w := serve(t, sess, http.MethodGet, "/api/v1/settings", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"invert_colors":false,"enable_validation":true,"enable_history":true}`, w.Body.String())

	w = serve(t, sess, http.MethodPut, "/api/v1/settings", `{"invert_colors":true}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"invert_colors":true,"enable_validation":true,"enable_history":true}`, w.Body.String())
	require.Len(t, sess.UpdateSettingsCalls(), 1)
	upd := sess.UpdateSettingsCalls()[0].Upd
	require.NotNil(t, upd.InvertColors)
	assert.True(t, *upd.InvertColors)
	assert.Nil(t, upd.EnableValidation)
	assert.Nil(t, upd.EnableHistory)

	w = serve(t, sess, http.MethodPut, "/api/v1/settings", `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	sess.UpdateSettingsFunc = func(context.Context, domain.SettingsUpdate) (domain.Settings, error) {
		return domain.Settings{}, errors.New("save failed")
	}
	w = serve(t, sess, http.MethodPut, "/api/v1/settings", `{"enable_history":false}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestServer_notificationsAndReset(t *testing.T) {
	sess := &mocks.SessionMock{
		NotificationsFunc: func() []domain.Notification {
			return []domain.Notification{{ID: 1, Message: "History cleared"}}
		},
		ResetFunc:    func() {},
		SelectedFunc: func() category.ID { return category.URL },
	}

	w := serve(t, sess, http.MethodGet, "/api/v1/notifications", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "History cleared")

	w = serve(t, sess, http.MethodPost, "/api/v1/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"reset","selected":"url"}`, w.Body.String())
	assert.Len(t, sess.ResetCalls(), 1)
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("x: %w", category.ErrUnknownCategory), http.StatusNotFound},
		{fmt.Errorf("x: %w", session.ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("x: %w", category.ErrInputShapeMismatch), http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, errorCode(tt.err), tt.err.Error())
	}

	_, err := category.DecodeInput(category.URL, []byte(`{`))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, errorCode(err))
}

func TestRenderError(t *testing.T) {
	w := httptest.NewRecorder()
	renderError(w, httptest.NewRequest(http.MethodGet, "/", http.NoBody), nil, http.StatusTeapot)
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"error":"unknown error"}`, w.Body.String())
}
