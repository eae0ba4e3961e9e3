package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/quickqr/pkg/btcaddr"
	"github.com/umputun/quickqr/pkg/category"
	"github.com/umputun/quickqr/pkg/domain"
	"github.com/umputun/quickqr/pkg/render"
	"github.com/umputun/quickqr/pkg/repository"
	"github.com/umputun/quickqr/pkg/session"
	"github.com/umputun/quickqr/pkg/validate"
	"github.com/umputun/quickqr/server/mocks"
)

func testConfig(listen string) *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return listen, 30 * time.Second
		},
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(":8080"), &mocks.SessionMock{}, "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.router)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	sess := &mocks.SessionMock{
		SelectedFunc: func() category.ID { return category.URL },
		HistoryFunc:  func() []domain.HistoryEntry { return nil },
		SettingsFunc: func() domain.Settings { return domain.DefaultSettings() },
		HistorySavedAtFunc: func(context.Context) (time.Time, error) {
			return time.Time{}, nil
		},
	}
	srv := New(testConfig(fmt.Sprintf("127.0.0.1:%d", port)), sess, "1.0.0", true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	resp, err := http.Get(base + "/api/v1/status")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "quickqr", resp.Header.Get("App-Name"))

	var status map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))
	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.0.0", status["version"])
	assert.Equal(t, "url", status["selected"])

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunBadAddress(t *testing.T) {
	srv := New(testConfig("bad-address:-1"), &mocks.SessionMock{}, "1.0.0", false)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	err := srv.Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server error")
}

// TestServer_EndToEnd runs the api over real session, sqlite store and png renderer
func TestServer_EndToEnd(t *testing.T) {
	ctx := context.Background()
	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: ":memory:", MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })

	renderer, err := render.New(render.Config{Size: 256})
	require.NoError(t, err)

	newSession := func() *session.Session {
		s := session.New(session.Params{
			Store:     repos.Setting,
			Validator: validate.New(btcaddr.NewChecker()),
			Renderer:  renderer,
			NotifyTTL: time.Minute,
		})
		require.NoError(t, s.Load(ctx))
		return s
	}

	srv := New(testConfig(":0"), newSession(), "test", false)
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	call := func(method, path, body string) *http.Response {
		req, err := http.NewRequest(method, ts.URL+path, strings.NewReader(body))
		require.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}
	decode := func(resp *http.Response, v any) {
		defer resp.Body.Close()
		require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
	}

	// blocked generation
	resp := call(http.MethodPost, "/api/v1/categories/paypal/generate", `{"username":"bob","amount":"10.999"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var failure generateFailure
	decode(resp, &failure)
	assert.Equal(t, "Invalid amount (e.g., 10.99)", failure.Error)

	// successful generation
	resp = call(http.MethodPost, "/api/v1/categories/paypal/generate", `{"username":"bob","amount":"10.99"}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var res session.Result
	decode(resp, &res)
	assert.Equal(t, "https://www.paypal.com/paypalme/bob/10.99?currency=GBP", res.Payload)
	require.NotNil(t, res.Entry)

	// status reports when history was stored
	resp = call(http.MethodGet, "/api/v1/status", "")
	var status map[string]any
	decode(resp, &status)
	assert.NotNil(t, status["history_saved_at"])

	// image of the current payload
	resp = call(http.MethodGet, "/api/v1/qr.png", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "bob-paypal-qr-code.png")
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())

	// settings persisted
	resp = call(http.MethodPut, "/api/v1/settings", `{"invert_colors":true,"enable_validation":false}`)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// a new session over the same store sees settings and history
	restored := newSession()
	assert.Equal(t, domain.Settings{InvertColors: true, EnableValidation: false, EnableHistory: true}, restored.Settings())
	hist := restored.History()
	require.Len(t, hist, 1)
	assert.Equal(t, res.Payload, hist[0].Payload)

	// history image
	resp = call(http.MethodGet, "/api/v1/history/"+hist[0].ID+"/qr.png", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// clear history removes the stored key
	resp = call(http.MethodDelete, "/api/v1/history", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	stored, err := repos.Setting.GetSetting(ctx, "history")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
