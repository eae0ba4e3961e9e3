package main

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_MissingConfig(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: "non-existent-config.yml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_InvalidConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "invalid.yml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("invalid: yaml: content: ["), 0o600))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := run(ctx, Opts{Config: cfgFile})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load config")
}

func TestRun_ServerStartStop(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	dbFile := filepath.Join(t.TempDir(), "quickqr.db")
	t.Setenv("QUICKQR_TEST_PORT", fmt.Sprintf("%d", port))
	t.Setenv("QUICKQR_TEST_DB", "file:"+dbFile+"?mode=rwc&_txlock=immediate")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- run(ctx, Opts{Config: "testdata/config.yml"}) }()

	base := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(base + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		body, _ := io.ReadAll(resp.Body)
		return resp.StatusCode == http.StatusOK && string(body) == "pong"
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Post(base+"/api/v1/categories/geo/generate", "application/json",
		strings.NewReader(`{"lat":"51.5","lon":"-0.12"}`))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"payload":"geo:51.5,-0.12"`)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server shutdown timeout")
	}

	_, err = os.Stat(dbFile)
	assert.NoError(t, err, "database file created")
}

func TestRun_BadDatabase(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	dsn := "file:" + filepath.Join(t.TempDir(), "no-such-dir", "x.db") + "?mode=ro"
	err := run(ctx, Opts{DB: dsn, Listen: "127.0.0.1:0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open database")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults without file", func(t *testing.T) {
		cfg, err := loadConfig(Opts{})
		require.NoError(t, err)
		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 1024, cfg.Render.Size)
	})

	t.Run("cli overrides", func(t *testing.T) {
		t.Setenv("QUICKQR_TEST_PORT", "9999")
		t.Setenv("QUICKQR_TEST_DB", "file:a.db")
		cfg, err := loadConfig(Opts{Config: "testdata/config.yml", Listen: ":7070", DB: ":memory:"})
		require.NoError(t, err)
		assert.Equal(t, ":7070", cfg.Server.Listen)
		assert.Equal(t, ":memory:", cfg.Database.DSN)
		assert.Equal(t, 256, cfg.Render.Size)
		assert.Equal(t, time.Second, cfg.Notifications.TTL)
	})
}

func TestSetupLog(t *testing.T) {
	defer lgr.SetupStdLogger(lgr.Out(io.Discard), lgr.Err(io.Discard))

	t.Run("debug", func(t *testing.T) {
		assert.NotPanics(t, func() { setupLog(true, false) })
	})
	t.Run("no color", func(t *testing.T) {
		assert.NotPanics(t, func() { setupLog(false, true) })
	})
	t.Run("with secrets", func(t *testing.T) {
		assert.NotPanics(t, func() { setupLog(true, false, "secret1", "secret2") })
	})
}
