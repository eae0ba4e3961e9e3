package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		errMsg  string
	}{
		{name: "valid config", modify: func(*Config) {}},
		{name: "missing server listen", modify: func(c *Config) { c.Server.Listen = "" },
			wantErr: true, errMsg: "server.listen is required"},
		{name: "missing server timeout", modify: func(c *Config) { c.Server.Timeout = 0 },
			wantErr: true, errMsg: "server.timeout is required"},
		{name: "missing dsn", modify: func(c *Config) { c.Database.DSN = "" },
			wantErr: true, errMsg: "database.dsn is required"},
		{name: "missing render size", modify: func(c *Config) { c.Render.Size = 0 },
			wantErr: true, errMsg: "render.size is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.modify(cfg)
			err := VerifyAgainstEmbeddedSchema(cfg)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestVerifyJSON(t *testing.T) {
	valid, err := json.Marshal(New())
	require.NoError(t, err)
	require.NoError(t, verifyJSON(valid))

	tests := []struct {
		name  string
		patch func(m map[string]any)
	}{
		{name: "unknown top level key", patch: func(m map[string]any) { m["feeds"] = []any{} }},
		{name: "unknown nested key", patch: func(m map[string]any) {
			m["render"].(map[string]any)["margin"] = 4
		}},
		{name: "size below minimum", patch: func(m map[string]any) { m["render"].(map[string]any)["size"] = 10 }},
		{name: "size above maximum", patch: func(m map[string]any) { m["render"].(map[string]any)["size"] = 5000 }},
		{name: "bad color", patch: func(m map[string]any) { m["render"].(map[string]any)["foreground"] = "red" }},
		{name: "missing section", patch: func(m map[string]any) { delete(m, "notifications") }},
		{name: "wrong type", patch: func(m map[string]any) { m["server"].(map[string]any)["listen"] = 8080 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m map[string]any
			require.NoError(t, json.Unmarshal(valid, &m))
			tt.patch(m)
			data, err := json.Marshal(m)
			require.NoError(t, err)
			err = verifyJSON(data)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "schema mismatch")
		})
	}
}

func TestVerifyAgainstEmbeddedSchema_RenderRules(t *testing.T) {
	cfg := New()
	cfg.Render.Background = "#12"
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema mismatch")
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)

	data, err := json.Marshal(schema)
	require.NoError(t, err)
	for _, name := range []string{"ServerConfig", "DatabaseConfig", "RenderConfig", "NotificationsConfig"} {
		assert.Contains(t, string(data), name)
	}
}
