package configuration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnv_LoadsExistingFiles(t *testing.T) {
	tmp := t.TempDir()
	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "SWRZEE_TEST_ENV_LOAD=ok\n")

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	_ = os.Unsetenv("SWRZEE_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "ok", os.Getenv("SWRZEE_TEST_ENV_LOAD"))
}

func TestLoadEnv_NoFiles(t *testing.T) {
	tmp := t.TempDir()

	origWd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	require.NoError(t, os.Chdir(tmp))

	n, err := LoadEnv([]string{".env", ".env.local"})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestSessionOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    SessionOptions
		wantErr bool
	}{
		{"memory ok", SessionOptions{Storage: "memory", Duration: 1}, false},
		{"redis with url", SessionOptions{Storage: "redis", RedisURL: "localhost:6379", Duration: 1}, false},
		{"redis without url", SessionOptions{Storage: "redis", Duration: 1}, true},
		{"unknown storage", SessionOptions{Storage: "etcd", Duration: 1}, true},
		{"non-positive duration", SessionOptions{Storage: "memory", Duration: 0}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateLimitOptions_Validate(t *testing.T) {
	tests := []struct {
		name    string
		opts    RateLimitOptions
		wantErr bool
	}{
		{"memory ok", RateLimitOptions{Storage: "memory", LoginPerMin: 10}, false},
		{"negative limit", RateLimitOptions{Storage: "memory", LoginPerMin: -1}, true},
		{"redis without url", RateLimitOptions{Storage: "redis", LoginPerMin: 10}, true},
		{"unknown storage", RateLimitOptions{Storage: "disk", LoginPerMin: 10}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
