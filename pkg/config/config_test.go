package config

import (
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendJSON, cfg.StateBackend)
	assert.Equal(t, 800*time.Millisecond, cfg.FeedbackDelay)
	assert.Empty(t, cfg.CatalogConfigMap)
	assert.Empty(t, cfg.MetricsAddr)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CITIZEN_DOJO_STATE_BACKEND", "sqlite")
	t.Setenv("CITIZEN_DOJO_STATE_PATH", "/tmp/progress.db")
	t.Setenv("CITIZEN_DOJO_FEEDBACK_DELAY", "1s")
	t.Setenv("CITIZEN_DOJO_CATALOG_CONFIGMAP", "dojo/catalog")
	t.Setenv("CITIZEN_DOJO_LOG_V", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.StateBackend)
	assert.Equal(t, "/tmp/progress.db", cfg.StatePath)
	assert.Equal(t, time.Second, cfg.FeedbackDelay)
	assert.Equal(t, "dojo/catalog", cfg.CatalogConfigMap)
	assert.Equal(t, 3, cfg.LogVerbosity)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
		want string
	}{
		{"bad duration", "CITIZEN_DOJO_FEEDBACK_DELAY", "soon", "parse env:"},
		{"bad backend", "CITIZEN_DOJO_STATE_BACKEND", "postgres", "unknown state backend"},
		{"negative delay", "CITIZEN_DOJO_FEEDBACK_DELAY", "-1s", "feedback delay"},
		{"negative verbosity", "CITIZEN_DOJO_LOG_V", "-2", "log verbosity"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestExitfExitsWithCode1(t *testing.T) {
	if os.Getenv("TEST_EXITF_SUBPROCESS") == "1" {
		Exitf("fatal: %s", "something broke")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfExitsWithCode1$")
	cmd.Env = append(os.Environ(), "TEST_EXITF_SUBPROCESS=1")

	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	require.True(t, ok, "expected *exec.ExitError, got %T: %v", err, err)
	assert.Equal(t, 1, exitErr.ExitCode())
	assert.True(t, strings.Contains(string(out), "fatal: something broke"))
}
