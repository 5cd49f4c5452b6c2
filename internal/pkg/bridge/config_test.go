package bridge

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "padbridge.conf")
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileOverlaysDefaults(t *testing.T) {
	cfg := Config{PollInterval: 20 * time.Millisecond, FrameID: 0x4A1}

	path := writeConfig(t, "[input]\npoll_rate = 100\n\n[can]\nframe_id = 0x123\n")
	assert.NoError(t, LoadFile(path, &cfg))

	assert.Equal(t, 10*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, uint32(0x123), cfg.FrameID)
}

func TestLoadFileKeepsDefaultsWhenKeysAbsent(t *testing.T) {
	cfg := Config{PollInterval: 20 * time.Millisecond, FrameID: 0x4A1}

	path := writeConfig(t, "[input]\n")
	assert.NoError(t, LoadFile(path, &cfg))

	assert.Equal(t, 20*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, uint32(0x4A1), cfg.FrameID)
}

func TestLoadFileRejectsBadValues(t *testing.T) {
	cfg := Config{}

	assert.Error(t, LoadFile(writeConfig(t, "[input]\npoll_rate = 0\n"), &cfg))
	assert.Error(t, LoadFile(writeConfig(t, "[can]\nframe_id = garbage\n"), &cfg))
	assert.Error(t, LoadFile(filepath.Join(t.TempDir(), "missing.conf"), &cfg))
}
