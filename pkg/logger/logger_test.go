package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerCreatesDatedFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("LOG_DIR", dir)

	require.NoError(t, SetupLogger())
	Info("service started on port %s", "8080")

	logFile := filepath.Join(dir, fmt.Sprintf("rent-%s.log", time.Now().Format("2006-01-02")))
	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "service started on port 8080")
}

func TestLogHelpersBeforeSetup(t *testing.T) {
	InfoLogger, WarningLogger, ErrorLogger = nil, nil, nil

	// 初始化之前调用不应panic，走标准logger兜底
	assert.NotPanics(t, func() {
		Info("early %s", "info")
		Warning("early %s", "warning")
		Error("early %s", "error")
	})
}
