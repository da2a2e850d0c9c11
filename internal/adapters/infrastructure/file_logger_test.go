package infrastructure

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"allweather.app/internal/ports"
	apperrors "allweather.app/pkg/errors"
)

func readLogLines(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	var lines []map[string]interface{}
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		lines = append(lines, entry)
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestNewFileLoggerAdapter(t *testing.T) {
	t.Run("CreatesNestedDirectories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "deep", "weather.log")

		logger, err := NewFileLoggerAdapter(path)
		require.NoError(t, err)
		defer func() { _ = logger.Close() }()

		assert.FileExists(t, path)
	})

	t.Run("EmptyPath", func(t *testing.T) {
		logger, err := NewFileLoggerAdapter("")
		assert.Nil(t, logger)
		assert.True(t, apperrors.IsConfigurationError(err))
	})
}

func TestFileLoggerAdapter_LevelsAndFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)
	logger.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	logger.Debug("debug message", ports.F("provider", "openweathermap"))
	logger.Info("info message", ports.F("temperature", 5.3))
	logger.Warn("warn message")
	logger.Error("error message", ports.F("error", errors.New("boom")))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 4)

	assert.Equal(t, "DEBUG", lines[0]["level"])
	assert.Equal(t, "openweathermap", lines[0]["provider"])
	assert.Equal(t, "2024-01-02T03:04:05Z", lines[0]["timestamp"])
	assert.Equal(t, 5.3, lines[1]["temperature"])
	assert.Equal(t, "WARN", lines[2]["level"])
	assert.Equal(t, "error message", lines[3]["message"])
	assert.Equal(t, "boom", lines[3]["error"])
}

func TestFileLoggerAdapter_ReservedKeysWin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Info("real message", ports.F("message", "spoofed"), ports.F("level", "DEBUG"))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "real message", lines[0]["message"])
	assert.Equal(t, "INFO", lines[0]["level"])
}

func TestFileLoggerAdapter_UnmarshalableField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	logger.Info("bad field", ports.F("channel", make(chan int)))
	require.NoError(t, logger.Close())

	lines := readLogLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "failed to marshal log entry", lines[0]["message"])
	assert.Equal(t, "bad field", lines[0]["original"])
}

func TestFileLoggerAdapter_AppendsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")

	for i := 0; i < 2; i++ {
		logger, err := NewFileLoggerAdapter(path)
		require.NoError(t, err)
		logger.Info(fmt.Sprintf("run %d", i))
		require.NoError(t, logger.Close())
	}

	lines := readLogLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, "run 0", lines[0]["message"])
	assert.Equal(t, "run 1", lines[1]["message"])
}

func TestFileLoggerAdapter_ConcurrentLogging(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	const goroutines, perGoroutine = 8, 25
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Info("concurrent", ports.F("goroutine", id), ports.F("i", i))
			}
		}(g)
	}
	wg.Wait()
	require.NoError(t, logger.Close())

	assert.Len(t, readLogLines(t, path), goroutines*perGoroutine)
}

func TestFileLoggerAdapter_WritesAfterCloseAreDropped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weather.log")
	logger, err := NewFileLoggerAdapter(path)
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	require.NoError(t, logger.Close())
	logger.Info("dropped")

	assert.Empty(t, readLogLines(t, path))
}

func BenchmarkFileLoggerAdapter_Info(b *testing.B) {
	logger, err := NewFileLoggerAdapter(filepath.Join(b.TempDir(), "bench.log"))
	require.NoError(b, err)
	defer func() { _ = logger.Close() }()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark", ports.F("i", i), ports.F("city", "Moscow"))
	}
}
