package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal(line, &rec))
		records = append(records, rec)
	}
	return records
}

func TestLogger_Helpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})).
		WithComponent("budget")

	l.LogLock(10, 4096, nil)
	l.LogUnlock(10, 0, errors.New("underflow"))
	l.LogMap("/tmp/x", 8, true, nil)

	records := decode(t, &buf)
	require.Len(t, records, 3)

	assert.Equal(t, "lock completed", records[0]["msg"])
	assert.Equal(t, "DEBUG", records[0]["level"])
	assert.Equal(t, "budget", records[0]["component"])
	assert.EqualValues(t, 4096, records[0]["locked"])

	assert.Equal(t, "unlock failed", records[1]["msg"])
	assert.Equal(t, "WARN", records[1]["level"])
	assert.Equal(t, "underflow", records[1]["error"])

	assert.Equal(t, "map completed", records[2]["msg"])
	assert.Equal(t, true, records[2]["readonly"])
}

func TestLogger_Fatal(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.NewJSONHandler(&buf, nil))

	code := -1
	orig := Exit
	Exit = func(c int) { code = c }
	t.Cleanup(func() { Exit = orig })

	l.Fatal("lock", errors.New("boom"))

	assert.Equal(t, 1, code)
	records := decode(t, &buf)
	require.Len(t, records, 1)
	assert.Equal(t, "ERROR", records[0]["level"])
	assert.Equal(t, "lock", records[0]["op"])
}

func TestFrom_NilUsesDefault(t *testing.T) {
	l := From(nil)
	require.NotNil(t, l.Logger)
	assert.NotPanics(t, func() { NoopLogger().LogSync("x", nil) })
}
