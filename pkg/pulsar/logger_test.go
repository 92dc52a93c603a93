package pulsar

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	pulsarlog "github.com/apache/pulsar-client-go/pulsar/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klwxsrx/go-session-gate/pkg/log"
)

func TestLoggerAdapter_LowersInfoToDebug(t *testing.T) {
	buf := &bytes.Buffer{}
	adapter := newLoggerAdapter(log.NewWithWriter(log.LevelInfo, buf))

	adapter.Infof("connected to %s", "broker")
	assert.Zero(t, buf.Len())

	adapter.
		SubLogger(pulsarlog.Fields{"topic": "session-events"}).
		WithError(errors.New("closed")).
		Warn("reconnecting")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "reconnecting", entry["msg"])
	assert.Equal(t, "pulsar", entry["component"])
	assert.Equal(t, "session-events", entry["topic"])
	assert.Equal(t, "closed", entry["error"])
}
