package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_ProdIsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "prod")

	l.Debug().Msg("hidden")
	assert.Zero(t, buf.Len())

	l.Info().Str("url", "http://x").Msg("remote call")
	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "remote call", line["message"])
	assert.Equal(t, "dealership", line["service"])
}

func TestNewLogger_DevShowsDebug(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "dev")
	l.Debug().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}
