package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	require.Equal(t, LevelTrace, ParseLogLevel("trace"))
	require.Equal(t, LevelDebug, ParseLogLevel("DEBUG"))
	require.Equal(t, LevelInfo, ParseLogLevel("Info"))
	require.Equal(t, LevelWarn, ParseLogLevel("WARN"))
	require.Equal(t, LevelError, ParseLogLevel("ERROR"))
	require.Equal(t, LevelAll, ParseLogLevel("bogus"))
}

func TestGetLevelGlob(t *testing.T) {
	old := levelDefault
	defer func() {
		levelDefault = old
		levelConfig = make(map[string]Level)
	}()

	SetDefaultLevel(LevelInfo)
	SetLevel("pipeline*", LevelDebug)
	SetLevel("pipeline.export", LevelError)

	require.Equal(t, LevelDebug, GetLevel("pipeline"))
	require.Equal(t, LevelDebug, GetLevel("pipeline.features"))
	// the exact-name pattern wins over the matching glob
	require.Equal(t, LevelError, GetLevel("pipeline.export"))
	require.Equal(t, LevelInfo, GetLevel("dataset"))
}

func TestLevelLoggerFiltering(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewLog("test", buf)
	log.SetLevel(LevelWarn)

	log.Debug("not visible")
	log.Infof("not visible %d", 1)
	log.Warn("warned")
	log.Errorf("failed %s", "badly")

	out := buf.String()
	require.NotContains(t, out, "not visible")
	require.Contains(t, out, "warned")
	require.Contains(t, out, "failed badly")
	require.Contains(t, out, "WARN")
	require.Contains(t, out, "ERROR")
	require.Equal(t, 2, strings.Count(out, "\n"))

	require.False(t, log.DebugEnabled())
	require.True(t, log.WarnEnabled())
	require.True(t, log.ErrorEnabled())
}
