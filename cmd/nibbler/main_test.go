package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Garik-/nibbler/internal/metrics"
	"github.com/Garik-/nibbler/pkg/midi"
)

func TestRun(t *testing.T) {
	d, err := midi.NewDecoder()
	require.NoError(t, err)
	rec := metrics.NewRecorder(prometheus.NewRegistry())

	in := strings.NewReader("90 40 50\nF0 41\n10 f7 C0\n")
	var out bytes.Buffer

	err = run(context.Background(), in, &out, d, rec, zaptest.NewLogger(t))
	require.NoError(t, err)

	assert.Equal(t, "NoteOn channel=0 key=64 velocity=80\nSystemExclusive F0 41 10 F7\n", out.String())
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.Messages.WithLabelValues("system_exclusive")))
	assert.Equal(t, 2, d.Pending())
}

func TestRun_Canceled(t *testing.T) {
	d, err := midi.NewDecoder()
	require.NoError(t, err)
	rec := metrics.NewRecorder(prometheus.NewRegistry())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = run(ctx, strings.NewReader("904050\n"), &bytes.Buffer{}, d, rec, zaptest.NewLogger(t))
	require.ErrorIs(t, err, context.Canceled)
}
