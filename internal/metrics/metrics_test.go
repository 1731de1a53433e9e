package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garik-/nibbler/pkg/midi"
	"github.com/Garik-/nibbler/pkg/nibble"
)

func TestRecorder_Observe(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)

	d, err := midi.NewDecoder(midi.WithMaxPending(6))
	require.NoError(t, err)

	rep := d.Process(nibble.MustHex("50 904050 4060 F8"))
	rec.Observe(rep, d.Pending())

	assert.Equal(t, float64(2), testutil.ToFloat64(rec.Messages.WithLabelValues("note_on")))
	assert.Equal(t, float64(1), testutil.ToFloat64(rec.Messages.WithLabelValues("system_realtime")))
	assert.Equal(t, float64(12), testutil.ToFloat64(rec.Processed))
	assert.Equal(t, float64(2), testutil.ToFloat64(rec.Rejected))
	assert.Equal(t, float64(0), testutil.ToFloat64(rec.Pending))
	assert.Equal(t, float64(0), testutil.ToFloat64(rec.Desync))

	rep = d.Process(nibble.MustHex("F0010203"))
	rec.Observe(rep, d.Pending())

	assert.Equal(t, float64(1), testutil.ToFloat64(rec.Desync))
	assert.Equal(t, float64(0), testutil.ToFloat64(rec.Pending))
}

func TestHandler(t *testing.T) {
	reg := NewRegistry()
	rec := NewRecorder(reg)
	rec.Processed.Add(6)

	srv := httptest.NewServer(Handler(reg))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	n, err := testutil.GatherAndCount(reg, "nibbler_nibbles_processed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
