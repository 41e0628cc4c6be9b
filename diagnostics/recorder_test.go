package diagnostics

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorderRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagnostics.db")
	rec, err := OpenRecorder(path)
	require.NoError(t, err)
	defer rec.Close()

	require.NoError(t, rec.Record(FrameRecord{
		RecordedAt: time.Unix(1000, 0),
		Width:      80, Height: 24, Updates: 12,
		Duration: 3 * time.Millisecond,
	}))
	require.NoError(t, rec.Record(FrameRecord{
		RecordedAt: time.Unix(1001, 0),
		Width:      80, Height: 24, Updates: 0,
		Duration: time.Millisecond, Error: "boom",
	}))

	recent, err := rec.Recent(10)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "boom", recent[0].Error)
	assert.Equal(t, 12, recent[1].Updates)
}

func TestRecorderRecentRespectsLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagnostics.db")
	rec, err := OpenRecorder(path)
	require.NoError(t, err)
	defer rec.Close()

	for i := 0; i < 5; i++ {
		require.NoError(t, rec.Record(FrameRecord{RecordedAt: time.Now(), Width: 10, Height: 10, Updates: i}))
	}

	recent, err := rec.Recent(2)
	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

func TestRecordFrameAdaptsErrorToString(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diagnostics.db")
	rec, err := OpenRecorder(path)
	require.NoError(t, err)
	defer rec.Close()

	require.NoError(t, rec.RecordFrame(80, 24, 3, time.Millisecond, assertError{"bad"}))

	recent, err := rec.Recent(1)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "bad", recent[0].Error)
}

type assertError struct{ msg string }

func (e assertError) Error() string { return e.msg }
