package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/welllog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullState() State {
	return State{
		TrackOrder:          []string{"RT", "GR", "LITH"},
		HiddenTracks:        []string{"SP"},
		CustomScales:        map[string]welllog.Scale{"GR": {Min: 0, Max: 200}},
		LithologyModeTracks: []string{"LITH"},
		LithologyConfigs: map[string]lithology.Config{
			"LITH": {Ranges: lithology.RangeMap{{Min: 0, Max: 1, Color: "#ffff00", Label: "Sand"}}},
			"FAC":  {Values: lithology.ValueMap{3: {Color: "#00ff00", Label: "Shale"}}},
		},
		ViewRange: &depthaxis.Window{Start: 1200, End: 1350},
	}
}

func TestEncodeDecodeKeepsAllFields(t *testing.T) {
	data, err := Encode(fullState())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": 1`)

	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, fullState(), got)
}

func TestDecodeKeepsAbsentFieldsNil(t *testing.T) {
	got, err := Decode([]byte(`{"version":1,"hiddenTracks":[]}`))
	require.NoError(t, err)
	assert.Nil(t, got.TrackOrder)
	assert.Nil(t, got.ViewRange)
	assert.Nil(t, got.CustomScales)
	require.NotNil(t, got.HiddenTracks)
	assert.Empty(t, got.HiddenTracks)
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	_, err := Decode([]byte(`{"version":7}`))
	assert.Error(t, err)
	_, err = Decode([]byte(`not json`))
	assert.Error(t, err)
}

func TestSetAndMembers(t *testing.T) {
	assert.Nil(t, Set(nil))
	assert.Equal(t, []string{"A", "C"}, Set(map[string]bool{"C": true, "A": true, "B": false}))
	assert.Equal(t, map[string]bool{"X": true}, Members([]string{"X"}))
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "view.json")
	st := FileStore{Path: path}
	require.NoError(t, st.Save(fullState()))

	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, fullState(), got)

	_, err = FileStore{Path: filepath.Join(t.TempDir(), "missing.json")}.Load()
	assert.Error(t, err)
}

func TestClipboardStoreRoundTrip(t *testing.T) {
	var copied string
	st := ClipboardStore{
		Copy:  func(s string) error { copied = s; return nil },
		Paste: func() (string, error) { return copied, nil },
	}
	require.NoError(t, st.Save(fullState()))
	got, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, fullState(), got)

	st.Paste = func() (string, error) { return "", errors.New("no clipboard") }
	_, err = st.Load()
	assert.ErrorIs(t, err, ErrLoadUnsupported)
}

func TestSelectStore(t *testing.T) {
	env := func(vals map[string]string) func(string) string {
		return func(k string) string { return vals[k] }
	}

	st, err := Select("", "/tmp/x.json", env(nil))
	require.NoError(t, err)
	assert.IsType(t, FileStore{}, st)

	st, err = Select("", "/tmp/x.json", env(map[string]string{"SSH_TTY": "/dev/pts/1"}))
	require.NoError(t, err)
	assert.IsType(t, ClipboardStore{}, st)

	st, err = Select(StoreFile, "/tmp/x.json", env(map[string]string{"SSH_TTY": "/dev/pts/1"}))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.json", st.String())

	_, err = Select("s3", "", env(nil))
	assert.Error(t, err)
}
