package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/andareed/siftly-welllog/dialogs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderPNGWritesVisibleTracks(t *testing.T) {
	m, _ := loadedModel(t)
	m.focusTrack("LITH")
	typeKeys(m, "t")
	m.Update(dialogs.TrackMenuChosenMsg{Track: "RT", Action: dialogs.ActionHide})

	path := filepath.Join(t.TempDir(), "v.png")
	require.NoError(t, renderPNG(m.exportJob(path)))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, exportRulerW+2*exportTrackW, img.Bounds().Dx())
	assert.Equal(t, exportHeaderH+exportBodyH, img.Bounds().Dy())
}

func TestRenderPNGNeedsTracks(t *testing.T) {
	m, _ := newTestModel(t)
	err := renderPNG(m.exportJob(filepath.Join(t.TempDir(), "v.png")))
	assert.EqualError(t, err, "nothing to export")
}

func TestExportCommandReportsResult(t *testing.T) {
	m, _ := loadedModel(t)
	path := filepath.Join(t.TempDir(), "view.png")
	send(m, dialogs.PathConfirmedMsg{Purpose: dialogs.PurposeExportPNG, Path: path})
	assert.FileExists(t, path)
	assert.Contains(t, m.ui.noticeMsg, "Exported view.png")
}
