package main

import (
	"fmt"
	"path/filepath"

	"github.com/andareed/siftly-welllog/depthaxis"
	"github.com/andareed/siftly-welllog/lithology"
	"github.com/andareed/siftly-welllog/logging"
	"github.com/andareed/siftly-welllog/track"
	"github.com/andareed/siftly-welllog/welllog"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/gomono"
)

const (
	exportRulerW  = 64
	exportTrackW  = 180
	exportHeaderH = 44
	exportBodyH   = 900
	exportBG      = "#1e1e1e"
	exportFG      = "#e0e0e0"
	exportGrid    = "#444444"
)

type exportDoneMsg struct {
	path string
	err  error
}

type exportTrack struct {
	name   string
	cfg    welllog.TrackConfig
	litho  lithology.Config
	values []welllog.Value
}

// exportJob is a copy of what the view shows, taken on the update loop so
// the render can run in a command.
type exportJob struct {
	path   string
	depth  []float64
	window depthaxis.Window
	tracks []exportTrack
}

func (m *model) exportJob(path string) exportJob {
	job := exportJob{path: path, window: m.data.window}
	if m.data.ds == nil {
		return job
	}
	job.depth = m.data.ds.Depth
	for _, name := range m.visibleTracks() {
		p := m.panes[name]
		job.tracks = append(job.tracks, exportTrack{
			name:   name,
			cfg:    p.Config,
			litho:  p.Litho,
			values: m.data.ds.Curves[name],
		})
	}
	return job
}

func exportPNGCmd(job exportJob) tea.Cmd {
	return func() tea.Msg {
		return exportDoneMsg{path: job.path, err: renderPNG(job)}
	}
}

func (m *model) handleExportDone(msg exportDoneMsg) tea.Cmd {
	if msg.err != nil {
		logging.Errorf("export %s: %v", msg.path, msg.err)
		return m.startNotice(fmt.Sprintf("Export failed: %v", msg.err), "error", noticeDuration)
	}
	return m.startNotice("Exported "+filepath.Base(msg.path), "success", noticeDuration)
}

func renderPNG(job exportJob) error {
	if len(job.tracks) == 0 || job.window.Span() <= 0 {
		return fmt.Errorf("nothing to export")
	}
	font, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	face := truetype.NewFace(font, &truetype.Options{Size: 11})

	width := exportRulerW + len(job.tracks)*exportTrackW
	height := exportHeaderH + exportBodyH
	dc := gg.NewContext(width, height)
	dc.SetFontFace(face)
	dc.SetHexColor(exportBG)
	dc.Clear()

	top, bottom := float64(exportHeaderH), float64(height)
	drawExportRuler(dc, job.window, top, bottom)

	for i, t := range job.tracks {
		x := float64(exportRulerW + i*exportTrackW)
		r := track.Rect{X: x, Y: top, W: exportTrackW, H: exportBodyH}

		dc.SetHexColor(exportFG)
		dc.DrawStringAnchored(headerLabel(t), x+exportTrackW/2, 14, 0.5, 0.5)
		if t.cfg.Mode == welllog.ModeCurve {
			lo, hi := fmt.Sprintf("%g", t.cfg.Min), fmt.Sprintf("%g", t.cfg.Max)
			dc.DrawStringAnchored(lo, x+4, 32, 0, 0.5)
			dc.DrawStringAnchored(hi, x+exportTrackW-4, 32, 1, 0.5)
			track.DrawCurve(dc, job.depth, t.values, t.cfg, job.window, r, true)
		} else {
			track.DrawLithology(dc, track.Blocks(job.depth, t.values, job.window), t.litho, job.window, r)
		}

		dc.SetHexColor(exportGrid)
		dc.SetLineWidth(1)
		dc.DrawLine(x, 0, x, bottom)
		dc.Stroke()
	}
	dc.DrawLine(0, top, float64(width), top)
	dc.Stroke()

	if err := dc.SavePNG(job.path); err != nil {
		return fmt.Errorf("write %s: %w", job.path, err)
	}
	logging.Infof("exported %d tracks to %s", len(job.tracks), job.path)
	return nil
}

func headerLabel(t exportTrack) string {
	if t.cfg.Unit == "" {
		return t.name
	}
	return t.name + " (" + t.cfg.Unit + ")"
}

func drawExportRuler(dc *gg.Context, w depthaxis.Window, top, bottom float64) {
	dc.SetHexColor(exportFG)
	dc.DrawStringAnchored("DEPTH", exportRulerW/2, 14, 0.5, 0.5)
	dc.SetLineWidth(1)
	for _, d := range depthaxis.Ticks(w) {
		y := depthaxis.DepthToPixel(d, top, bottom, w)
		dc.DrawLine(exportRulerW-8, y, exportRulerW, y)
		dc.Stroke()
		dc.DrawStringAnchored(fmt.Sprintf("%.0f", d), exportRulerW-10, y, 1, 0.5)
	}
}
