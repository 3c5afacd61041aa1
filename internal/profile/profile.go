// Package profile exports fringe-profile charts for computed fields.
package profile

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/pinhole-diffraction/internal/diffraction"
)

// WriteChart renders the horizontal center-row intensity profile of f as
// an interactive HTML line chart. The x axis is the observation
// coordinate u in radians, matching the mapping used by
// diffraction.Compute.
func WriteChart(w io.Writer, f *diffraction.Field, p diffraction.Params) error {
	line := charts.NewLine()

	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			BackgroundColor: "#ffffff",
			Width:           "100%",
			Height:          "600px",
			PageTitle:       "Pinhole diffraction intensity profile",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "slider",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			XAxisIndex: []int{0},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "cross",
				Snap: opts.Bool(true),
			},
		}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Top:  "0%",
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Name:  "profile",
					Title: "Save as image",
				},
				Restore: &opts.ToolBoxFeatureRestore{
					Show:  opts.Bool(true),
					Title: "refresh",
				},
			},
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "u, rad",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  "Intensity",
			Type:  "value",
			Show:  opts.Bool(true),
			Scale: opts.Bool(true),
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
	)

	row := f.Row(f.H / 2)
	x := make([]float64, len(row))
	series := make([]opts.LineData, len(row))
	for i, v := range row {
		x[i] = 2*math.Pi*float64(i)/float64(f.W) - math.Pi + p.ShiftX
		series[i] = opts.LineData{Value: v}
	}
	line.SetXAxis(x)
	line.AddSeries(fmt.Sprintf("k = %g", p.Wavenumber), series)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("failed to render chart: %w", err)
	}
	return nil
}

// Save writes the profile chart of f to an HTML file at path.
func Save(path string, f *diffraction.Field, p diffraction.Params) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if err := WriteChart(file, f, p); err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"path":  path,
		"width": f.W,
	}).Info("Profile chart saved")
	return nil
}
