package app

import (
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/iburimskiy/pinhole-diffraction/internal/config"
	"github.com/iburimskiy/pinhole-diffraction/internal/diffraction"
)

type computeResult struct {
	gen   uint64
	field *diffraction.Field
	err   error
}

// requestRecompute schedules a preview computation for the current
// parameters. While one is in flight further requests collapse into a
// single pending recompute; results for superseded generations are
// discarded, so the view only ever shows the most recently requested
// pattern.
func (g *Game) requestRecompute() {
	g.gen++
	if g.computing {
		g.pending = true
		return
	}
	g.launch()
}

func (g *Game) launch() {
	g.computing = true
	gen := g.gen
	ap, err := g.aperture()
	p := g.params(config.PreviewSize)
	go func() {
		if err != nil {
			g.results <- computeResult{gen: gen, err: err}
			return
		}
		start := time.Now()
		field, err := diffraction.Compute(ap, p)
		if err == nil {
			log.WithFields(log.Fields{
				"gen":  gen,
				"size": p.Width,
				"time": time.Since(start),
			}).Debug("Preview computed")
		}
		g.results <- computeResult{gen: gen, field: field, err: err}
	}()
}

// drainResults adopts at most one finished computation per frame.
func (g *Game) drainResults() {
	select {
	case res := <-g.results:
		g.computing = false
		if res.gen == g.gen {
			if res.err != nil {
				g.lastErr = res.err
				log.WithError(res.err).Error("Preview computation failed")
			} else {
				g.lastErr = nil
				g.field = res.field
				g.refreshView()
			}
		} else {
			log.WithFields(log.Fields{"gen": res.gen, "current": g.gen}).Debug("Discarding stale result")
		}
		if g.pending {
			g.pending = false
			g.launch()
		}
	default:
	}
}
