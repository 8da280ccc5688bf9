package sweep

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const methodRun = "Run"

// Run sweeps p over cfg's grid, writing each observation to every sink in
// order, and flushes the sinks once at the end. It stops at the first sink
// error or when ctx is done; rows written before that stay written.
func Run(ctx context.Context, p Percolator, cfg Config, sinks []Sink, opts ...Option) (Result, error) {
	rc := runConfig{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&rc)
	}
	if rc.runID == uuid.Nil {
		rc.runID = uuid.New()
	}
	res := Result{RunID: rc.runID}

	if p == nil {
		return res, fmt.Errorf("%s: nil percolator: %w", methodRun, ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return res, fmt.Errorf("%s: %w", methodRun, err)
	}

	points := cfg.Points()
	log := rc.log.With().Str("run_id", rc.runID.String()).Logger()
	log.Info().
		Int("simulations", cfg.Simulations).
		Int("points", len(points)).
		Float64("t_min", cfg.TMin).
		Float64("t_max", cfg.TMax).
		Msg("sweep started")

	for m := 0; m < cfg.Simulations; m++ {
		for _, T := range points {
			if err := ctx.Err(); err != nil {
				return res, fmt.Errorf("%s: simulation %d: %w", methodRun, m, err)
			}
			p.BondPercolate(T)
			st, err := p.Snapshot()
			if err != nil {
				return res, fmt.Errorf("%s: simulation %d, T=%g: %w", methodRun, m, T, err)
			}
			row := Row{RunID: rc.runID, Simulation: m, Stats: st}
			for _, s := range sinks {
				if err := s.Write(row); err != nil {
					return res, fmt.Errorf("%s: write: %w", methodRun, err)
				}
			}
			res.Rows++
		}
		log.Info().Int("simulation", m).Int("rows", res.Rows).Msg("sweep pass done")
	}

	for _, s := range sinks {
		if err := s.Flush(); err != nil {
			return res, fmt.Errorf("%s: flush: %w", methodRun, err)
		}
	}

	return res, nil
}
