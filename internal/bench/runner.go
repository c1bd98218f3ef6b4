package bench

import (
	"bytes"
	"fmt"
	"time"

	"github.com/hydepwns/zmin-go/zmin"
)

// Result holds the measurements for one case/mode pair.
type Result struct {
	Case        string
	Mode        zmin.Mode
	InputBytes  int
	OutputBytes int
	Iterations  int
	Best        time.Duration
	Avg         time.Duration
	Throughput  float64 // MB/s over the best iteration
	SavedPct    float64 // size reduction in percent
}

// Runner executes a suite case by case.
type Runner struct {
	suite *Suite
}

// NewRunner creates a runner for the suite.
func NewRunner(s *Suite) *Runner {
	return &Runner{suite: s}
}

// Run benchmarks every case/mode pair. Outputs are cross-checked between
// modes of the same case; a mismatch is a bug in the engine and fails the
// run.
func (r *Runner) Run() ([]Result, error) {
	var results []Result

	for _, c := range r.suite.Cases {
		data, err := c.load()
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}
		modes, err := c.modes()
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.Name, err)
		}

		var reference []byte
		for _, mode := range modes {
			res, out, err := runCase(c, data, mode)
			if err != nil {
				return nil, fmt.Errorf("case %q mode %s: %w", c.Name, mode, err)
			}
			if reference == nil {
				reference = out
			} else if !bytes.Equal(out, reference) {
				return nil, fmt.Errorf("case %q: %s output differs from %s",
					c.Name, mode, modes[0])
			}
			results = append(results, res)
		}
	}

	return results, nil
}

// runCase times one case under one mode.
func runCase(c Case, data []byte, mode zmin.Mode) (Result, []byte, error) {
	iters := c.iterations()

	var out []byte
	var total, best time.Duration
	for i := 0; i < iters; i++ {
		start := time.Now()
		minified, err := zmin.Minify(data, mode)
		elapsed := time.Since(start)
		if err != nil {
			return Result{}, nil, err
		}
		out = minified
		total += elapsed
		if best == 0 || elapsed < best {
			best = elapsed
		}
	}

	res := Result{
		Case:        c.Name,
		Mode:        mode,
		InputBytes:  len(data),
		OutputBytes: len(out),
		Iterations:  iters,
		Best:        best,
		Avg:         total / time.Duration(iters),
	}
	if best > 0 {
		res.Throughput = float64(len(data)) / (1024 * 1024) / best.Seconds()
	}
	if len(data) > 0 {
		res.SavedPct = 100 * float64(len(data)-len(out)) / float64(len(data))
	}
	return res, out, nil
}
