package batch

import (
	"fmt"
	"math"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"rotconv/internal/fixture"
	"rotconv/internal/mathutil"
	"rotconv/internal/preview"
	"rotconv/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Tolerance   float64
	Previews    bool
	Background  string // texture path, resolved through Textures
	Textures    texture.Resolver
	RenderSize  int
	Supersample int
	Workers     int
}

// Result holds the outcome of verifying one case.
type Result struct {
	Name    string
	Table   string
	Index   int
	Enabled bool

	Degrees   mathutil.Euler // input (pitch, yaw, roll)
	Quat      mathutil.Quat
	Want      *mathutil.Quat
	Recovered mathutil.Euler // degrees, from the rotation matrix
	Locked    bool           // gimbal lock detected on the way back

	Match     bool // Quat within tolerance of Want (true when Want is nil)
	UnitNorm  bool
	RoundTrip bool // Recovered converts back to the same rotation
	Preview   string
	Error     string
}

// Success reports whether every check passed.
func (r Result) Success() bool {
	return r.Error == "" && r.Match && r.UnitNorm && r.RoundTrip
}

// Run verifies all cases using a worker pool. Results keep the order of cases.
func Run(cfg Config, cases []fixture.Case) []Result {
	total := len(cases)
	results := make([]Result, total)
	var processed atomic.Int64

	workers := max(cfg.Workers, 1)
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p := processed.Load()
				if p > 0 {
					elapsed := time.Since(start).Seconds()
					rate := float64(p) / elapsed
					fmt.Printf("  [%d/%d] %.1f cases/sec\n", p, total, rate)
				}
			}
		}
	}()

	// Worker pool
	caseChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range caseChan {
				results[idx] = Verify(cfg, cases[idx])
				processed.Add(1)
			}
		}()
	}

	// Send work
	for i := range cases {
		caseChan <- i
	}
	close(caseChan)

	wg.Wait()
	close(done)

	return results
}

// Verify converts one case and runs every check on it.
func Verify(cfg Config, c fixture.Case) Result {
	res := Result{
		Name:    c.Name(),
		Table:   c.Table,
		Index:   c.Index,
		Enabled: c.Enabled,
		Degrees: c.Degrees,
		Want:    c.Want,
	}

	if err := mathutil.CheckFinite(c.Degrees[:]...); err != nil {
		res.Error = fmt.Sprintf("input: %v", err)
		return res
	}

	tol := c.Tol
	if tol <= 0 {
		tol = cfg.Tolerance
	}
	if tol <= 0 {
		tol = 1e-4
	}

	rad := c.Degrees.Rad()
	q := mathutil.EulerToQuat(rad.Pitch(), rad.Yaw(), rad.Roll())
	m := mathutil.Mat4FromQuat(q).Mat3()
	back := mathutil.Mat3ToEuler(m)

	res.Quat = q
	res.Recovered = back.Deg()
	res.Locked = mathutil.GimbalLocked(m)
	res.UnitNorm = math.Abs(q.Norm()-1) <= tol
	res.Match = c.Want == nil || q.ApproxEqual(*c.Want, tol)
	res.RoundTrip = q.SameRotation(back.Quat(), tol)

	if cfg.Previews {
		out, err := writePreview(cfg, c, q)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.Preview = out
	}

	return res
}

func writePreview(cfg Config, c fixture.Case, q mathutil.Quat) (string, error) {
	var opts preview.Options
	opts.Size = cfg.RenderSize
	opts.Supersample = cfg.Supersample

	if cfg.Textures != nil && cfg.Background != "" {
		bg, err := cfg.Textures.Resolve(cfg.Background)
		if err != nil {
			return "", err
		}
		opts.Background = bg
	}

	rel := filepath.Join(c.Table, fmt.Sprintf("%d.webp", c.Index))
	img := preview.Render(q, opts)
	if err := preview.WriteFile(filepath.Join(cfg.OutputDir, rel), img); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
