package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"rotconv/internal/batch"
	"rotconv/internal/config"
	"rotconv/internal/fixture"
	"rotconv/internal/mathutil"
	"rotconv/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	fixtures := flag.String("fixtures", "", "Fixture XML file (default: built-in tables)")
	table := flag.String("table", "", "Verify only cases from this table")
	tolerance := flag.Float64("tolerance", 0, "Per-component tolerance (default: 1e-4)")
	outputDir := flag.String("output", "", "Output directory for manifest and previews (default: out)")
	previews := flag.Bool("previews", false, "Render a WebP preview for every case")
	background := flag.String("background", "", "Preview background image")
	size := flag.Int("size", 0, "Preview size in pixels (default: 256)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		FixtureFile: *fixtures,
		Background:  *background,
		OutputDir:   *outputDir,
		Table:       *table,
		Tolerance:   *tolerance,
		Previews:    *previews,
		Size:        *size,
		Workers:     *workers,
	})

	// Load cases
	var cases []fixture.Case
	source := "built-in"
	if cfg.FixtureFile != "" {
		var err error
		cases, err = fixture.Parse(cfg.FixtureFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading fixtures: %v\n", err)
			os.Exit(1)
		}
		source = cfg.FixtureFile
	} else {
		cases = fixture.Default()
	}
	cases = fixture.Filter(cases, cfg.Table)

	if len(cases) == 0 {
		fmt.Println("No cases to verify.")
		os.Exit(0)
	}

	mode := ""
	if cfg.Table != "" {
		mode = fmt.Sprintf(" (table %s)", cfg.Table)
	}

	fmt.Printf("Euler/quaternion conversion check%s\n", mode)
	fmt.Printf("Fixtures: %s, Cases: %d, Workers: %d\n", source, len(cases), cfg.Workers)
	fmt.Printf("Tolerance: %g\n", cfg.Tolerance)
	if cfg.Previews {
		fmt.Printf("Previews: %s (%dpx)\n", cfg.OutputDir, cfg.RenderSize)
	}
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	batchCfg := batch.Config{
		OutputDir:   cfg.OutputDir,
		Tolerance:   cfg.Tolerance,
		Previews:    cfg.Previews,
		Background:  cfg.Background,
		Textures:    texture.NewCache(),
		RenderSize:  cfg.RenderSize,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
	}

	results := batch.Run(batchCfg, cases)

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.2fs\n", elapsed.Seconds())

	sum := batch.Summarize(results)
	fmt.Printf("Passed: %d/%d\n", sum.Passed, sum.Total)

	var failures, disagreements []batch.Result
	for _, r := range results {
		if r.Success() {
			continue
		}
		if r.Enabled {
			failures = append(failures, r)
		} else {
			disagreements = append(disagreements, r)
		}
	}

	if len(failures) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failures))
		printResults(failures, 20)
	}
	if len(disagreements) > 0 {
		fmt.Printf("\nDisabled tables disagreeing (%d, not counted):\n", len(disagreements))
		printResults(disagreements, 10)
	}

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if err := batch.WriteManifest(manifestPath, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if sum.Failed > 0 {
		os.Exit(1)
	}
}

func printResults(results []batch.Result, limit int) {
	limit = min(limit, len(results))
	for _, r := range results[:limit] {
		fmt.Printf("  %s: %s\n", r.Name, describe(r))
	}
	if len(results) > limit {
		fmt.Printf("  ... and %d more\n", len(results)-limit)
	}
}

// describe names the first failed check of a result.
func describe(r batch.Result) string {
	switch {
	case r.Error != "":
		return r.Error
	case !r.Match:
		return fmt.Sprintf("got (%.4f, %.4f, %.4f, %.4f), want (%.4f, %.4f, %.4f, %.4f)",
			r.Quat.X(), r.Quat.Y(), r.Quat.Z(), r.Quat.W(),
			r.Want.X(), r.Want.Y(), r.Want.Z(), r.Want.W())
	case !r.UnitNorm:
		return fmt.Sprintf("|q| = %.6f", r.Quat.Norm())
	case !r.RoundTrip:
		return fmt.Sprintf("round trip through (%.2f, %.2f, %.2f) changed the rotation (max angle change %.4f°)",
			r.Recovered.Pitch(), r.Recovered.Yaw(), r.Recovered.Roll(), maxAngleDist(r.Degrees, r.Recovered))
	}
	return "ok"
}

// maxAngleDist returns the largest per-axis angular distance between two
// triples in degrees.
func maxAngleDist(a, b mathutil.Euler) float64 {
	var d float64
	for i := range a {
		d = max(d, mathutil.AngleDist(a[i], b[i]))
	}
	return d
}
