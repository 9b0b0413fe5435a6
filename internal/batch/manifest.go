package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one case in the output manifest.
type ManifestEntry struct {
	Name      string      `json:"name"`
	Table     string      `json:"table"`
	Index     int         `json:"index"`
	Enabled   bool        `json:"enabled"`
	Degrees   [3]float64  `json:"degrees"` // pitch, yaw, roll
	Quat      [4]float64  `json:"quat"`    // x, y, z, w
	Want      *[4]float64 `json:"want,omitempty"`
	Recovered [3]float64  `json:"recovered"`
	Locked    bool        `json:"gimbal_lock"`
	Success   bool        `json:"success"`
	Preview   string      `json:"preview,omitempty"`
	Error     string      `json:"error,omitempty"`
}

// WriteManifest writes the results as indented JSON.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, len(results))
	for i, r := range results {
		entries[i] = ManifestEntry{
			Name:      r.Name,
			Table:     r.Table,
			Index:     r.Index,
			Enabled:   r.Enabled,
			Degrees:   r.Degrees,
			Quat:      r.Quat,
			Recovered: r.Recovered,
			Locked:    r.Locked,
			Success:   r.Success(),
			Preview:   r.Preview,
			Error:     r.Error,
		}
		if r.Want != nil {
			w := [4]float64(*r.Want)
			entries[i].Want = &w
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Summary counts results by outcome.
type Summary struct {
	Total    int
	Passed   int
	Failed   int // enabled cases with a failed check
	Disagree int // disabled cases that do not match their recorded values
}

// Summarize tallies results. Disabled cases never count as failures.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case r.Success():
			s.Passed++
		case r.Enabled:
			s.Failed++
		default:
			s.Disagree++
		}
	}
	return s
}
