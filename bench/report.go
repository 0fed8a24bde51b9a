// SPDX-License-Identifier: MIT

package bench

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Result is the timing of one kernel.
type Result struct {
	Name      string        `json:"name"`
	Label     string        `json:"label"`
	Tiled     bool          `json:"tiled"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	ElapsedMs float64       `json:"elapsed_ms"`
	GFLOPS    float64       `json:"gflops"`
	// Change is the performance change against the first result in percent;
	// nil when the baseline time was zero.
	Change *float64 `json:"perf_change_pct,omitempty"`
}

// Report is the outcome of one Run.
type Report struct {
	Started     time.Time `json:"started"`
	Platform    Platform  `json:"platform"`
	ElementType string    `json:"element_type"`
	RowsA       int       `json:"rows_a"`
	ColsA       int       `json:"cols_a"`
	RowsB       int       `json:"rows_b"`
	ColsB       int       `json:"cols_b"`
	TileSize    int       `json:"tile_size"`
	Repeat      int       `json:"repeat"`
	Results     []Result  `json:"results"`
}

// computeChanges fills Result.Change against Results[0].
func (r *Report) computeChanges() {
	if len(r.Results) == 0 {
		return
	}
	base := r.Results[0].Elapsed
	for i := range r.Results {
		change, err := PerformanceChange(base, r.Results[i].Elapsed)
		if err != nil {
			continue
		}
		r.Results[i].Change = &change
	}
}

// FLOPs is the operation count of one product in this report.
func (r *Report) FLOPs() float64 { return FLOPs(r.RowsA, r.ColsA, r.ColsB) }

// Fastest returns the result with the smallest elapsed time.
// ok is false for an empty report.
func (r *Report) Fastest() (res Result, ok bool) {
	if len(r.Results) == 0 {
		return Result{}, false
	}

	return lo.MinBy(r.Results, func(a, b Result) bool { return a.Elapsed < b.Elapsed }), true
}

// WriteText renders the report for a terminal: a platform line, the problem
// shape, then one "Method (<label>): <ms> ms, <GFLOPS> GFLOPS" line per kernel
// followed by its performance change against the first kernel, and the
// fastest kernel last. Numbers are grouped for the English locale.
func (r *Report) WriteText(w io.Writer) error {
	p := message.NewPrinter(language.English)

	var sb strings.Builder
	p.Fprintf(&sb, "Platform: %s/%s, %d CPUs, %s", r.Platform.GOOS, r.Platform.GOARCH, r.Platform.NumCPU, r.Platform.GoVersion)
	if len(r.Platform.Features) > 0 {
		p.Fprintf(&sb, " [%s]", strings.Join(r.Platform.Features, " "))
	}
	sb.WriteString("\n")
	p.Fprintf(&sb, "Matrix size: %dx%d (A %dx%d, B %dx%d, %s, tile %d, best of %d)\n",
		r.RowsA, r.ColsB, r.RowsA, r.ColsA, r.RowsB, r.ColsB, r.ElementType, r.TileSize, r.Repeat)
	p.Fprintf(&sb, "Work: %d FLOP per kernel\n", int64(r.FLOPs()))
	for i, res := range r.Results {
		p.Fprintf(&sb, "Method (%s): %.3f ms, %.3f GFLOPS", res.Label, res.ElapsedMs, res.GFLOPS)
		if i > 0 {
			if res.Change != nil {
				p.Fprintf(&sb, ", Perf Change: %.2f%%", *res.Change)
			} else {
				sb.WriteString(", Perf Change: n/a")
			}
		}
		sb.WriteString("\n")
	}
	if best, ok := r.Fastest(); ok {
		p.Fprintf(&sb, "Fastest: %s\n", best.Label)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

// WriteJSON encodes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

// SaveJSON writes the report to path, creating parent directories.
func (r *Report) SaveJSON(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	if err = r.WriteJSON(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write report: %w", err)
	}

	return f.Close()
}
