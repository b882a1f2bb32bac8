package sweep

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Cell is one entry of the result table.
type Cell struct {
	Accuracy      float64 `json:"accuracy"`
	Total         int     `json:"total"`
	Errors        int     `json:"errors"`
	AvgIterations float64 `json:"avg_iterations"`
}

type bestRecord struct {
	RunID    string  `json:"run_id"`
	Gamma    float64 `json:"gamma"`
	C        float64 `json:"c"`
	Accuracy float64 `json:"accuracy"`
}

type timeRecord struct {
	RunID          string  `json:"run_id"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Succeeded      int     `json:"succeeded"`
	Failed         int     `json:"failed"`
}

func formatKey(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

// Table returns the successful outcomes keyed gamma → C.
func (r *Report) Table() map[string]map[string]Cell {
	t := make(map[string]map[string]Cell)
	for _, o := range r.Outcomes {
		g := formatKey(o.Gamma)
		if t[g] == nil {
			t[g] = make(map[string]Cell)
		}
		t[g][formatKey(o.C)] = Cell{
			Accuracy:      o.Accuracy,
			Total:         o.Total,
			Errors:        o.Errors,
			AvgIterations: o.AvgIterations,
		}
	}

	return t
}

// WriteJSON writes three files into dir (created if missing):
//
//	<project>-<variant>.json  gamma → C → {accuracy, total, errors, avg_iterations}
//	<project>-best.json       the best pair, omitted when nothing succeeded
//	<project>-time.json       wall time and task counts
func (r *Report) WriteJSON(dir, project, variant string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("sweep: create %s: %w", dir, err)
	}
	if err := writeJSON(filepath.Join(dir, project+"-"+variant+".json"), r.Table()); err != nil {
		return err
	}
	if r.Best != nil {
		best := bestRecord{RunID: r.RunID, Gamma: r.Best.Gamma, C: r.Best.C, Accuracy: r.Best.Accuracy}
		if err := writeJSON(filepath.Join(dir, project+"-best.json"), best); err != nil {
			return err
		}
	}

	return writeJSON(filepath.Join(dir, project+"-time.json"), timeRecord{
		RunID:          r.RunID,
		ElapsedSeconds: r.Elapsed.Seconds(),
		Succeeded:      len(r.Outcomes),
		Failed:         len(r.Failures),
	})
}

func writeJSON(path string, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("sweep: encode %s: %w", path, err)
	}
	if err = os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return fmt.Errorf("sweep: write %s: %w", path, err)
	}

	return nil
}
