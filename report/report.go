// Package report appends one CSV row per solver run to a results file,
// writing the header the first time the file is touched.
package report

import (
	"bufio"
	"fmt"
	"os"
)

// Row is one line of the results CSV, one per descent.Run invocation.
type Row struct {
	Instance string
	Seed     int64

	Alpha                float64
	Beta                 int
	PerturbationLimit    int
	PerturbationStrength float64
	Aspiration           bool

	InitialK         int
	FinalK           int
	DeviationPercent float64
	ElapsedSeconds   float64
	TotalIterations  int
}

const header = "Instance;Seed;Alpha;Beta;P_Limit;P_Str;Asp;SI;SF;Dev(%);Time(s);TotalIter\n"

// Append writes row to path, creating the file if it does not exist and
// writing header first iff the file was empty before this call.
//
// Not safe for concurrent use against the same path from multiple
// processes; the descent/solver pipeline this serves is single-threaded
// per run (see the concurrency model).
func Append(path string, row Row) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("report: open %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("report: stat %s: %w", path, err)
	}

	w := bufio.NewWriter(f)
	if info.Size() == 0 {
		if _, err := w.WriteString(header); err != nil {
			return fmt.Errorf("report: write header: %w", err)
		}
	}

	aspiration := 0
	if row.Aspiration {
		aspiration = 1
	}

	_, err = fmt.Fprintf(w, "%s;%d;%g;%d;%d;%g;%d;%d;%d;%.2f;%.4f;%d\n",
		row.Instance, row.Seed,
		row.Alpha, row.Beta, row.PerturbationLimit, row.PerturbationStrength, aspiration,
		row.InitialK, row.FinalK, row.DeviationPercent, row.ElapsedSeconds, row.TotalIterations,
	)
	if err != nil {
		return fmt.Errorf("report: write row: %w", err)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("report: flush %s: %w", path, err)
	}
	return nil
}
