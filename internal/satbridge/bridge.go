// Package satbridge implements the #SAT bridge (C6): it converts a
// propositional expression string to CNF, serializes it to DIMACS,
// invokes an external model counter, and memoizes the resulting
// probability by DIMACS textual identity (spec §4.6).
package satbridge

import (
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ltlmeasure/measure/internal/config"
	"github.com/ltlmeasure/measure/internal/measureerr"
	"github.com/ltlmeasure/measure/internal/propcnf"
)

// Bridge orchestrates C6. A nil Cache disables memoization entirely.
type Bridge struct {
	Symbols     config.SymbolSet
	Cache       Cache
	CounterPath string
	ScratchDir  string
}

// New returns a Bridge. counterPath and scratchDir may be empty to use
// the defaults (config.DefaultCounterName on PATH, os.TempDir()).
func New(symbols config.SymbolSet, cache Cache, counterPath, scratchDir string) *Bridge {
	return &Bridge{Symbols: symbols, Cache: cache, CounterPath: counterPath, ScratchDir: scratchDir}
}

// Measure implements the full C6 pipeline over a propositional
// expression string produced by the unroller.
func (b *Bridge) Measure(expr string) (float64, error) {
	e, vt, err := propcnf.Parse(expr, b.Symbols)
	if err != nil {
		return 0, err
	}
	cnf := propcnf.ToCNF(e, vt)

	// spec §4.6 step 2: constant CNF results bypass the counter and the
	// cache entirely.
	if cnf.ConstFalse {
		return 0, nil
	}
	if cnf.ConstTrue {
		return 1, nil
	}

	dimacs := cnf.DIMACS()

	if b.Cache != nil {
		if v, ok := b.Cache.Get(dimacs); ok {
			return v, nil
		}
	}

	count, err := b.runCounter(dimacs)
	if err != nil {
		return 0, err
	}

	// count is the number of satisfying assignments over all NVars
	// variables, but every Tseitin auxiliary is functionally determined
	// by the original variables, so count is also exactly the number of
	// satisfying assignments over just the OrigVars original variables.
	// The probability is over the original variables alone.
	measure := float64(count) / math.Pow(2, float64(cnf.OrigVars))
	if b.Cache != nil {
		b.Cache.Put(dimacs, measure)
	}
	return measure, nil
}

// runCounter writes dimacs to a uniquely-named scratch file, invokes the
// external #SAT counter on it, and parses its solution count.
//
// The scratch file is written in full by os.WriteFile before the counter
// process is ever started, and each invocation gets a fresh
// uuid-suffixed filename (spec §5: the scratch file "must be written
// atomically enough that one invocation of the counter sees a complete
// file before it starts", and concurrent processes on the same host must
// not collide on the path).
func (b *Bridge) runCounter(dimacs string) (int64, error) {
	dir := b.ScratchDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "measure-"+uuid.NewString()+".cnf")

	if err := os.WriteFile(path, []byte(dimacs), 0o600); err != nil {
		return 0, measureerr.Wrap(measureerr.IO, err, "writing DIMACS scratch file %s", path)
	}
	defer os.Remove(path)

	counterPath := b.CounterPath
	if counterPath == "" {
		counterPath = config.DefaultCounterName
	}

	out, err := exec.Command(counterPath, path).Output()
	if err != nil {
		return 0, measureerr.Wrap(measureerr.External, err, "invoking #SAT counter %q", counterPath)
	}
	return parseCounterOutput(string(out))
}

// parseCounterOutput extracts the decimal solution count from the
// "# solutions" / "# END" block described in spec §6.
func parseCounterOutput(out string) (int64, error) {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "# solutions" {
			continue
		}
		if i+1 >= len(lines) {
			break
		}
		n, err := strconv.ParseInt(strings.TrimSpace(lines[i+1]), 10, 64)
		if err != nil {
			return 0, measureerr.Wrap(measureerr.External, err, "parsing #SAT counter solution count")
		}
		return n, nil
	}
	return 0, measureerr.New(measureerr.External, "could not find a '# solutions' block in #SAT counter output")
}
