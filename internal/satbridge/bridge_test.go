package satbridge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ltlmeasure/measure/internal/config"
	"github.com/ltlmeasure/measure/internal/propcnf"
)

func TestParseCounterOutput(t *testing.T) {
	out := "some banner\n# solutions\n42\n# END\n"
	n, err := parseCounterOutput(out)
	if err != nil {
		t.Fatalf("parseCounterOutput: %v", err)
	}
	if n != 42 {
		t.Errorf("parseCounterOutput() = %d, want 42", n)
	}
}

func TestParseCounterOutputMissingBlock(t *testing.T) {
	_, err := parseCounterOutput("nothing useful here\n")
	if err == nil {
		t.Fatalf("expected an error for output with no solutions block")
	}
}

func TestMapCacheRoundTrip(t *testing.T) {
	c := NewMapCache()
	if _, ok := c.Get("x"); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Put("x", 0.25)
	v, ok := c.Get("x")
	if !ok || v != 0.25 {
		t.Errorf("Get(x) = (%v, %v), want (0.25, true)", v, ok)
	}
}

func TestSQLiteCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	c, err := OpenSQLiteCache(filepath.Join(dir, "cache.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteCache: %v", err)
	}
	defer c.Close()

	if _, ok := c.Get("k"); ok {
		t.Fatalf("expected miss on empty cache")
	}
	c.Put("k", 0.5)
	v, ok := c.Get("k")
	if !ok || v != 0.5 {
		t.Errorf("Get(k) = (%v, %v), want (0.5, true)", v, ok)
	}

	// Overwrite to exercise the upsert path.
	c.Put("k", 0.75)
	v, ok = c.Get("k")
	if !ok || v != 0.75 {
		t.Errorf("Get(k) after overwrite = (%v, %v), want (0.75, true)", v, ok)
	}
}

func TestMeasureShortCircuitsConstants(t *testing.T) {
	b := New(config.OutputSymbols, NewMapCache(), "unused-counter-not-invoked", t.TempDir())

	v, err := b.Measure("T")
	if err != nil {
		t.Fatalf("Measure(T): %v", err)
	}
	if v != 1 {
		t.Errorf("Measure(T) = %v, want 1", v)
	}

	v, err = b.Measure("F")
	if err != nil {
		t.Fatalf("Measure(F): %v", err)
	}
	if v != 0 {
		t.Errorf("Measure(F) = %v, want 0", v)
	}
}

func TestMeasureInvokesCounterAndCaches(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh available to stand in for the external counter")
	}

	dir := t.TempDir()
	// A "counter" that always reports exactly one of the four possible
	// assignments to a 2-variable formula as satisfying, i.e. measure
	// 1/4 regardless of which formula it's pointed at.
	script := filepath.Join(dir, "fake-counter.sh")
	contents := "#!/bin/sh\nprintf '# solutions\\n1\\n# END\\n'\n"
	if err := os.WriteFile(script, []byte(contents), 0o755); err != nil {
		t.Fatalf("writing fake counter: %v", err)
	}

	cache := NewMapCache()
	b := New(config.OutputSymbols, cache, script, dir)

	v, err := b.Measure("(p0&q0)")
	if err != nil {
		t.Fatalf("Measure: %v", err)
	}
	if v != 0.25 {
		t.Errorf("Measure((p0&q0)) = %v, want 0.25", v)
	}

	e, vt, err := propcnf.Parse("(p0&q0)", b.Symbols)
	if err != nil {
		t.Fatalf("propcnf.Parse: %v", err)
	}
	key := propcnf.ToCNF(e, vt).DIMACS()
	if cached, ok := cache.Get(key); !ok || cached != 0.25 {
		t.Errorf("expected the result to be memoized under the DIMACS key")
	}
}
