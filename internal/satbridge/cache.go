package satbridge

import (
	"database/sql"
	"sync"

	"github.com/ltlmeasure/measure/internal/measureerr"

	_ "modernc.org/sqlite" // registers the "sqlite" database/sql driver
)

// Cache is the memoization store C6 reads and writes, keyed by DIMACS
// textual identity (spec §4.6). Memoization "may be globally disabled"
// by passing a nil Cache to Bridge.
type Cache interface {
	Get(key string) (float64, bool)
	Put(key string, value float64)
}

// MapCache is the default, in-process cache: a mutex-guarded plain
// mapping, matching spec §4.6/§5's "plain mapping, single-writer"
// contract exactly.
type MapCache struct {
	mu sync.Mutex
	m  map[string]float64
}

// NewMapCache returns an empty in-memory cache.
func NewMapCache() *MapCache {
	return &MapCache{m: make(map[string]float64)}
}

func (c *MapCache) Get(key string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.m[key]
	return v, ok
}

func (c *MapCache) Put(key string, value float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.m[key] = value
}

// SQLiteCache persists memoized measures across CLI invocations in a
// single-table pure-Go SQLite database (modernc.org/sqlite, no cgo).
// Cache reads and writes are best-effort per spec §7: a storage failure
// here never aborts a measurement, it just forfeits the memoization.
type SQLiteCache struct {
	db *sql.DB
}

// OpenSQLiteCache opens (creating if necessary) a SQLite-backed cache at
// path.
func OpenSQLiteCache(path string) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, measureerr.Wrap(measureerr.IO, err, "opening cache database %s", path)
	}
	const ddl = `CREATE TABLE IF NOT EXISTS measure_cache (
		dimacs_key TEXT PRIMARY KEY,
		measure    REAL NOT NULL
	)`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, measureerr.Wrap(measureerr.IO, err, "initializing cache schema in %s", path)
	}
	return &SQLiteCache{db: db}, nil
}

func (c *SQLiteCache) Get(key string) (float64, bool) {
	var v float64
	err := c.db.QueryRow(`SELECT measure FROM measure_cache WHERE dimacs_key = ?`, key).Scan(&v)
	if err != nil {
		return 0, false
	}
	return v, true
}

func (c *SQLiteCache) Put(key string, value float64) {
	// Best-effort: a write failure here only costs a future cache miss.
	_, _ = c.db.Exec(`INSERT INTO measure_cache (dimacs_key, measure) VALUES (?, ?)
		ON CONFLICT(dimacs_key) DO UPDATE SET measure = excluded.measure`, key, value)
}

// Close releases the underlying database handle.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}
