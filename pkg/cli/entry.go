// Package cli implements the measure command (P7): argument parsing,
// config loading, cache backend selection, and the parse → simplify →
// analyze → measure pipeline that the command line drives.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ltlmeasure/measure/internal/analyze"
	"github.com/ltlmeasure/measure/internal/config"
	"github.com/ltlmeasure/measure/internal/ltlast"
	"github.com/ltlmeasure/measure/internal/ltlparse"
	"github.com/ltlmeasure/measure/internal/measureerr"
	"github.com/ltlmeasure/measure/internal/measuring"
	"github.com/ltlmeasure/measure/internal/satbridge"
	"github.com/ltlmeasure/measure/internal/simplify"
)

const usageText = `usage: measure [-d] [-cache-db path] [-no-cache] [-config path] [-no-color] [-counter path] N EXPR1 [EXPR2]

  -d            disable the disjoint/time-independent bypass
  -cache-db     use a persistent SQLite cache at this path instead of memory
  -no-cache     disable #SAT memoization entirely
  -config       explicit config file path (default: $XDG_CONFIG_HOME/measure/config.yaml)
  -no-color     force-disable ANSI coloring
  -counter      path to the external #SAT counter binary (default: satcount on PATH)
`

type options struct {
	bypassOff   bool
	cacheDB     string
	noCache     bool
	configPath  string
	noColor     bool
	counterPath string
	horizon     int
	expr1       string
	expr2       string
	hasExpr2    bool
}

// Run executes one invocation of the measure command and returns the
// process exit code. colorCapable reflects whether stdout is a terminal
// that can render ANSI escapes (spec §4.13: auto-detected by the caller
// via github.com/mattn/go-isatty, overridable with -no-color).
func Run(args []string, stdout, stderr io.Writer, colorCapable bool) int {
	opts, perr := parseArgs(args)
	if perr != nil {
		fmt.Fprint(stdout, usageText)
		return 1
	}

	color := colorCapable && !opts.noColor
	if _, noColorEnv := os.LookupEnv(config.EnvNoColor); noColorEnv {
		color = false
	}

	cfgPath := opts.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	var cfgFile config.File
	if cfgPath != "" {
		f, err := config.Load(cfgPath)
		if err != nil {
			return reportError(stderr, err, color)
		}
		cfgFile = f
	}

	counterPath := firstNonEmpty(opts.counterPath, cfgFile.CounterPath)
	if counterPath == "" {
		if env := os.Getenv(config.EnvCounterPath); env != "" {
			counterPath = env
		}
	}

	cache, closeCache, err := buildCache(opts, cfgFile)
	if err != nil {
		return reportError(stderr, err, color)
	}
	if closeCache != nil {
		defer closeCache()
	}

	bridge := satbridge.New(config.OutputSymbols, cache, counterPath, "")
	ctx := measuring.NewContext(opts.horizon, !opts.bypassOff, bridge)

	phi, perr := ltlparse.Parse(opts.expr1)
	if perr != nil {
		return reportParseOrFatal(stdout, stderr, perr, color)
	}

	var root ltlast.Node
	var label string
	if opts.hasExpr2 {
		psi, perr := ltlparse.Parse(opts.expr2)
		if perr != nil {
			return reportParseOrFatal(stdout, stderr, perr, color)
		}
		root = measuring.SymmetricDifference(phi, psi)
		label = "Distance"
	} else {
		root = phi
	}

	result, err := evaluate(ctx, opts.horizon, root)
	if err != nil {
		return reportParseOrFatal(stdout, stderr, err, color)
	}

	printResult(stdout, label, measuring.Clamp(result), color)
	return 0
}

// evaluate runs the simplify → analyze → measure pipeline on root at time
// 0, the entry point every top-level CLI formula is measured from.
func evaluate(ctx *measuring.Context, horizon int, root ltlast.Node) (float64, error) {
	simplified := simplify.Simplify(root)
	ann, err := analyze.Analyze(horizon, simplified)
	if err != nil {
		return 0, err
	}
	return measuring.Measure(ctx, ann, simplified, 0)
}

func parseArgs(args []string) (options, error) {
	var opts options
	var positional []string

	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-d":
			opts.bypassOff = true
		case "-no-cache":
			opts.noCache = true
		case "-no-color":
			opts.noColor = true
		case "-cache-db":
			v, err := nextValue(args, &i)
			if err != nil {
				return options{}, err
			}
			opts.cacheDB = v
		case "-config":
			v, err := nextValue(args, &i)
			if err != nil {
				return options{}, err
			}
			opts.configPath = v
		case "-counter":
			v, err := nextValue(args, &i)
			if err != nil {
				return options{}, err
			}
			opts.counterPath = v
		default:
			positional = append(positional, arg)
		}
	}

	if len(positional) < 2 || len(positional) > 3 {
		return options{}, fmt.Errorf("expected N EXPR1 [EXPR2], got %d positional argument(s)", len(positional))
	}

	horizon, err := strconv.Atoi(positional[0])
	if err != nil || horizon < 0 {
		return options{}, fmt.Errorf("N must be a non-negative integer, got %q", positional[0])
	}
	opts.horizon = horizon
	opts.expr1 = positional[1]
	if len(positional) == 3 {
		opts.expr2 = positional[2]
		opts.hasExpr2 = true
	}

	return opts, nil
}

func nextValue(args []string, i *int) (string, error) {
	if *i+1 >= len(args) {
		return "", fmt.Errorf("%s requires a value", args[*i])
	}
	*i++
	return args[*i], nil
}

func buildCache(opts options, cfgFile config.File) (satbridge.Cache, func(), error) {
	if opts.noCache {
		return nil, nil, nil
	}

	backend := cfgFile.CacheBackend
	dbPath := firstNonEmpty(opts.cacheDB, cfgFile.CachePath)
	if opts.cacheDB != "" {
		backend = "sqlite"
	}

	if backend == "sqlite" && dbPath != "" {
		c, err := satbridge.OpenSQLiteCache(dbPath)
		if err != nil {
			return nil, nil, err
		}
		return c, func() { _ = c.Close() }, nil
	}

	return satbridge.NewMapCache(), nil, nil
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func reportParseOrFatal(stdout, stderr io.Writer, err error, color bool) int {
	if me, ok := measureerr.As(err); ok && !me.Kind.Fatal() {
		fmt.Fprint(stdout, usageText)
		return 1
	}
	return reportError(stderr, err, color)
}

func reportError(stderr io.Writer, err error, color bool) int {
	if color {
		fmt.Fprintf(stderr, "\x1b[31m%s\x1b[0m\n", err.Error())
	} else {
		fmt.Fprintln(stderr, err.Error())
	}
	return 1
}

func printResult(stdout io.Writer, label string, value float64, color bool) {
	if label == "" {
		fmt.Fprintf(stdout, "%v\n", value)
		return
	}
	if color {
		fmt.Fprintf(stdout, "\x1b[1m%s\x1b[0m %v\n", label, value)
		return
	}
	fmt.Fprintf(stdout, "%s %v\n", label, value)
}
