// Package config hosts the small set of process-wide constants used across
// the measurement engine and its collaborators: symbol-set spellings, the
// config file name, and environment variable names.
package config

// Version is the current measure tool version.
var Version = "0.1.0"

// SymbolSet bundles the five operator spellings a parser or unroller
// recognizes or emits, per spec §6.
type SymbolSet struct {
	True  string
	False string
	And   string
	Or    string
	Not   string
}

// InputSymbols is the symbol set accepted by the surface LTL parser (P1).
var InputSymbols = SymbolSet{
	True:  "true",
	False: "false",
	And:   "&",
	Or:    "|",
	Not:   "!",
}

// OutputSymbols is the symbol set the unroller (C5) emits and the
// propositional CNF converter (P2) consumes. Spec §9 notes these must
// stay in lockstep: change one only together with the other.
var OutputSymbols = SymbolSet{
	True:  "T",
	False: "F",
	And:   "&",
	Or:    "|",
	Not:   "!",
}

// ConfigFileName is the default config file name looked up under
// $XDG_CONFIG_HOME/measure (or $HOME/.config/measure on platforms
// without XDG_CONFIG_HOME set).
const ConfigFileName = "config.yaml"

// ConfigDirName is the directory under the user's config home.
const ConfigDirName = "measure"

// DefaultCounterName is the executable name looked up on PATH when no
// explicit counter path is configured.
const DefaultCounterName = "satcount"

// EnvCounterPath overrides the #SAT counter executable path.
const EnvCounterPath = "MEASURE_COUNTER_PATH"

// EnvNoColor disables ANSI coloring regardless of terminal detection,
// following the same convention as the NO_COLOR spec.
const EnvNoColor = "NO_COLOR"
