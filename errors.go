package g2p

import "fmt"

// ErrorKind classifies the structured errors the engine can return.
// Compile/config/IO errors surface at load or update time; the
// conversion hot path never produces an error (spec'd in §7 of the
// engine design: a rule that matches nothing leaves text unchanged).
type ErrorKind string

const (
	// KindConfig marks a malformed configuration file, unknown field,
	// invalid enum value, or conflicting flag combination.
	KindConfig ErrorKind = "config"
	// KindCompile marks a bad rule regex, unknown abbreviation, empty
	// rule input, or case settings incompatible with rule content.
	KindCompile ErrorKind = "compile"
	// KindNoPath marks an (in_lang, out_lang) pair with no connecting
	// path in the Network.
	KindNoPath ErrorKind = "no_path"
	// KindLookup marks an unknown notation identifier.
	KindLookup ErrorKind = "lookup"
	// KindIO marks a missing or unreadable rules/abbreviations file.
	KindIO ErrorKind = "io"
	// KindUsage marks a CLI invocation with the wrong number or shape of
	// arguments, as opposed to a malformed configuration file.
	KindUsage ErrorKind = "usage"
)

// EngineError is the structured error object returned by load, compile,
// and network-resolution paths. Location is a best-effort pointer to
// where the problem was found (a file path, a mapping's in_lang/out_lang
// pair, a rule's source index) and may be empty.
type EngineError struct {
	Kind     ErrorKind
	Message  string
	Location string
	Err      error
}

func (e *EngineError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, e.Location)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *EngineError) Unwrap() error { return e.Err }

// ConfigError reports a malformed configuration document.
func ConfigError(location, message string) *EngineError {
	return &EngineError{Kind: KindConfig, Message: message, Location: location}
}

// CompileError reports a rule that failed to compile.
func CompileError(location, message string) *EngineError {
	return &EngineError{Kind: KindCompile, Message: message, Location: location}
}

// NoPathError reports that two notations are not connected.
func NoPathError(inLang, outLang string) *EngineError {
	return &EngineError{
		Kind:     KindNoPath,
		Message:  "no path found",
		Location: fmt.Sprintf("%s -> %s", inLang, outLang),
	}
}

// LookupError reports an unknown notation identifier.
func LookupError(lang string) *EngineError {
	return &EngineError{Kind: KindLookup, Message: "unknown notation", Location: lang}
}

// IOErrorf reports a missing or unreadable source file.
func IOErrorf(location string, err error) *EngineError {
	return &EngineError{Kind: KindIO, Message: "i/o error", Location: location, Err: err}
}

// UsageError reports a CLI invocation with the wrong number or shape of
// positional arguments.
func UsageError(message string) *EngineError {
	return &EngineError{Kind: KindUsage, Message: message}
}
