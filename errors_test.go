package g2p

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineErrorMessageIncludesLocation(t *testing.T) {
	err := ConfigError("dan->eng", "bad field")
	require.Equal(t, "config: bad field (dan->eng)", err.Error())
}

func TestEngineErrorMessageWithoutLocation(t *testing.T) {
	err := &EngineError{Kind: KindCompile, Message: "oops"}
	require.Equal(t, "compile: oops", err.Error())
}

func TestIOErrorfUnwrapsUnderlyingError(t *testing.T) {
	underlying := errors.New("file not found")
	err := IOErrorf("rules.csv", underlying)
	require.ErrorIs(t, err, underlying)
}

func TestNoPathAndLookupErrorKinds(t *testing.T) {
	require.Equal(t, KindNoPath, NoPathError("a", "b").Kind)
	require.Equal(t, KindLookup, LookupError("a").Kind)
}
