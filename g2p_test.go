package g2p

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackageLevelConvenienceAPI(t *testing.T) {
	// isolate from any other test's use of DefaultNetwork
	old := DefaultNetwork
	DefaultNetwork = NewNetwork()
	defer func() { DefaultNetwork = old }()

	m := newTestMapping(t, Config{InLang: "a", OutLang: "b", CaseSensitive: true}, []Rule{{Input: "x", Output: "y"}})
	AddMapping(m)

	path, err := FindPath("a", "b")
	require.NoError(t, err)
	require.Len(t, path, 1)

	desc, err := Descendants("a")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, desc)

	result, err := Convert(context.Background(), "x", "a", "b")
	require.NoError(t, err)
	require.Equal(t, "y", result.Output)

	tokens := Tokenize("x y", "a")
	require.Greater(t, len(tokens), 1)
}
