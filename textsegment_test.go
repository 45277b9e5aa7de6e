package g2p

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentCodepointMode(t *testing.T) {
	segs := segment("abc", false)
	require.Equal(t, []string{"a", "b", "c"}, segs)
}

func TestSegmentGraphemeModeKeepsCombiningMarkAttached(t *testing.T) {
	// "e" + combining acute accent is one extended grapheme cluster.
	s := "ébc"
	segs := segment(s, true)
	require.Equal(t, []string{"é", "b", "c"}, segs)
}

func TestSegmentEmptyString(t *testing.T) {
	require.Nil(t, segment("", false))
	require.Nil(t, segment("", true))
}

func TestJoinSegmentsRoundTrips(t *testing.T) {
	s := "ébc"
	segs := segment(s, true)
	require.Equal(t, s, joinSegments(segs))
}
