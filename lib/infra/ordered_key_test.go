package infra

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func threeWay[K OrderedKey](i, j K) int64 {
	if i == j {
		return 0
	} else if i < j {
		return -1
	}
	return 1
}

func TestOrderedKeyComparator(t *testing.T) {
	var intCmp OrderedKeyComparator[int64] = threeWay[int64]
	require.Equal(t, int64(0), intCmp(7, 7))
	require.Equal(t, int64(-1), intCmp(3, 7))
	require.Equal(t, int64(1), intCmp(7, 3))

	var strCmp OrderedKeyComparator[string] = threeWay[string]
	require.Equal(t, int64(0), strCmp("fig", "fig"))
	require.Equal(t, int64(-1), strCmp("apple", "fig"))
	require.Equal(t, int64(1), strCmp("plum", "fig"))

	var floatCmp OrderedKeyComparator[float64] = threeWay[float64]
	require.Equal(t, int64(-1), floatCmp(1.5, 2.5))
}
