package teleop

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAxisDegrees(t *testing.T) {
	testCases := []struct {
		val    int
		expect int
	}{
		{-32767, 0},
		{0, 179},
		{32767, 359},
		// int16 min and overshoot clamp
		{-32768, 0},
		{40000, 359},
	}
	for _, tc := range testCases {
		require.Equal(t, tc.expect, AxisDegrees(tc.val, 359), "val=%d", tc.val)
	}
}
