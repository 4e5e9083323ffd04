package servo

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDutyForAngle(t *testing.T) {
	testCases := []struct {
		degrees int
		duty    int
	}{
		{0, 2100},
		{90, 3450},
		{180, 4800},
		{270, 6150},
		{359, 7485},
		{360, 7500},
		// unclamped: extrapolation is deliberate
		{540, 10200},
		{-60, 1200},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%d", tc.degrees), func(t *testing.T) {
			require.Equal(t, tc.duty, DutyForAngle(tc.degrees))
		})
	}
}

func TestDegreesForDuty(t *testing.T) {
	for _, degrees := range []int{0, 45, 90, 180, 270, 359, 360} {
		require.Equal(t, float64(degrees), DegreesForDuty(DutyForAngle(degrees)))
	}
}
