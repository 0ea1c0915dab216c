// File: services/availability/hourslice_test.go
package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHours(t *testing.T) {
	t.Run("Whole Hours From Requested Start", func(t *testing.T) {
		// 08:00 - 10:30 becomes 08:00-09:00, 09:00-10:00, 10:00-10:30.
		out := sliceHours(480, 630)

		assert.Equal(t, []hourSlice{
			{Start: 480, End: 540},
			{Start: 540, End: 600},
			{Start: 600, End: 630},
		}, out)
	})

	t.Run("Offset Start Keeps Hour Grain", func(t *testing.T) {
		// 08:30 - 10:00 slices from 08:30, not from the wall-clock hour.
		out := sliceHours(510, 600)

		assert.Equal(t, []hourSlice{
			{Start: 510, End: 570},
			{Start: 570, End: 600},
		}, out)
	})

	t.Run("Under One Hour Is A Single Segment", func(t *testing.T) {
		out := sliceHours(540, 570)

		assert.Equal(t, []hourSlice{{Start: 540, End: 570}}, out)
	})

	t.Run("Exact Hour Boundary", func(t *testing.T) {
		out := sliceHours(540, 660)

		assert.Len(t, out, 2)
		assert.Equal(t, 600, out[0].End)
		assert.Equal(t, 660, out[1].End)
	})

	t.Run("Segments Tile The Range", func(t *testing.T) {
		out := sliceHours(475, 923)

		assert.Equal(t, 475, out[0].Start)
		assert.Equal(t, 923, out[len(out)-1].End)
		for i := 1; i < len(out); i++ {
			assert.Equal(t, out[i-1].End, out[i].Start)
			assert.LessOrEqual(t, out[i].End-out[i].Start, 60)
		}
	})
}
