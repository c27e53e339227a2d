package shape

import (
	"math"
	"testing"
)

func TestDistanceMeter(t *testing.T) {
	t.Run("zero level set is white", func(t *testing.T) {
		got := DistanceMeter(0, 200, 200)
		for i, v := range got.Raw {
			if !floatNear(v, 1, 1e-12) {
				t.Errorf("channel %d = %v, want 1", i, v)
			}
		}
	})

	t.Run("finite and bounded", func(t *testing.T) {
		scales := [][2]float64{{200, 200}, {50, 800}, {0, 0}, {-1, -1}}
		for _, sc := range scales {
			for i := -1000; i <= 1000; i += 7 {
				d := float64(i) / 3
				got := DistanceMeter(d, sc[0], sc[1])
				for _, v := range got.Raw {
					if math.IsNaN(v) || v < 0 || v > 1 {
						t.Fatalf("DistanceMeter(%v, %v, %v) = %v", d, sc[0], sc[1], got.Raw)
					}
				}
			}
		}
	})

	t.Run("fades with distance", func(t *testing.T) {
		// Whole band periods apart so only the fall-off differs.
		near := DistanceMeter(-10, 200, 200)
		far := DistanceMeter(-500, 200, 200)
		if far.Raw[2] >= near.Raw[2] {
			t.Errorf("far = %v, near = %v, want far darker", far.Raw, near.Raw)
		}
	})
}
