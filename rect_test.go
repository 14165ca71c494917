package imgstack

import "testing"

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			"overlapping",
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
			Rect{X: 5, Y: 5, Width: 10, Height: 10},
			Rect{X: 5, Y: 5, Width: 5, Height: 5},
		},
		{
			"contained",
			Rect{X: 0, Y: 0, Width: 100, Height: 100},
			Rect{X: 20, Y: 30, Width: 10, Height: 10},
			Rect{X: 20, Y: 30, Width: 10, Height: 10},
		},
		{
			"disjoint",
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
			Rect{X: 50, Y: 50, Width: 10, Height: 10},
			Rect{X: 50, Y: 50, Width: 0, Height: 0},
		},
		{
			"touching edges",
			Rect{X: 0, Y: 0, Width: 10, Height: 10},
			Rect{X: 10, Y: 0, Width: 10, Height: 10},
			Rect{X: 10, Y: 0, Width: 0, Height: 10},
		},
		{
			"identical",
			Rect{X: 3, Y: 4, Width: 5, Height: 6},
			Rect{X: 3, Y: 4, Width: 5, Height: 6},
			Rect{X: 3, Y: 4, Width: 5, Height: 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			if got != tt.want {
				t.Errorf("Intersect = %+v, want %+v", got, tt.want)
			}

			// Result must not depend on argument order.
			swapped := tt.b.Intersect(tt.a)
			if swapped != got {
				t.Errorf("Intersect not commutative: %+v vs %+v", got, swapped)
			}

			if got.Width < 0 || got.Height < 0 {
				t.Errorf("Intersect yielded negative size: %+v", got)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if (Rect{Width: 1, Height: 1}).Empty() {
		t.Error("1x1 rect reported empty")
	}
	if !(Rect{Width: 0, Height: 10}).Empty() {
		t.Error("zero-width rect not reported empty")
	}
	if !(Rect{Width: 10, Height: 0}).Empty() {
		t.Error("zero-height rect not reported empty")
	}
}
