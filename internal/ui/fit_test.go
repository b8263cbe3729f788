package ui

import (
	"math"
	"testing"

	"github.com/nicky-ayoub/gifview/internal/viewer"
)

func sameBox(a, b viewer.Box) bool {
	const eps = 1e-9
	return math.Abs(a.Left-b.Left) < eps && math.Abs(a.Top-b.Top) < eps &&
		math.Abs(a.Width-b.Width) < eps && math.Abs(a.Height-b.Height) < eps
}

func TestContain(t *testing.T) {
	tests := []struct {
		name       string
		box        viewer.Box
		imgW, imgH int
		want       viewer.Box
	}{
		{
			name: "wide image letterboxed vertically",
			box:  viewer.Box{Width: 256, Height: 256},
			imgW: 400, imgH: 200,
			want: viewer.Box{Left: 0, Top: 64, Width: 256, Height: 128},
		},
		{
			name: "tall image letterboxed horizontally",
			box:  viewer.Box{Left: 10, Top: 20, Width: 100, Height: 200},
			imgW: 50, imgH: 200,
			want: viewer.Box{Left: 35, Top: 20, Width: 50, Height: 200},
		},
		{
			name: "same aspect fills",
			box:  viewer.Box{Left: -5, Top: -5, Width: 300, Height: 150},
			imgW: 2, imgH: 1,
			want: viewer.Box{Left: -5, Top: -5, Width: 300, Height: 150},
		},
		{
			name: "empty image",
			box:  viewer.Box{Width: 100, Height: 100},
			imgW: 0, imgH: 10,
			want: viewer.Box{Left: 50, Top: 50},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Contain(tt.box, tt.imgW, tt.imgH)
			if !sameBox(got, tt.want) {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestFillPlacesBox(t *testing.T) {
	box := viewer.Box{Left: 1, Top: 2, Width: 30, Height: 40}
	if got := FitFill.Place(box, 500, 1); got != box {
		t.Errorf("fill should use the whole box, got %+v", got)
	}
	if got := FitContain.Place(box, 30, 40); !sameBox(got, box) {
		t.Errorf("contain of a matching image should use the whole box, got %+v", got)
	}
}
