package ui

import "github.com/nicky-ayoub/gifview/internal/viewer"

// ObjectFit controls how an image is placed inside its box.
type ObjectFit int

const (
	// FitContain scales the image to fit inside the box preserving its aspect
	// ratio and centers it. The rest of the box stays transparent.
	FitContain ObjectFit = iota
	// FitFill stretches the image to the box.
	FitFill
)

// Place returns the rectangle the image occupies inside box.
func (f ObjectFit) Place(box viewer.Box, imgW, imgH int) viewer.Box {
	if f == FitFill {
		return box
	}
	return Contain(box, imgW, imgH)
}

// Contain scales an imgW x imgH image to fit inside box, preserving aspect
// ratio, and centers it. An empty image yields an empty box at the center.
func Contain(box viewer.Box, imgW, imgH int) viewer.Box {
	c := box.Center()
	if imgW <= 0 || imgH <= 0 {
		return viewer.Box{Left: c.X, Top: c.Y}
	}

	scale := box.Width / float64(imgW)
	if hScale := box.Height / float64(imgH); hScale < scale {
		scale = hScale
	}

	w, h := float64(imgW)*scale, float64(imgH)*scale
	return viewer.Box{
		Left:   c.X - w/2,
		Top:    c.Y - h/2,
		Width:  w,
		Height: h,
	}
}
