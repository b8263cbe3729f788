package service

import (
	"image"
	"image/gif"
	"time"

	"github.com/nicky-ayoub/gifview/internal/anim"
	"golang.org/x/image/draw"
)

// composeGIF flattens the frames of g onto its logical screen, applying each
// frame's disposal method before the next one is drawn.
func composeGIF(g *gif.GIF) (*anim.Animation, error) {
	if len(g.Image) == 0 {
		return nil, ErrEmptyImage
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		for _, frame := range g.Image {
			screen = screen.Union(frame.Bounds())
		}
	}

	a := &anim.Animation{
		Frames:    make([]image.Image, 0, len(g.Image)),
		Delays:    make([]time.Duration, 0, len(g.Image)),
		LoopCount: g.LoopCount,
	}

	canvas := image.NewRGBA(screen)
	for i, frame := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}

		var previous *image.RGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		a.Frames = append(a.Frames, cloneRGBA(canvas))

		var delay time.Duration
		if i < len(g.Delay) {
			delay = time.Duration(g.Delay[i]) * 10 * time.Millisecond
		}
		a.Delays = append(a.Delays, delay)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}

	return a, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
