package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"maps"
	"path/filepath"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/nicky-ayoub/gifview/internal/config"
	"github.com/nicky-ayoub/gifview/internal/service"
	"github.com/nicky-ayoub/gifview/internal/ui"
	"github.com/nicky-ayoub/gifview/internal/viewer"
	"github.com/sirupsen/logrus"
)

type Game struct {
	viewer *viewer.Viewer
	poller ui.Poller
	// tree is the element tree emitted for the frame on screen; input is
	// dispatched to it before the next one is rendered.
	tree  *ui.Container
	store *ui.ElementStore

	ImageService *service.ImageService
	info         *service.ImageInfo

	bounds     image.Rectangle
	background color.Color
	debug      bool
}

func (g *Game) Update() error {
	// 1. Poll input and deliver it to the handlers registered by the last render.
	events := g.poller.Events(ui.PollInput())
	if g.tree != nil {
		g.tree.Dispatch(events)
	}

	// 2. Apply finished loads and advance the animation.
	g.store.Update(time.Second / time.Duration(ebiten.TPS()))

	// 3. Re-emit the tree from the current state.
	g.tree = ui.Render(g.viewer, g.bounds)
	g.store.Sync(g.tree)

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.store.Draw(screen, g.tree)

	if g.debug {
		g.drawDebug(screen)
	}
}

// drawDebug outlines the image box and prints the viewer state.
func (g *Game) drawDebug(screen *ebiten.Image) {
	box := g.viewer.Box()
	vector.StrokeRect(screen, float32(box.Left), float32(box.Top), float32(box.Width), float32(box.Height),
		1, color.RGBA{R: 0xff, G: 0xff, A: 0xff}, false)

	state := "Idle"
	if g.viewer.IsMoving() {
		state = "Dragging"
	}
	msg := fmt.Sprintf("Path: %s\nBox: l=%.1f t=%.1f w=%.1f h=%.1f\nState: %s\nFrame: %d",
		g.viewer.Source(), box.Left, box.Top, box.Width, box.Height, state, g.store.Frame(ui.ImageID))
	if g.info != nil {
		msg += fmt.Sprintf("\nImage: %dx%d %s, %d bytes", g.info.Width, g.info.Height, g.info.Format, g.info.Size)
		for _, k := range slices.Sorted(maps.Keys(g.info.EXIFData)) {
			msg += fmt.Sprintf("\n%s: %s", k, g.info.EXIFData[k])
		}
	}
	if err := g.store.Err(ui.ImageID); err != nil {
		msg += fmt.Sprintf("\nError: %v", err)
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	// A 1:1 logical screen keeps pointer positions and the image box in the same
	// window pixel units.
	g.bounds = image.Rect(0, 0, outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// windowTitle names the window after the image and its intrinsic size.
func windowTitle(path string, info *service.ImageInfo) string {
	name := filepath.Base(path)
	if info == nil {
		return "gifview - " + name
	}
	return fmt.Sprintf("gifview - %s (%dx%d)", name, info.Width, info.Height)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to read configuration: %v", err)
	}
	log := cfg.NewLogger()

	path, err := service.NewLocator(service.DefaultImageName).Locate()
	var notFound *service.NotFoundError
	switch {
	case errors.As(err, &notFound):
		log.WithField("path", notFound.Path).Error("Image file not found")
		log.Errorf("Make sure you're running gifview from the directory that contains %s", service.DefaultImageName)
		return
	case err != nil:
		log.WithError(err).Fatal("Failed to locate image")
	}

	images := service.NewImageService()
	info, err := images.GetImageInfo(path)
	if err != nil {
		// The element store decodes the image on its own and reports its failure.
		log.WithError(err).WithField("path", path).Warn("Failed to read image info")
	}

	game := &Game{
		viewer:       viewer.New(path, viewer.WithResetOnFocusLoss(cfg.ResetDragOnBlur)),
		store:        ui.NewElementStore(images, log),
		ImageService: images,
		info:         info,
		background:   cfg.Background,
		debug:        cfg.Debug,
	}
	defer game.store.Close()

	ebiten.SetWindowTitle(windowTitle(path, info))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGameWithOptions(game, &ebiten.RunGameOptions{InitUnfocused: false}); err != nil {
		log.WithError(err).Fatal("Failed to run window")
	}
}
