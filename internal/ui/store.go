package ui

import (
	"image"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/nicky-ayoub/gifview/internal/anim"
	"github.com/sirupsen/logrus"
)

// Loader decodes the image at path. It is called from a background goroutine.
type Loader interface {
	Load(path string) (*anim.Animation, error)
}

// loadJob represents a request to decode an element's source.
type loadJob struct {
	id     string
	source string
}

// loadResult holds a decoded animation, ready to be turned into textures on
// the UI thread.
type loadResult struct {
	id     string
	source string
	anim   *anim.Animation
	err    error
}

// element is the state retained for one element ID across frames.
type element struct {
	source   string
	anim     *anim.Animation
	player   *anim.Player
	textures []*ebiten.Image
	err      error
	// pending is true while a load for source is queued or running.
	pending bool
	// retained is set by Sync when the element appears in the current tree.
	retained bool
}

// ElementStore keeps decoded images, playback position and textures for each
// element ID so that re-rendering an element every frame does not restart its
// animation or decode its file again.
//
// Sync, Update and Draw must be called from the UI thread.
type ElementStore struct {
	loader Loader
	log    logrus.FieldLogger

	elements map[string]*element
	jobs     chan loadJob
	results  chan loadResult

	// Textures released during a frame are deallocated at the start of the next
	// Update so they are never freed while Draw may still use them.
	toDeallocate []*ebiten.Image
}

// NewElementStore creates a store and starts its background loader.
func NewElementStore(loader Loader, log logrus.FieldLogger) *ElementStore {
	s := &ElementStore{
		loader:   loader,
		log:      log,
		elements: make(map[string]*element),
		jobs:     make(chan loadJob, 8),
		results:  make(chan loadResult, 8),
	}
	go s.worker()
	return s
}

// Close stops the background loader.
func (s *ElementStore) Close() {
	close(s.jobs)
}

// worker is a background goroutine that decodes queued sources.
func (s *ElementStore) worker() {
	for job := range s.jobs {
		a, err := s.loader.Load(job.source)
		s.results <- loadResult{id: job.id, source: job.source, anim: a, err: err}
	}
}

// Update releases textures dropped in the previous frame, applies finished
// loads and advances every animation by dt.
func (s *ElementStore) Update(dt time.Duration) {
	for _, img := range s.toDeallocate {
		img.Deallocate()
	}
	s.toDeallocate = s.toDeallocate[:0]

	processing := true
	for processing {
		select {
		case r := <-s.results:
			s.apply(r)
		default:
			processing = false
		}
	}

	for _, el := range s.elements {
		if el.player != nil {
			el.player.Advance(dt)
		}
	}
}

// apply stores a load result if it is still wanted.
func (s *ElementStore) apply(r loadResult) {
	el, ok := s.elements[r.id]
	if !ok || el.source != r.source {
		// Stale result for an element that was dropped or changed source.
		return
	}
	el.pending = false

	if r.err != nil {
		el.err = r.err
		s.log.WithError(r.err).WithField("path", r.source).Error("Failed to load image")
		return
	}

	el.anim = r.anim
	el.player = anim.NewPlayer(r.anim)
	el.textures = make([]*ebiten.Image, len(r.anim.Frames))
	s.log.WithFields(logrus.Fields{
		"path":   r.source,
		"frames": len(r.anim.Frames),
		"size":   r.anim.Bounds().Size(),
	}).Debug("Image loaded")
}

// Sync reconciles the store with the tree about to be drawn: new elements and
// elements whose source changed are (re)loaded, elements missing from the tree
// are released.
func (s *ElementStore) Sync(c *Container) {
	for _, el := range s.elements {
		el.retained = false
	}

	if c != nil && c.Child != nil {
		s.retain(c.Child)
	}

	for id, el := range s.elements {
		if !el.retained {
			s.release(el)
			delete(s.elements, id)
		}
	}
}

func (s *ElementStore) retain(e *ImageElement) {
	el, ok := s.elements[e.ID]
	if ok && el.source != e.Source {
		s.release(el)
		ok = false
	}
	if !ok {
		el = &element{source: e.Source}
		s.elements[e.ID] = el
	}
	el.retained = true

	if el.anim == nil && el.err == nil && !el.pending {
		select {
		case s.jobs <- loadJob{id: e.ID, source: e.Source}:
			el.pending = true
		default:
			// Queue is full, try again on the next frame.
		}
	}
}

func (s *ElementStore) release(el *element) {
	for _, tex := range el.textures {
		if tex != nil {
			s.toDeallocate = append(s.toDeallocate, tex)
		}
	}
	el.textures = nil
}

// Loaded reports whether the element's image has been decoded.
func (s *ElementStore) Loaded(id string) bool {
	el, ok := s.elements[id]
	return ok && el.anim != nil
}

// Err returns the load error of the element, if any.
func (s *ElementStore) Err(id string) error {
	if el, ok := s.elements[id]; ok {
		return el.err
	}
	return nil
}

// Frame returns the index of the frame the element is showing, or -1 when
// nothing is loaded.
func (s *ElementStore) Frame(id string) int {
	el, ok := s.elements[id]
	if !ok || el.player == nil {
		return -1
	}
	return el.player.Frame()
}

// ImageSize returns the intrinsic size of the element's image.
func (s *ElementStore) ImageSize(id string) (image.Point, bool) {
	el, ok := s.elements[id]
	if !ok || el.anim == nil {
		return image.Point{}, false
	}
	return el.anim.Bounds().Size(), true
}

// Draw renders the container's image element onto dst. Nothing is drawn for
// an element that is still loading or failed to load.
func (s *ElementStore) Draw(dst *ebiten.Image, c *Container) {
	if c == nil || c.Child == nil {
		return
	}
	e := c.Child
	el, ok := s.elements[e.ID]
	if !ok || el.anim == nil || el.source != e.Source {
		return
	}

	i := el.player.Frame()
	tex := el.textures[i]
	if tex == nil {
		// Textures are created lazily so a large animation does not stall the
		// frame it finishes loading in.
		tex = ebiten.NewImageFromImage(el.anim.Frames[i])
		el.textures[i] = tex
	}

	size := el.anim.Bounds().Size()
	box := e.Box
	box.Left += float64(c.Bounds.Min.X)
	box.Top += float64(c.Bounds.Min.Y)
	dest := e.Fit.Place(box, size.X, size.Y)
	if dest.Width <= 0 || dest.Height <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dest.Width/float64(size.X), dest.Height/float64(size.Y))
	op.GeoM.Translate(dest.Left, dest.Top)
	op.Filter = ebiten.FilterLinear

	dst.DrawImage(tex, op)
}
