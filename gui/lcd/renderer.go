package lcd

import "edgelcd/gui/fonts"

// Blinker supplies the blink phase. The renderer only samples it; the owner of
// the time source advances it.
type Blinker interface {
	BlinkOn() bool
}

// BlinkFunc adapts a function to Blinker.
type BlinkFunc func() bool

func (f BlinkFunc) BlinkOn() bool { return f() }

type steadyOn struct{}

func (steadyOn) BlinkOn() bool { return true }

// Renderer draws text, numbers and bitmaps onto a Surface.
type Renderer struct {
	s     *Surface
	faces fonts.Set
	blink Blinker
}

// NewRenderer returns a renderer for s using the default faces. A nil blinker
// keeps blinking content permanently visible.
func NewRenderer(s *Surface, blink Blinker) *Renderer {
	if blink == nil {
		blink = steadyOn{}
	}
	return &Renderer{s: s, faces: fonts.Default(), blink: blink}
}

func (r *Renderer) Surface() *Surface { return r.s }

// SetFaces replaces the face used for each size class.
func (r *Renderer) SetFaces(set fonts.Set) { r.faces = set }

// Face returns the face a style resolves to.
func (r *Renderer) Face(style Style) fonts.Face { return r.faces.Face(style.Class()) }

// BlinkOn reports the current phase of the injected blinker.
func (r *Renderer) BlinkOn() bool { return r.blink.BlinkOn() }

func (r *Renderer) visible(style Style) bool {
	return style&Blink == 0 || r.blink.BlinkOn()
}

// Clear clears the surface.
func (r *Renderer) Clear() { r.s.Clear() }
