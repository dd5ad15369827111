// Package render defines the per-frame draw request handed from the
// simulation to the presentation layer.
package render

import (
	"cmp"
	"image"
	"image/color"
	"slices"
)

// Layer orders blits within a request. Lower layers draw first.
type Layer int

const (
	LayerTarget Layer = iota
	LayerActor
)

// Sheet names the image a blit reads from.
type Sheet int

const (
	SheetActor Sheet = iota
	SheetTarget
)

// Blit copies Src from Sheet to Dst on screen.
type Blit struct {
	Sheet Sheet
	Layer Layer
	Src   image.Rectangle
	Dst   image.Rectangle
}

// Outline is a rectangle drawn as a one pixel frame.
type Outline struct {
	Rect  image.Rectangle
	Color color.RGBA
}

// Text is one HUD line anchored at its top-left corner.
type Text struct {
	X, Y  int
	Value string
	Color color.RGBA
}

// Request is a read-only snapshot of everything to draw for one frame.
type Request struct {
	Frame      uint64
	Background bool
	Blits      []Blit // drawn by Layer, then in slice order
	Outlines   []Outline
	Texts      []Text
}

// SortBlits orders blits by Layer, keeping the given order within a layer.
func SortBlits(blits []Blit) {
	slices.SortStableFunc(blits, func(a, b Blit) int {
		return cmp.Compare(a.Layer, b.Layer)
	})
}

// Reset clears r for reuse without releasing its slices.
func (r *Request) Reset() {
	r.Frame = 0
	r.Background = false
	r.Blits = r.Blits[:0]
	r.Outlines = r.Outlines[:0]
	r.Texts = r.Texts[:0]
}

// Clone returns a deep copy of r.
func (r *Request) Clone() Request {
	c := *r
	c.Blits = append([]Blit(nil), r.Blits...)
	c.Outlines = append([]Outline(nil), r.Outlines...)
	c.Texts = append([]Text(nil), r.Texts...)
	return c
}

// Presenter accepts one request per frame. An error means the presentation
// surface is unusable and ends the session.
type Presenter interface {
	Present(req *Request) error
}

// Recorder is a Presenter that keeps copies of what it was given.
type Recorder struct {
	Requests []Request
	Limit    int   // keep at most this many recent requests; 0 keeps all
	Err      error // returned from every Present when set
}

func (r *Recorder) Present(req *Request) error {
	if r.Err != nil {
		return r.Err
	}
	r.Requests = append(r.Requests, req.Clone())
	if r.Limit > 0 && len(r.Requests) > r.Limit {
		r.Requests = r.Requests[len(r.Requests)-r.Limit:]
	}
	return nil
}

// Last returns the most recent request, if any.
func (r *Recorder) Last() (Request, bool) {
	if len(r.Requests) == 0 {
		return Request{}, false
	}
	return r.Requests[len(r.Requests)-1], true
}
