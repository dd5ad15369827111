package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

var ErrNoSurface = errors.New("presentation surface unavailable")

// EbitenPresenter keeps the latest request and replays it in ebiten's Draw.
type EbitenPresenter struct {
	Sheets     map[Sheet]*ebiten.Image
	Background *ebiten.Image
	Face       font.Face

	ClearColor color.RGBA
	AlphaMod   uint8

	current Request
	op      ebiten.DrawImageOptions
}

func NewEbitenPresenter(sheets map[Sheet]*ebiten.Image, background *ebiten.Image, face font.Face) *EbitenPresenter {
	return &EbitenPresenter{
		Sheets:     sheets,
		Background: background,
		Face:       face,
		AlphaMod:   255,
	}
}

// Present validates req against the loaded images and stores a copy for the
// next Draw.
func (p *EbitenPresenter) Present(req *Request) error {
	if req.Background && p.Background == nil {
		return fmt.Errorf("%w: background not loaded", ErrNoSurface)
	}
	for _, b := range req.Blits {
		if p.Sheets[b.Sheet] == nil {
			return fmt.Errorf("%w: sheet %d not loaded", ErrNoSurface, b.Sheet)
		}
	}
	if len(req.Texts) > 0 && p.Face == nil {
		return fmt.Errorf("%w: no font face", ErrNoSurface)
	}

	p.current.Reset()
	p.current.Frame = req.Frame
	p.current.Background = req.Background
	p.current.Blits = append(p.current.Blits, req.Blits...)
	SortBlits(p.current.Blits)
	p.current.Outlines = append(p.current.Outlines, req.Outlines...)
	p.current.Texts = append(p.current.Texts, req.Texts...)
	return nil
}

// Draw renders the stored request. Always clear the screen to prevent white
// flashes from the OS window background.
func (p *EbitenPresenter) Draw(screen *ebiten.Image) {
	screen.Fill(p.ClearColor)

	if p.current.Background && p.Background != nil {
		p.drawBackground(screen)
	}

	for _, b := range p.current.Blits {
		p.drawBlit(screen, b)
	}

	for _, o := range p.current.Outlines {
		r := o.Rect
		vector.StrokeRect(screen,
			float32(r.Min.X), float32(r.Min.Y),
			float32(r.Dx()), float32(r.Dy()),
			1, o.Color, false)
	}

	if p.Face != nil {
		ascent := p.Face.Metrics().Ascent.Ceil()
		for _, t := range p.current.Texts {
			text.Draw(screen, t.Value, p.Face, t.X, t.Y+ascent, t.Color)
		}
	}
}

func (p *EbitenPresenter) drawBackground(screen *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	bw, bh := p.Background.Bounds().Dx(), p.Background.Bounds().Dy()

	p.op = ebiten.DrawImageOptions{}
	p.op.GeoM.Scale(float64(sw)/float64(bw), float64(sh)/float64(bh))
	p.op.ColorScale.ScaleAlpha(float32(p.AlphaMod) / 255)
	screen.DrawImage(p.Background, &p.op)
}

func (p *EbitenPresenter) drawBlit(screen *ebiten.Image, b Blit) {
	sheet := p.Sheets[b.Sheet]
	if sheet == nil || b.Src.Empty() || b.Dst.Empty() {
		return
	}
	sub := sheet.SubImage(b.Src).(*ebiten.Image)

	p.op = ebiten.DrawImageOptions{}
	if b.Dst.Dx() != b.Src.Dx() || b.Dst.Dy() != b.Src.Dy() {
		p.op.GeoM.Scale(float64(b.Dst.Dx())/float64(b.Src.Dx()), float64(b.Dst.Dy())/float64(b.Src.Dy()))
	}
	p.op.GeoM.Translate(float64(b.Dst.Min.X), float64(b.Dst.Min.Y))
	screen.DrawImage(sub, &p.op)
}
