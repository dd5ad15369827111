package assets

import (
	"image"
	"image/color"
	"image/draw"

	cfg "github.com/automoto/alice/config"
)

// ActorSheet draws the actor's sheet: one row per cfg.Sheet row and
// framesPerCycle columns of frameWidth x frameHeight cells. Walking rows swing
// the legs across the cycle; idle rows stand still in every column.
func ActorSheet(layout cfg.SheetLayout, frameWidth, frameHeight, framesPerCycle int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, frameWidth*framesPerCycle, frameHeight*layout.Rows()))

	for _, f := range []cfg.Facing{cfg.North, cfg.West, cfg.South, cfg.East} {
		for col := 0; col < framesPerCycle; col++ {
			walk := cell(layout.WalkRow(f), col, frameWidth, frameHeight)
			drawFigure(img, walk, f, stride(col, framesPerCycle))

			idle := cell(layout.IdleRow(f), col, frameWidth, frameHeight)
			drawFigure(img, idle, f, 0)
		}
	}
	return img
}

func cell(row, col, w, h int) image.Rectangle {
	return image.Rect(col*w, row*h, (col+1)*w, (row+1)*h)
}

// stride maps a cycle column to a leg offset in pixels: out, back through
// zero, to the other side and home again.
func stride(col, frames int) int {
	if frames <= 1 {
		return 0
	}
	const reach = 3
	phase := col * 4 / frames
	step := (col * 4 % frames) * reach / frames
	switch phase {
	case 0:
		return step
	case 1:
		return reach - step
	case 2:
		return -step
	default:
		return -reach + step
	}
}

func drawFigure(img *image.RGBA, r image.Rectangle, f cfg.Facing, legSwing int) {
	w, h := r.Dx(), r.Dy()
	body := cfg.Actor.BodyColor
	outline := cfg.Actor.OutlineColor

	// head
	head := image.Rect(r.Min.X+w/2-5, r.Min.Y+2, r.Min.X+w/2+5, r.Min.Y+12)
	fillRect(img, head, body)
	strokeRect(img, head, outline)

	// torso
	torso := image.Rect(r.Min.X+w/2-7, r.Min.Y+12, r.Min.X+w/2+7, r.Min.Y+h-10)
	fillRect(img, torso, body)
	strokeRect(img, torso, outline)

	// legs
	legTop := torso.Max.Y
	left := image.Rect(r.Min.X+w/2-6+legSwing, legTop, r.Min.X+w/2-2+legSwing, r.Max.Y-1)
	right := image.Rect(r.Min.X+w/2+2-legSwing, legTop, r.Min.X+w/2+6-legSwing, r.Max.Y-1)
	fillRect(img, left, outline)
	fillRect(img, right, outline)

	// facing marker
	fillRect(img, marker(head, f), cfg.Actor.AccentColor)
}

// marker returns a small rectangle on the side of the head the figure faces.
func marker(head image.Rectangle, f cfg.Facing) image.Rectangle {
	cx := (head.Min.X + head.Max.X) / 2
	cy := (head.Min.Y + head.Max.Y) / 2
	switch f {
	case cfg.North:
		return image.Rect(cx-2, head.Min.Y, cx+2, head.Min.Y+2)
	case cfg.West:
		return image.Rect(head.Min.X, cy-1, head.Min.X+3, cy+2)
	case cfg.East:
		return image.Rect(head.Max.X-3, cy-1, head.Max.X, cy+2)
	default:
		return image.Rect(cx-3, cy, cx+3, cy+2)
	}
}

// TargetImage draws the target as a filled square with a ring inset.
func TargetImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, img.Bounds(), cfg.Target.Color)
	strokeRect(img, img.Bounds(), cfg.Target.RingColor)
	if size > 8 {
		strokeRect(img, img.Bounds().Inset(size/4), cfg.Target.RingColor)
	}
	return img
}

// BackgroundImage draws a vertical gradient between the backdrop colours.
// It is stretched over the whole surface when drawn.
func BackgroundImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	top, bottom := cfg.Background.TopColor, cfg.Background.BottomColor
	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		c := color.RGBA{
			R: lerp(top.R, bottom.R, t),
			G: lerp(top.G, bottom.G, t),
			B: lerp(top.B, bottom.B, t),
			A: 255,
		}
		draw.Draw(img, image.Rect(0, y, width, y+1), &image.Uniform{c}, image.Point{}, draw.Src)
	}
	return img
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
}

func fillRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	draw.Draw(img, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

func strokeRect(img *image.RGBA, r image.Rectangle, c color.RGBA) {
	if r.Empty() {
		return
	}
	for x := r.Min.X; x < r.Max.X; x++ {
		img.SetRGBA(x, r.Min.Y, c)
		img.SetRGBA(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.SetRGBA(r.Min.X, y, c)
		img.SetRGBA(r.Max.X-1, y, c)
	}
}
