package assets

import (
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/render"
	"github.com/hajimehoshi/ebiten/v2"
)

// backgroundHeight is the gradient's resolution before it is stretched.
const backgroundHeight = 256

// LoadSheets builds the ebiten images the presenter draws from.
func LoadSheets() (map[render.Sheet]*ebiten.Image, *ebiten.Image) {
	sheets := map[render.Sheet]*ebiten.Image{
		render.SheetActor: ebiten.NewImageFromImage(ActorSheet(
			cfg.Sheet, cfg.Actor.FrameWidth, cfg.Actor.FrameHeight, cfg.Tuning.FramesPerCycle)),
		render.SheetTarget: ebiten.NewImageFromImage(TargetImage(cfg.Target.Size)),
	}
	background := ebiten.NewImageFromImage(BackgroundImage(1, backgroundHeight))
	return sheets, background
}
