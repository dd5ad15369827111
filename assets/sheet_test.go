package assets

import (
	"image"
	"testing"

	cfg "github.com/automoto/alice/config"
)

func TestActorSheetSize(t *testing.T) {
	img := ActorSheet(cfg.Sheet, 32, 36, 8)
	want := image.Rect(0, 0, 32*8, 36*cfg.Sheet.Rows())
	if img.Bounds() != want {
		t.Errorf("bounds = %v, want %v", img.Bounds(), want)
	}
}

func TestActorSheetCellsDrawn(t *testing.T) {
	img := ActorSheet(cfg.Sheet, 32, 36, 8)
	for row := 0; row < cfg.Sheet.Rows(); row++ {
		for col := 0; col < 8; col++ {
			// Centre of the torso is body coloured in every cell.
			c := img.RGBAAt(col*32+16, row*36+18)
			if c != cfg.Actor.BodyColor {
				t.Fatalf("cell (%d, %d) centre = %v, want body colour", row, col, c)
			}
		}
	}
}

func TestIdleColumnsIdentical(t *testing.T) {
	img := ActorSheet(cfg.Sheet, 32, 36, 8)
	row := cfg.Sheet.IdleRow(cfg.East)
	for col := 1; col < 8; col++ {
		for y := 0; y < 36; y++ {
			for x := 0; x < 32; x++ {
				a := img.RGBAAt(x, row*36+y)
				b := img.RGBAAt(col*32+x, row*36+y)
				if a != b {
					t.Fatalf("idle column %d differs at (%d, %d)", col, x, y)
				}
			}
		}
	}
}

func TestStrideStaysSmall(t *testing.T) {
	for frames := 1; frames <= 12; frames++ {
		for col := 0; col < frames; col++ {
			if s := stride(col, frames); s < -3 || s > 3 {
				t.Errorf("stride(%d, %d) = %d", col, frames, s)
			}
		}
	}
}

func TestBackgroundGradient(t *testing.T) {
	img := BackgroundImage(1, 256)
	if img.RGBAAt(0, 0) != cfg.Background.TopColor {
		t.Errorf("top = %v, want %v", img.RGBAAt(0, 0), cfg.Background.TopColor)
	}
	if img.RGBAAt(0, 255) != cfg.Background.BottomColor {
		t.Errorf("bottom = %v, want %v", img.RGBAAt(0, 255), cfg.Background.BottomColor)
	}
}

func TestTargetImage(t *testing.T) {
	img := TargetImage(32)
	if img.RGBAAt(0, 0) != cfg.Target.RingColor {
		t.Errorf("corner = %v, want ring", img.RGBAAt(0, 0))
	}
	if img.RGBAAt(16, 16) != cfg.Target.Color {
		t.Errorf("centre = %v, want fill", img.RGBAAt(16, 16))
	}
}
