package systems

import (
	"image"

	"github.com/automoto/alice/assets/animations"
	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
	"github.com/automoto/alice/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SelectFrame picks the sprite cell for the actor. Standing still shows the
// first column of the facing's idle row; walking cycles through the walk row,
// holding each column for the cycle's step. elapsedMs counts from the start
// of the current walk cycle.
//
// With both axes moving the row follows the facing alone, which is the last
// direction issued; there is no diagonal row.
func SelectFrame(facing cfg.Facing, vx, vy float64, elapsedMs int64, layout cfg.SheetLayout, cycle animations.Cycle) (row, col int) {
	if vx == 0 && vy == 0 {
		return layout.IdleRow(facing), 0
	}
	return layout.WalkRow(facing), cycle.Frame(elapsedMs)
}

// UpdateAnimation recomputes the actor's sprite cell from the session tick.
// Must run AFTER UpdateKinematics.
func UpdateAnimation(e *ecs.ECS) {
	sessionEntry, ok := tags.Session.First(e.World)
	if !ok {
		return
	}
	now := components.Session.Get(sessionEntry).TickMs
	cycle := animations.NewCycle(cfg.Tuning.FramesPerCycle, cfg.Tuning.AnimationStepMs)

	tags.Actor.Each(e.World, func(entry *donburi.Entry) {
		kin := components.Kinematic.Get(entry)
		anim := components.Animation.Get(entry)

		walking := kin.Moving()
		if walking && (!anim.Walking || anim.Restart) {
			anim.EpochMs = now
		}
		anim.Walking = walking
		anim.Restart = false

		anim.Row, anim.Column = SelectFrame(kin.Facing, kin.VelocityX, kin.VelocityY, now-anim.EpochMs, cfg.Sheet, cycle)
		anim.Src = SheetRect(anim.Row, anim.Column, cfg.Actor.FrameWidth, cfg.Actor.FrameHeight)
	})
}

// SheetRect returns the source rectangle of one cell in a uniform sheet.
func SheetRect(row, col, frameWidth, frameHeight int) image.Rectangle {
	x, y := col*frameWidth, row*frameHeight
	return image.Rect(x, y, x+frameWidth, y+frameHeight)
}
