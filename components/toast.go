package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ToastData is a short status message that fades out.
type ToastData struct {
	Text  string
	Alpha float32
	Fade  *gween.Tween // nil when no message is showing
}

var Toast = donburi.NewComponentType[ToastData]()
