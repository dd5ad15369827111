package systems

import (
	"testing"

	"github.com/automoto/alice/components"
	cfg "github.com/automoto/alice/config"
)

func TestToastFadesOut(t *testing.T) {
	w := newTestWorld(t, 100, 100)
	ShowToast(w.ecs, "pad connected")

	toast := components.Toast.Get(w.session)
	if toast.Text != "pad connected" || toast.Alpha != 1 {
		t.Fatalf("toast = %+v", *toast)
	}

	UpdateToast(w.ecs)
	if toast.Alpha >= 1 || toast.Alpha <= 0 {
		t.Errorf("alpha after one step = %v, want between 0 and 1", toast.Alpha)
	}

	steps := int(float64(cfg.HUD.ToastDuration)*float64(cfg.Tuning.TargetRate)) + 2
	for i := 0; i < steps; i++ {
		UpdateToast(w.ecs)
	}
	if toast.Text != "" || toast.Fade != nil {
		t.Errorf("toast not cleared after %d steps: %+v", steps, *toast)
	}
}
