package config

import "testing"

func TestParseDimensions(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		fullscreen bool
		want       Surface
	}{
		{"no args", nil, false, Surface{960, 540}},
		{"no args fullscreen", nil, true, Surface{1920, 1080}},
		{"both given", []string{"1280", "720"}, false, Surface{1280, 720}},
		{"width only", []string{"800"}, false, Surface{800, 540}},
		{"garbage width", []string{"wide", "600"}, false, Surface{960, 600}},
		{"negative height", []string{"800", "-1"}, false, Surface{800, 540}},
		{"zero width", []string{"0", "600"}, true, Surface{1920, 600}},
		{"too large", []string{"99999999999", "480"}, false, Surface{960, 480}},
		{"extra args ignored", []string{"640", "480", "320"}, false, Surface{640, 480}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseDimensions(tt.args, tt.fullscreen)
			if got != tt.want {
				t.Errorf("ParseDimensions(%v, %v) = %+v, want %+v", tt.args, tt.fullscreen, got, tt.want)
			}
		})
	}
}

func TestSurfaceCenter(t *testing.T) {
	x, y := Surface{Width: 960, Height: 540}.Center()
	if x != 480 || y != 270 {
		t.Errorf("Center() = (%v, %v), want (480, 270)", x, y)
	}
}
