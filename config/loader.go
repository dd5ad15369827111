package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File is the on-disk overlay. Only keys present in the file replace the
// compiled-in defaults.
type File struct {
	Tuning *TuningConfig `yaml:"tuning"`
	Input  *struct {
		DeadZone       *int32 `yaml:"deadZone"`
		AxisExtreme    *int32 `yaml:"axisExtreme"`
		ReleaseOnKeyUp *bool  `yaml:"releaseOnKeyUp"`
	} `yaml:"input"`
	Target *struct {
		Size   *int `yaml:"size"`
		Margin *int `yaml:"margin"`
	} `yaml:"target"`
	Debug *struct {
		Enabled *bool `yaml:"enabled"`
		ShowFPS *bool `yaml:"showFPS"`
	} `yaml:"debug"`
}

// LoadFile applies a YAML overlay to the global configuration.
// Search order: customPath -> ~/.alice/config.yaml -> ./configs/alice.yaml.
// It returns the path that was applied, or "" when no file was found.
// A custom path that cannot be read is an error; the fallbacks are optional.
func LoadFile(customPath string) (string, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return customPath, Apply(data)
	}

	for _, path := range searchPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := Apply(data); err != nil {
			return "", fmt.Errorf("failed to parse config %s: %w", path, err)
		}
		return path, nil
	}
	return "", nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".alice", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", "alice.yaml"))
}

// Apply decodes a YAML overlay and merges it into the globals.
// Nothing is changed when decoding or validation fails.
func Apply(data []byte) error {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}

	prevTuning, prevInput, prevTarget, prevDebug := Tuning, Input, Target, Debug

	if f.Tuning != nil {
		mergeTuning(f.Tuning)
	}
	if in := f.Input; in != nil {
		if in.DeadZone != nil {
			Input.DeadZone = *in.DeadZone
		}
		if in.AxisExtreme != nil {
			Input.AxisExtreme = *in.AxisExtreme
		}
		if in.ReleaseOnKeyUp != nil {
			Input.ReleaseOnKeyUp = *in.ReleaseOnKeyUp
		}
	}
	if t := f.Target; t != nil {
		if t.Size != nil {
			Target.Size = *t.Size
		}
		if t.Margin != nil {
			Target.Margin = *t.Margin
		}
	}
	if d := f.Debug; d != nil {
		if d.Enabled != nil {
			Debug.Enabled = *d.Enabled
		}
		if d.ShowFPS != nil {
			Debug.ShowFPS = *d.ShowFPS
		}
	}

	if err := Validate(); err != nil {
		Tuning, Input, Target, Debug = prevTuning, prevInput, prevTarget, prevDebug
		return err
	}
	return nil
}

// mergeTuning copies the non-zero fields of t into Tuning.
func mergeTuning(t *TuningConfig) {
	if t.TargetRate != 0 {
		Tuning.TargetRate = t.TargetRate
	}
	if t.MovementSpeed != 0 {
		Tuning.MovementSpeed = t.MovementSpeed
	}
	if t.AnimationStepMs != 0 {
		Tuning.AnimationStepMs = t.AnimationStepMs
	}
	if t.FramesPerCycle != 0 {
		Tuning.FramesPerCycle = t.FramesPerCycle
	}
}
