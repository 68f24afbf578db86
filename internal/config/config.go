// Package config loads gear calculation jobs from YAML (or JSON) files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/soypat/gear"
	"github.com/soypat/gear/outline"
	"github.com/soypat/gear/render"
	"gopkg.in/yaml.v3"
)

// Job is a gear to calculate and how to render it.
type Job struct {
	Kind   gear.Kind
	Inputs gear.Inputs
	// DisplayUnit is the unit outputs are reported and drawn in.
	DisplayUnit gear.Unit
	Render      Render

	// displaySet is true when DisplayUnit was chosen explicitly rather
	// than following the input unit.
	displaySet bool
}

// Render holds outline rendering settings.
type Render struct {
	// Output is the file to write. Its extension selects the format.
	// Empty means no drawing is produced.
	Output      string `yaml:"output"`
	Size        int    `yaml:"size"`
	Supersample int    `yaml:"supersample"`
	// Profile overrides the tooth profile chosen for the gear type.
	Profile     string `yaml:"profile"`
	PitchCircle bool   `yaml:"pitchCircle"`
	Caption     bool   `yaml:"caption"`
}

type jobFile struct {
	Type        string    `yaml:"type"`
	DisplayUnit string    `yaml:"displayUnit"`
	Inputs      yaml.Node `yaml:"inputs"`
	Render      Render    `yaml:"render"`
}

// Default returns the job for kind k using the calculator defaults.
func Default(k gear.Kind) Job {
	in := gear.Lookup(k).Calculator.Defaults()
	return Job{Kind: k, Inputs: in, DisplayUnit: in.Unit}
}

// Load reads a job file.
func Load(path string) (Job, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Job{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	job, err := Parse(data)
	if err != nil {
		return Job{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if job.Render.Output != "" && !filepath.IsAbs(job.Render.Output) {
		job.Render.Output = filepath.Join(filepath.Dir(path), job.Render.Output)
	}
	return job, nil
}

// Parse decodes a job. Inputs missing from the document keep the
// calculator defaults of the job's gear type (spur when unspecified).
func Parse(data []byte) (Job, error) {
	var raw jobFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return Job{}, errors.New("empty document")
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Job{}, err
	}
	kind := gear.KindSpur
	if raw.Type != "" {
		var err error
		kind, err = gear.ParseKind(raw.Type)
		if err != nil {
			return Job{}, err
		}
	}
	job := Default(kind)
	if !raw.Inputs.IsZero() {
		if err := raw.Inputs.Decode(&job.Inputs); err != nil {
			return Job{}, fmt.Errorf("inputs: %w", err)
		}
	}
	unit, err := gear.ParseUnit(string(job.Inputs.Unit))
	if err != nil {
		return Job{}, fmt.Errorf("inputs: %w", err)
	}
	job.Inputs.Unit = unit
	job.DisplayUnit = unit
	if raw.DisplayUnit != "" {
		if job.DisplayUnit, err = gear.ParseUnit(raw.DisplayUnit); err != nil {
			return Job{}, fmt.Errorf("displayUnit: %w", err)
		}
		job.displaySet = true
	}
	job.Render = raw.Render
	return job, nil
}

// Flags holds CLI flag values that override job file settings.
type Flags struct {
	Kind        string
	Unit        string
	DisplayUnit string
	Output      string
	Profile     string
	Size        int
}

// Resolve applies non-empty flags and fills render defaults.
// Changing the gear type resets the inputs to that type's defaults.
// The input unit flag also sets the display unit unless the job or a
// previous flag set the display unit explicitly.
func (j *Job) Resolve(flags Flags) error {
	if flags.Kind != "" {
		k, err := gear.ParseKind(flags.Kind)
		if err != nil {
			return err
		}
		if k != j.Kind {
			prev := *j
			*j = Default(k)
			j.Render = prev.Render
			if prev.displaySet {
				j.DisplayUnit, j.displaySet = prev.DisplayUnit, true
			}
		}
	}
	if flags.Unit != "" {
		u, err := gear.ParseUnit(flags.Unit)
		if err != nil {
			return err
		}
		j.Inputs.Unit = u
		if !j.displaySet {
			j.DisplayUnit = u
		}
	}
	if flags.DisplayUnit != "" {
		u, err := gear.ParseUnit(flags.DisplayUnit)
		if err != nil {
			return err
		}
		j.DisplayUnit, j.displaySet = u, true
	}
	if j.DisplayUnit == "" {
		j.DisplayUnit = j.Inputs.Unit
	}
	if flags.Output != "" {
		j.Render.Output = flags.Output
	}
	if flags.Profile != "" {
		j.Render.Profile = flags.Profile
	}
	if flags.Size > 0 {
		j.Render.Size = flags.Size
	}
	if j.Render.Size <= 0 {
		j.Render.Size = 512
	}
	if j.Render.Supersample <= 0 {
		j.Render.Supersample = 2
	}
	if j.Render.Output != "" {
		if _, err := render.FormatFromPath(j.Render.Output); err != nil {
			return err
		}
	}
	return nil
}

// Outline returns the outline request for the job's calculated outputs.
func (j Job) Outline(out gear.Outputs) outline.Request {
	req := outline.FromGear(j.Kind, j.Inputs, out, j.DisplayUnit)
	if j.Render.Profile != "" {
		req.Profile = outline.ParseProfile(j.Render.Profile)
	}
	return req
}
