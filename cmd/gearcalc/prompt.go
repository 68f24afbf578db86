package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/soypat/gear"
	"github.com/soypat/gear/internal/config"
)

var errInterrupted = errors.New("interrupted")

// param is an editable numeric input.
type param struct {
	label string
	value *float64
}

// params returns the inputs of kind k in prompt order.
func params(k gear.Kind, in *gear.Inputs) []param {
	var ps []param
	switch k {
	case gear.KindSpur, gear.KindRing:
		ps = []param{{"Module", &in.Module}, {"Teeth", &in.Teeth}}
	case gear.KindHelical:
		ps = []param{{"Normal module", &in.NormalModule}, {"Teeth", &in.Teeth}, {"Helix angle [°]", &in.HelixAngleDeg}}
	case gear.KindWorm:
		ps = []param{{"Axial module", &in.AxialModule}, {"Worm starts", &in.WormStarts},
			{"Wheel teeth", &in.WheelTeeth}, {"Lead angle [°]", &in.LeadAngleDeg}}
	case gear.KindBevel:
		ps = []param{{"Module", &in.Module}, {"Pinion teeth", &in.PinionTeeth},
			{"Gear teeth", &in.GearTeeth}, {"Shaft angle [°]", &in.ShaftAngleDeg}}
	}
	return append(ps,
		param{"Pressure angle [°]", &in.PressureAngleDeg},
		param{"Addendum coefficient", &in.AddendumCoeff},
		param{"Dedendum coefficient", &in.DedendumCoeff},
	)
}

func isNumber(ans interface{}) error {
	s, _ := ans.(string)
	if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	return nil
}

// prompt asks for the gear type, unit and every parameter, starting from
// the job's current values.
func prompt(ctx context.Context, job *config.Job) error {
	entries := gear.List()
	labels := make([]string, len(entries))
	current := 0
	for i, e := range entries {
		labels[i] = e.Label
		if e.Key == job.Kind {
			current = i
		}
	}
	var idx int
	err := survey.AskOne(&survey.Select{
		Message: "Gear type:",
		Options: labels,
		Default: labels[current],
	}, &idx)
	if err != nil {
		return translateSurveyErr(err)
	}
	if k := entries[idx].Key; k != job.Kind {
		if err := job.Resolve(config.Flags{Kind: string(k)}); err != nil {
			return err
		}
	}

	var unit string
	err = survey.AskOne(&survey.Select{
		Message: "Unit:",
		Options: []string{string(gear.Millimetre), string(gear.Inch)},
		Default: gear.LabelUnit(job.Inputs.Unit),
	}, &unit)
	if err != nil {
		return translateSurveyErr(err)
	}
	if err := job.Resolve(config.Flags{Unit: unit}); err != nil {
		return err
	}

	for _, p := range params(job.Kind, &job.Inputs) {
		if err := ctx.Err(); err != nil {
			return err
		}
		var ans string
		err := survey.AskOne(&survey.Input{
			Message: p.label + ":",
			Default: strconv.FormatFloat(*p.value, 'g', -1, 64),
		}, &ans, survey.WithValidator(isNumber))
		if err != nil {
			return translateSurveyErr(err)
		}
		*p.value, _ = strconv.ParseFloat(strings.TrimSpace(ans), 64)
	}
	return nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errInterrupted
	}
	return err
}
