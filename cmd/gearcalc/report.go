package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/soypat/gear"
	"github.com/soypat/gear/internal/config"
	"gopkg.in/yaml.v3"
)

// report is the printed result of a calculation, lengths in the display unit.
type report struct {
	Type     gear.Kind    `yaml:"type"`
	Label    string       `yaml:"label"`
	Unit     gear.Unit    `yaml:"unit"`
	Inputs   gear.Inputs  `yaml:"inputs"`
	Outputs  gear.Outputs `yaml:"outputs"`
	Warnings []string     `yaml:"warnings,omitempty"`
}

func newReport(entry gear.Entry, job config.Job, out gear.Outputs, warnings []string) report {
	return report{
		Type:     entry.Key,
		Label:    entry.Label,
		Unit:     job.DisplayUnit,
		Inputs:   job.Inputs,
		Outputs:  out.In(job.DisplayUnit),
		Warnings: warnings,
	}
}

func (r report) writeTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s gear\n", r.Label)
	unit := gear.LabelUnit(r.Unit)
	for _, f := range r.Outputs.Fields() {
		u := unit
		if !f.Length {
			u = ""
		}
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", f.Name, gear.FormatNumber(f.Value, gear.NumberDecimals), u)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(tw, "warning: %s\n", warn)
	}
	return tw.Flush()
}

func (r report) writeYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return err
	}
	return enc.Close()
}
