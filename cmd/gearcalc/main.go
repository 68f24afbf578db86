// Command gearcalc computes gear dimensions and draws an approximate
// tooth outline.
//
//	gearcalc -type helical -unit in -o helical.svg
//	gearcalc -config job.yaml -i
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/soypat/gear"
	"github.com/soypat/gear/internal/config"
	"github.com/soypat/gear/outline"
	"github.com/soypat/gear/render"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML or JSON job file")
	kind := flag.String("type", "", "Gear type: spur, helical, ring, worm or bevel")
	unit := flag.String("unit", "", "Input unit: mm or in")
	displayUnit := flag.String("display", "", "Unit results are reported in (default: input unit)")
	output := flag.String("o", "", "Write the outline to this .svg, .png or .webp file")
	profile := flag.String("profile", "", "Tooth profile override: standard, soft or worm")
	size := flag.Int("size", 0, "Drawing size in pixels (default: 512)")
	format := flag.String("format", "table", "Result format: table or yaml")
	interactive := flag.Bool("i", false, "Prompt for gear type and parameters")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(log)

	job := config.Default(gear.KindSpur)
	if *configFile != "" {
		var err error
		job, err = config.Load(*configFile)
		if err != nil {
			log.Error("loading job", "err", err)
			os.Exit(1)
		}
	}
	err := job.Resolve(config.Flags{
		Kind:        *kind,
		Unit:        *unit,
		DisplayUnit: *displayUnit,
		Output:      *output,
		Profile:     *profile,
		Size:        *size,
	})
	if err != nil {
		log.Error("invalid flags", "err", err)
		os.Exit(2)
	}

	if *interactive {
		err = prompt(context.Background(), &job)
		if errors.Is(err, errInterrupted) {
			os.Exit(130)
		} else if err != nil {
			log.Error("prompt", "err", err)
			os.Exit(1)
		}
	}

	if err := run(os.Stdout, log, job, *format); err != nil {
		log.Error("gearcalc", "err", err)
		os.Exit(1)
	}
}

func run(w io.Writer, log *slog.Logger, job config.Job, format string) error {
	entry := gear.Lookup(job.Kind)
	calc := entry.Calculator
	warnings := calc.Validate(job.Inputs)
	out := calc.Calculate(job.Inputs)
	log.Debug("calculated", "type", job.Kind, "warnings", len(warnings))

	rep := newReport(entry, job, out, warnings)
	var err error
	switch format {
	case "table", "":
		err = rep.writeTable(w)
	case "yaml":
		err = rep.writeYAML(w)
	default:
		err = fmt.Errorf("unknown result format %q", format)
	}
	if err != nil {
		return err
	}
	if job.Render.Output == "" {
		return nil
	}
	return draw(log, entry, job, out)
}

func draw(log *slog.Logger, entry gear.Entry, job config.Job, out gear.Outputs) error {
	req := job.Outline(out)
	f, err := render.FormatFromPath(job.Render.Output)
	if err != nil {
		return err
	}
	start := time.Now()
	title := entry.Label + " gear"
	if f == render.FormatSVG {
		err = render.CreateFile(job.Render.Output, func(w io.Writer) error {
			return render.WriteSVG(w, req, render.SVGOptions{
				Size:        job.Render.Size,
				PitchCircle: job.Render.PitchCircle,
				Title:       title,
			})
		})
	} else {
		var s outline.SDF2
		s, err = outline.Shape(req)
		if err != nil {
			return fmt.Errorf("%s outline: %w", entry.Label, err)
		}
		cfg := render.RasterConfig{Size: job.Render.Size, Supersample: job.Render.Supersample}
		if job.Render.Caption {
			cfg.Caption = title + ", " + gear.FormatNumber(req.Teeth, 0) + " teeth"
		}
		img, rerr := render.Raster(s, cfg)
		if rerr != nil {
			return rerr
		}
		err = render.CreateFile(job.Render.Output, func(w io.Writer) error {
			return render.Encode(w, img, f)
		})
	}
	if err != nil {
		return err
	}
	log.Info("wrote outline", "path", job.Render.Output, "format", f, "elapsed", time.Since(start))
	return nil
}
