package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"liner/diagram"
	"liner/export"
	"liner/liner"
	"liner/terminal"
	"liner/validation"
)

// errValidation is returned when -validate finds rule violations.
var errValidation = errors.New("validation failed")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("liner", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		linerName   = fs.String("liner", "", "Liner: "+strings.Join(liner.Names(), ", ")+" (default: document setting or elbow)")
		size        = fs.Float64("size", 0, "Shoulder/slant size (default: document setting or 20)")
		format      = fs.String("format", "ascii", "Export format: ascii, json, png")
		outputFile  = fs.String("o", "", "Output file (default: stdout)")
		scale       = fs.Float64("scale", 0, "Units per cell (ascii) or pixels per unit (png)")
		stroke      = fs.String("color", "", "Path colour for png output (hex)")
		plain       = fs.Bool("plain", false, "Use plain ASCII instead of box drawing")
		validate    = fs.Bool("validate", false, "Check routed paths and fail on violations")
		strict      = fs.Bool("strict", false, "With -validate, also reject zero-length segments")
		interactive = fs.Bool("i", false, "Interactive terminal preview")
		verbose     = fs.Bool("v", false, "Log routing decisions to stderr")
	)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: liner [options] scene.json\n\n")
		fmt.Fprintf(stderr, "Routes the connections of a scene and renders the result.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  liner scene.json                       # Render with box drawing\n")
		fmt.Fprintf(stderr, "  liner -liner slanted scene.json        # Use the slanted liner\n")
		fmt.Fprintf(stderr, "  liner -format png -o out.png scene.json\n")
		fmt.Fprintf(stderr, "  liner -i -o moved.json scene.json      # Move shapes, save the result\n")
		fmt.Fprintf(stderr, "  cat scene.json | liner -format json -\n")
	}

	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return errors.New("please provide a scene file")
	}

	if *verbose {
		liner.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer liner.SetLogger(nil)
	}

	doc, err := loadDocument(fs.Arg(0), stdin)
	if err != nil {
		return fmt.Errorf("failed to load scene: %w", err)
	}

	name := firstNonEmpty(*linerName, doc.Liner, "elbow")
	linerSize := *size
	if linerSize <= 0 {
		linerSize = doc.LinerSize
	}
	l, err := liner.New(name, linerSize)
	if err != nil {
		return err
	}

	scene, err := diagram.Build(doc, l)
	if err != nil {
		return err
	}

	if *validate {
		if err := validateScene(scene, *strict, stderr); err != nil {
			return err
		}
	}

	if *interactive {
		settings := terminal.DefaultSettings()
		if linerSize > 0 {
			settings.Size = linerSize
		}
		if err := terminal.Run(scene, settings); err != nil {
			return err
		}
		if *outputFile == "" {
			return nil
		}
		return saveDocument(doc, *outputFile)
	}

	f, err := export.ParseFormat(*format)
	if err != nil {
		return err
	}
	exporter, err := export.NewExporter(f, export.Options{
		Scale:      *scale,
		PlainASCII: *plain,
		Stroke:     firstNonEmpty(*stroke, doc.Stroke),
	})
	if err != nil {
		return err
	}

	data, err := exporter.Export(scene)
	if err != nil {
		return fmt.Errorf("failed to export %s: %w", exporter.FormatName(), err)
	}

	if *outputFile == "" {
		_, err = stdout.Write(data)
		return err
	}
	if err := os.WriteFile(*outputFile, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	fmt.Fprintf(stderr, "Exported to %s (%s)\n", *outputFile, exporter.FormatName())
	return nil
}

func loadDocument(filename string, stdin io.Reader) (*diagram.Document, error) {
	if filename == "-" {
		return diagram.Load(stdin)
	}
	return diagram.LoadFile(filename)
}

func saveDocument(doc *diagram.Document, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := doc.Save(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// validateScene reports every violation on stderr.
func validateScene(scene *diagram.Scene, strict bool, stderr io.Writer) error {
	v := validation.NewPathValidator()
	v.SetStrictMode(strict)

	count := 0
	for _, r := range scene.Routes {
		for _, e := range v.Validate(r.ID, scene.Liner().Name(), r.Conn) {
			fmt.Fprintf(stderr, "  %v\n", e)
			count++
		}
	}
	if count > 0 {
		return fmt.Errorf("%w: %d errors", errValidation, count)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
