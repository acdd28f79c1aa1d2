package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"

	"fedsd/config"
	"fedsd/export"
	"fedsd/observability"
	"fedsd/scene"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	var (
		configPath   string
		format       string
		outputFile   string
		canonicalize string
		listEvents   bool
		verbose      bool
	)

	flagSet := pflag.NewFlagSet("fedsd", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVarP(&configPath, "config", "c", "", "Style and event-name configuration (.yaml, .toml or .json)")
	flagSet.StringVarP(&format, "format", "f", "svg", "Export format: svg, json, yaml")
	flagSet.StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	flagSet.StringVar(&canonicalize, "canonicalize", "", "Print the message tag for an event description and exit")
	flagSet.BoolVar(&listEvents, "list-events", false, "Print the event-name table and exit")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "Log debug information to stderr")
	flagSet.BoolP("help", "h", false, "Show help")

	flagSet.Usage = func() { printUsage(flagSet, stderr) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		flagSet.Usage()
		return nil
	}

	observability.InitLogger("fedsd", stderr, verbose)

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Debug().Str("path", configPath).Int("events", cfg.Events.Len()).Msg("loaded config")
	}

	if flagSet.Changed("canonicalize") {
		fmt.Fprintln(stdout, cfg.Events.Canonicalize(canonicalize))
		return nil
	}
	if listEvents {
		for _, name := range cfg.Events.Names() {
			fmt.Fprintf(stdout, "%s\t%s\n", cfg.Events.Canonicalize(name), name)
		}
		return nil
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		return fmt.Errorf("expected exactly one scene file, got %d", flagSet.NArg())
	}
	scenePath := flagSet.Arg(0)

	// An output extension picks the format unless -f was given.
	if outputFile != "" && !flagSet.Changed("format") {
		if ext := strings.TrimPrefix(filepath.Ext(outputFile), "."); ext != "" {
			if _, err := export.ParseFormat(ext); err == nil {
				format = ext
			}
		}
	}
	exportFormat, err := export.ParseFormat(format)
	if err != nil {
		return fmt.Errorf("%w (available: svg, json, yaml)", err)
	}

	s, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	counts := s.Counts()
	log.Debug().
		Str("path", scenePath).
		Int("arrows", counts["arrow"]).
		Int("dots", counts["dot"]).
		Int("comments", counts["comment"]).
		Msg("loaded scene")

	if _, unknown := s.Resolve(cfg.Events); len(unknown) > 0 {
		for _, name := range unknown {
			log.Warn().Str("event", name).Msg("unknown event, labelled UNIDENTIFIED")
		}
	}

	exporter, err := export.NewExporter(exportFormat, cfg)
	if err != nil {
		return err
	}
	output, err := exporter.Export(s)
	if err != nil {
		return fmt.Errorf("exporting scene: %w", err)
	}

	if outputFile == "" {
		_, err := io.WriteString(stdout, output)
		return err
	}
	if err := os.WriteFile(outputFile, []byte(output), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outputFile, err)
	}
	log.Info().Str("path", outputFile).Str("format", exporter.GetFormatName()).Msg("exported scene")
	return nil
}

func printUsage(flagSet *pflag.FlagSet, w io.Writer) {
	fmt.Fprintf(w, "Usage: fedsd [options] scene.(yaml|toml|json)\n\n")
	fmt.Fprintf(w, "Draws a laid-out federated sequence diagram as SVG.\n\n")
	fmt.Fprintf(w, "Options:\n")
	fmt.Fprint(w, flagSet.FlagUsages())
	fmt.Fprintf(w, "\nExamples:\n")
	fmt.Fprintf(w, "  fedsd scene.yaml > trace.svg\n")
	fmt.Fprintf(w, "  fedsd -c style.toml -o trace.svg scene.yaml\n")
	fmt.Fprintf(w, "  fedsd -f json scene.toml                     # Resolve labels only\n")
	fmt.Fprintf(w, "  fedsd --canonicalize \"RTI sends TAG to federate\"\n")
}
