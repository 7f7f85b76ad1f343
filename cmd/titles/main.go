package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/titles/pkg/catalogue"
	"github.com/spicery/titles/pkg/holder"
	"github.com/spicery/titles/pkg/render"
)

// Version is injected at build time via ldflags.
var Version = "dev"

const usage = `titles - collect titles in order and show the most recent one

Reads one title label per line, appends each to a list of the chosen
catalogue and prints the list together with its last element.

Usage:
  titles [options] < input.txt

Options:
`

func main() {
	var kind = pflag.StringP("kind", "k", string(catalogue.KindFilm), "Catalogue of the titles (film, game)")
	var inputFile = pflag.String("input", "", "Input file (defaults to stdin)")
	var outputFile = pflag.String("output", "", "Output file (defaults to stdout)")
	var format = pflag.StringP("format", "f", "", "Output format (TEXT, JSON, YAML, ASCIITREE)")
	var configFile = pflag.String("config", "", "YAML file containing print options (optional)")
	var ordinals = pflag.Bool("ordinals", false, "Show ordinals instead of labels")
	var verbose = pflag.BoolP("verbose", "v", false, "Log every added title")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s\n", usage)
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("titles version %s\n", Version)
		os.Exit(0)
	}

	if len(pflag.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "Error: Unexpected positional arguments. Use --input and --output flags instead.\n\n")
		pflag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	options := render.DefaultPrintOptions()
	if *configFile != "" {
		loaded, err := render.LoadPrintOptions(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config file '%s': %v\n", *configFile, err)
			os.Exit(1)
		}
		options = loaded
	}
	if *format != "" {
		options.Format = *format
	}
	if *ordinals {
		options.UseOrdinals = true
	}
	if err := options.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var input io.Reader = os.Stdin
	if *inputFile != "" {
		file, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		input = file
	}

	labels, err := holder.ReadLabels(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}

	report, err := holder.Build(catalogue.Kind(*kind), labels, options, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	printFunc, err := render.PickPrintFunc(options.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var output io.Writer = os.Stdout
	if *outputFile != "" {
		file, err := os.Create(*outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		output = file
	}

	if err := printFunc(report, output, options); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
