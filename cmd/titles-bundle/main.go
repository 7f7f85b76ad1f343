package main

import (
	"fmt"
	"log/slog"
	"os"

	pflag "github.com/spf13/pflag"

	"github.com/spicery/titles/pkg/bundle"
	"github.com/spicery/titles/pkg/render"
)

// Version is injected at build time via ldflags.
var Version = "dev"

func main() {
	var outputFile = pflag.StringP("output", "o", "", "SQLite bundle to write (required)")
	var configFile = pflag.String("config", "", "YAML file containing print options for display labels (optional)")
	var check = pflag.Bool("check", false, "Only report whether the bundle schema is up to date")
	var verbose = pflag.BoolP("verbose", "v", false, "Log each catalogue written")
	var version = pflag.Bool("version", false, "Print version and exit")
	var help = pflag.BoolP("help", "h", false, "Print help message and exit")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s --output bundle.db [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nWrites the film and game catalogues with their display labels to a SQLite bundle.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if *version {
		fmt.Printf("titles-bundle version %s\n", Version)
		os.Exit(0)
	}

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *outputFile == "" {
		fmt.Fprintf(os.Stderr, "Error: --output is required\n\n")
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

	b, err := bundle.Open(*outputFile, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening bundle: %v\n", err)
		os.Exit(1)
	}
	defer b.Close()

	if *check {
		upToDate, err := b.CheckMigration()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error checking migrations: %v\n", err)
			os.Exit(1)
		}
		if !upToDate {
			fmt.Println("bundle schema is out of date")
			os.Exit(1)
		}
		fmt.Println("bundle schema is up to date")
		return
	}

	if err := b.Migrate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error migrating bundle: %v\n", err)
		os.Exit(1)
	}

	if err := b.WriteCatalogues(options); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing catalogues: %v\n", err)
		os.Exit(1)
	}
	log.Info("bundle written", slog.String("path", *outputFile))
}
