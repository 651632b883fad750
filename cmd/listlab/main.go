// Package main is the entry point for the listlab workbench.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/iterlist/internal/config"
	"github.com/dshills/iterlist/internal/lab"
	"github.com/dshills/iterlist/internal/script"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

type options struct {
	configPath string
	scriptPath string
	stress     bool
	workers    int
	elements   int
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if opts.workers > 0 {
		cfg.Stress.Workers = opts.workers
	}
	if opts.elements > 0 {
		cfg.Stress.Elements = opts.elements
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case opts.stress:
		return runStress(cfg)
	case opts.scriptPath != "":
		return runScript(opts.scriptPath, cfg)
	default:
		return runSession(cfg)
	}
}

func runStress(cfg *config.Config) int {
	report := lab.RunStress(cfg.Stress.Workers, cfg.Stress.Elements)
	fmt.Println(report)
	if !report.OK() {
		for _, v := range report.Violations {
			fmt.Fprintf(os.Stderr, "  %s\n", v)
		}
		return 1
	}
	return 0
}

func runScript(path string, cfg *config.Config) int {
	host := script.NewHost(script.WithOpBudget(cfg.Script.MaxOps))
	defer host.Close()

	if err := host.RunFile(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	fmt.Println(host.Render())
	return 0
}

func runSession(cfg *config.Config) int {
	session, err := lab.NewSession(cfg.UI)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags() options {
	var opts options
	var showVersion bool

	flag.StringVar(&opts.configPath, "config", defaultConfigPath(), "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", defaultConfigPath(), "Path to configuration file (shorthand)")
	flag.StringVar(&opts.scriptPath, "script", "", "Lua script to run against a fresh list")
	flag.BoolVar(&opts.stress, "stress", false, "Run the concurrent stress suite and exit")
	flag.IntVar(&opts.workers, "workers", 0, "Override stress worker count")
	flag.IntVar(&opts.elements, "elements", 0, "Override stress elements per worker")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")
	flag.Parse()

	if showVersion {
		fmt.Printf("listlab %s (%s)\n", version, commit)
		os.Exit(0)
	}
	return opts
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "listlab.toml"
	}
	return home + "/.config/listlab/listlab.toml"
}
