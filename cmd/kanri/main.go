package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/napat/kanri/internal/ai"
	"github.com/napat/kanri/internal/app"
	"github.com/napat/kanri/internal/config"
	"github.com/napat/kanri/internal/ui"
	"github.com/napat/kanri/internal/ui/theme"
)

const version = "0.2.0"

func main() {
	viewFlag := flag.String("view", "", "initial view (dashboard, internal, external, project)")
	themeFlag := flag.String("theme", "", "color theme (nord, dracula)")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Printf("kanri %s\n", version)
			return
		case "help":
			usage()
			return
		case "plan":
			if len(args) < 2 {
				fmt.Fprintln(os.Stderr, "usage: kanri plan \"<prompt>\"")
				os.Exit(1)
			}
			if err := runPlan(args[1]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		default:
			fmt.Fprintf(os.Stderr, "unknown command: %s\n", args[0])
			usage()
			os.Exit(1)
		}
	}

	if err := runTUI(*viewFlag, *themeFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(viewOverride, themeOverride string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if viewOverride != "" {
		cfg.View = viewOverride
	}
	if themeOverride != "" {
		cfg.Theme = themeOverride
	}

	if cfg.Theme != "" {
		if t, ok := theme.ByName(cfg.Theme); ok {
			theme.SetTheme(t)
		}
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return ui.Run(a)
}

// runPlan generates a project plan and prints it without starting the TUI
func runPlan(prompt string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	planner := ai.New(cfg.APIKey, cfg.Model)
	proposal, err := planner.GeneratePlan(context.Background(), prompt)
	if err != nil {
		return err
	}

	fmt.Printf("%s [%s]\n", proposal.Name, proposal.Category)
	if proposal.Description != "" {
		fmt.Printf("  %s\n", proposal.Description)
	}
	fmt.Println()
	for i, t := range proposal.Tasks {
		fmt.Printf("%2d. [%s] %s", i+1, t.Priority, t.Title)
		if t.EstimatedDays > 0 {
			fmt.Printf(" (~%dd)", t.EstimatedDays)
		}
		fmt.Println()
		if t.Description != "" {
			fmt.Printf("      %s\n", t.Description)
		}
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `kanri - terminal project and task manager

Usage:
  kanri [flags]            start the TUI
  kanri plan "<prompt>"    generate a project plan and print it
  kanri version            print version
  kanri help               show this help

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Environment:
  GEMINI_API_KEY  API key for AI planning
  KANRI_MODEL     model name (default gemini-2.5-flash)
  KANRI_THEME     color theme (nord, dracula)
  KANRI_VIEW      initial view (default dashboard)
`)
}
