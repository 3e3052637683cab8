package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/canoecalc/internal/config"
	"github.com/alexiusacademia/canoecalc/internal/logging"
	"github.com/alexiusacademia/canoecalc/internal/version"
)

var (
	configFile string
	logLevel   string

	settings *config.Settings
	logger   = zerolog.Nop()
)

var rootCmd = &cobra.Command{
	Use:   "canoecalc",
	Short: "Concrete Canoe Hull Compliance Calculator",
	Long: `canoecalc - Concrete Canoe Hull Compliance Calculator

A CLI tool that checks a concrete canoe hull design against the
naval-architecture and structural criteria used in competition:

  - Hydrostatics: displacement, draft and freeboard
  - Transverse stability: metacentric height (GM) and righting arm
  - Structure: thin-shell section modulus, bending stress, safety factor

Thresholds and physical constants are read from an optional config
file (--config) and CANOE_* environment variables.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := config.Load(configFile)
		if err != nil {
			return err
		}
		settings = s

		level := s.LogLevel
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		logger = logging.New(os.Stderr, level)
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   canoecalc v%-45s║\n", version.Version)
		fmt.Println("  ║   Concrete Canoe Hull Compliance Calculator               ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Freeboard and draft from displacement")
		fmt.Println("    • Metacentric height with fixed or weighted KG")
		fmt.Println("    • Thin-shell U-section modulus and bending stress")
		fmt.Println("    • Combined pass/fail compliance report")
		fmt.Println()
		fmt.Println("  Use 'canoecalc --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (YAML or JSON)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
}

func passMark(pass bool) string {
	if pass {
		return "✓ PASS"
	}
	return "✗ FAIL"
}
