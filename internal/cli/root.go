// Package cli implements the relicense command: flag parsing, shell
// completion, interactive prompting, and writing the rendered license
// to disk.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/noaione/relicense"
	"github.com/noaione/relicense/internal/config"
	"github.com/noaione/relicense/internal/prompt"
	"github.com/noaione/relicense/pkg/license"
)

var (
	cfgFile    string
	licenseID  string
	outputPath string
	noInput    bool
	listOnly   bool
	verbose    bool

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "relicense",
	Short: "Generate license files from SPDX templates",
	Long: `relicense generates a LICENSE file from a bundled SPDX template,
prompting for the template's variables (copyright holder, year, ...)
and writing the normalized result to disk.`,
	Version:       relicense.Version(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: level,
		}))
	},
	RunE: run,
}

// Execute runs the root command with ctx and exits non-zero on error.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, prompt.ErrInterrupted) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVarP(&licenseID, "license", "l", "", "SPDX identifier of the license to generate")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file, defaults to LICENSE in the current directory")
	rootCmd.Flags().StringVarP(&cfgFile, "config", "c", "", "presets file path (default "+config.DefaultName+" if present)")
	rootCmd.Flags().BoolVar(&noInput, "no-input", false, "never prompt; unset variables keep their markers")
	rootCmd.Flags().BoolVar(&listOnly, "list", false, "list known license identifiers and exit")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("license", completeLicense)
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := relicense.DefaultStore()
	if err != nil {
		return err
	}

	if listOnly {
		for _, id := range st.Identifiers() {
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	}

	if licenseID == "" {
		return errors.New("--license is required")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	lic, err := license.New(licenseID, st)
	if err != nil {
		return err
	}
	logger.Debug("license selected", "identifier", lic.ID())

	info(cmd, "Generating license for "+accentStyle.Render(lic.ID())+"...")

	if err := fill(ctx, cmd, lic, cfg.Variables); err != nil {
		return err
	}

	text, err := lic.Render()
	if err != nil {
		return err
	}

	dest := outputPath
	if dest == "" {
		dest = cfg.Output
	}
	if dest == "" {
		dest = "LICENSE"
	}

	info(cmd, "Writing license to "+pathStyle.Render(dest)+"...")
	if err := os.WriteFile(dest, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dest, err)
	}
	return nil
}

// fill resolves every template variable, either from presets alone
// (--no-input) or by prompting for the remainder.
func fill(ctx context.Context, cmd *cobra.Command, lic *license.License, presets map[string]string) error {
	if noInput {
		names, err := lic.Variables()
		if err != nil {
			return err
		}
		for _, name := range names {
			value, ok := presets[name]
			if !ok {
				info(cmd, "Skipping "+accentStyle.Render(name)+", no preset value.")
				continue
			}
			if err := lic.Apply(name, value); err != nil {
				return err
			}
		}
		return nil
	}

	skipped, err := prompt.Collect(ctx, prompt.NewSurveyDriver(), lic, presets)
	if err != nil {
		return err
	}
	for _, name := range skipped {
		info(cmd, "Skipping "+accentStyle.Render(name)+", no value provided.")
	}
	return nil
}

func loadConfig() (config.File, error) {
	path := cfgFile
	explicit := path != ""
	if !explicit {
		path = config.DefaultName
	}
	return config.Load(path, explicit)
}

func completeLicense(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	st, err := relicense.DefaultStore()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	return st.Complete(toComplete), cobra.ShellCompDirectiveNoFileComp
}

func info(cmd *cobra.Command, msg string) {
	fmt.Fprintln(cmd.ErrOrStderr(), msg)
}
