package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wireweave/internal/lsp"
	"wireweave/internal/version"
)

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the Wireweave language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func runLSP(cmd *cobra.Command, _ []string) error {
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	opts := lsp.ServerOptions{Logger: log, Version: version.Version}
	// --config фиксирует настройки; иначе сервер ищет wireweave.toml в корне workspace
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		cfg, err := loadConfig(cmd, "")
		if err != nil {
			return err
		}
		lintOpts := cfg.LintOptions()
		opts.Lint = &lintOpts
		opts.Debounce = cfg.Debounce()
		opts.MaxDiagnostics = cfg.Lint.MaxDiagnostics
	}
	if cmd.Flags().Changed("max-diagnostics") {
		if n, err := cmd.Flags().GetInt("max-diagnostics"); err == nil {
			opts.MaxDiagnostics = n
		}
	}

	server := lsp.NewServer(os.Stdin, os.Stdout, opts)
	if err := server.Run(cmd.Context()); err != nil {
		if errors.Is(err, lsp.ErrExit) {
			return nil
		}
		if errors.Is(err, lsp.ErrExitWithoutShutdown) {
			return fmt.Errorf("lsp exit without shutdown")
		}
		return err
	}
	return nil
}
