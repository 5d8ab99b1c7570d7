package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"wireweave/internal/diagfmt"
	"wireweave/internal/driver"
	"wireweave/internal/registry"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.ww",
	Short: "Tokenize a wireframe document",
	Long:  `Tokenize prints the tokens of a document together with their registry classification`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	// Получаем флаги
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	maxDiagnostics, err := cmd.Flags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	result, err := driver.Tokenize(filePath, maxDiagnostics)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Диагностика лексера в stderr
	if result.Bag.Len() > 0 {
		useColor, err := resolveColor(colorFlag, os.Stderr)
		if err != nil {
			return err
		}
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   useColor,
			Context: 2,
		})
	}

	reg := registry.Default()
	switch format {
	case "pretty":
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.File, reg)
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, reg)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
