package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tocmd/tocmd/internal/config"
	"github.com/tocmd/tocmd/internal/generator"
	"github.com/tocmd/tocmd/internal/parser"
	"github.com/tocmd/tocmd/internal/ui"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "tocmd <filename>",
	Short: "Markdown table of contents generator",
	Long: `Generates or refreshes a "# Table of Contents" block at the top of a
Markdown document.

Each header is linked to an anchor derived from its text, or to an
explicit <a id="..."></a> tag placed on the line above it. Headers inside
fenced code blocks are left alone.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("output", "o", "", "Output file (default: input name with the configured suffix)")
	rootCmd.Flags().BoolP("clean", "c", false, "Remove table of contents if present (reserved)")
	rootCmd.Flags().BoolP("yes", "y", false, "Overwrite the input file without asking")
	rootCmd.Flags().String("anchor-style", "", "Explicit anchor syntax: anchor or keyword")

	viper.BindPFlag("assume_yes", rootCmd.Flags().Lookup("yes"))
	viper.BindPFlag("anchor_style", rootCmd.Flags().Lookup("anchor-style"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	input := args[0]

	info, err := os.Stat(input)
	if err != nil || !info.Mode().IsRegular() {
		return fmt.Errorf("%s does not exist or is not a file", input)
	}

	if clean, _ := cmd.Flags().GetBool("clean"); clean {
		fmt.Fprintln(os.Stderr, "warning: --clean is not implemented yet")
	}

	if yes, _ := cmd.Flags().GetBool("yes"); yes {
		config.SetAssumeYes(true)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = generator.OutputName(input, config.GetOutputSuffix())
	} else if output == input && !config.GetAssumeYes() {
		ok, err := ui.Confirm("Output file is the same as input file, rewrite?")
		if err != nil {
			return err
		}
		if !ok {
			// Declined overwrites are a silent no-op
			return nil
		}
	}

	style, err := config.GetAnchorStyle()
	if err != nil {
		return err
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open file %s: %w", input, err)
	}

	// Input is fully consumed and closed before any output is written
	doc, err := parser.NewScanner(style).Scan(f)
	f.Close()
	if err != nil {
		return err
	}

	for _, w := range doc.Warnings {
		fmt.Fprintf(os.Stderr, "warning: line %d: %s\n", w.Line, w.Message)
	}

	final := generator.Assemble(generator.Render(doc.Entries), doc.Body)
	if err := generator.WriteFile(output, []byte(final)); err != nil {
		return err
	}

	fmt.Println(output)
	return nil
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
