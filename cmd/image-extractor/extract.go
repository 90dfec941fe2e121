package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	imageextractor "github.com/hellenic-development/image-extractor"
	"github.com/hellenic-development/image-extractor/pkg/element"
	"github.com/hellenic-development/image-extractor/pkg/formatter"
	"github.com/hellenic-development/image-extractor/pkg/imager"
)

var (
	outputFile   string
	outputFormat string
)

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <image>",
		Short: "Extract design elements from an image file and export them as a template",
		Args:  cobra.ExactArgs(1),
		RunE:  runExtract,
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: design-template-<date>.<ext>)")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "Output format: json, yaml, markdown")

	return cmd
}

func runExtract(cmd *cobra.Command, args []string) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	cyan := color.New(color.FgCyan)

	ext, err := formatExtension(outputFormat)
	if err != nil {
		return err
	}

	cyan.Println("\n🎨 Image Element Extractor")
	cyan.Println("===========================")
	cyan.Println()

	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	mimeType := imager.DetectMIMEType(data)
	if !imager.IsImageMIMEType(mimeType) {
		return fmt.Errorf("%s is not an image (detected %s)", path, mimeType)
	}

	result, err := imageextractor.Run(cmd.Context(), data, mimeType, imageextractor.Options{
		Logger: &cliLogger{},
	})
	if err != nil {
		return err
	}

	printSummary(result)

	now := time.Now()
	if outputFile == "" {
		outputFile = formatter.TemplateFileName(now, ext)
	}

	var out []byte
	switch ext {
	case "md":
		out = []byte(formatter.ToMarkdown(result.Elements, filepath.Base(path)))
	case "yaml":
		out, err = formatter.BuildTemplate(result.Elements, now).YAML()
	default:
		out, err = formatter.BuildTemplate(result.Elements, now).JSON()
	}
	if err != nil {
		return err
	}

	green.Printf("\n💾 Writing to %s... ", outputFile)
	if err := os.WriteFile(outputFile, out, 0644); err != nil {
		red.Printf("✗\n")
		return fmt.Errorf("write template: %w", err)
	}
	green.Println("✓")

	green.Printf("\n✨ Successfully exported %d design element(s) to %s\n\n", len(result.Elements), outputFile)
	return nil
}

func formatExtension(format string) (string, error) {
	switch strings.ToLower(format) {
	case "json":
		return "json", nil
	case "yaml", "yml":
		return "yaml", nil
	case "markdown", "md":
		return "md", nil
	}
	return "", fmt.Errorf("invalid format %q (must be json, yaml or markdown)", format)
}

func printSummary(result *imageextractor.Result) {
	counts := make(map[element.Type]int)
	for _, e := range result.Elements {
		counts[e.Type]++
	}

	color.New(color.FgCyan).Println("\n📊 Extraction Summary:")
	if result.Metadata.Width > 0 {
		fmt.Printf("  • Image: %s, %dx%d, %d bytes\n", result.Metadata.Format, result.Metadata.Width, result.Metadata.Height, result.Metadata.FileSize)
	}
	fmt.Printf("  • Colors: %d\n", counts[element.Color])
	fmt.Printf("  • Palettes: %d\n", counts[element.Palette])
	fmt.Printf("  • Fonts: %d\n", counts[element.Font])
	fmt.Printf("  • Effects: %d\n", counts[element.Effect])

	for _, e := range result.Elements {
		fmt.Printf("    - [%s] %s (%s)\n", e.Type, e.Name, e.Details)
	}
}

// cliLogger implements imageextractor.Logger with colored terminal output.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Printf(format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Printf("⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Printf("✗ "+format+"\n", args...)
}
