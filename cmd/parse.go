package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/periodicdata/core"
	"github.com/gaurav-prasanna/periodicdata/core/extract"
)

var flagParseNumber int

var parseCmd = &cobra.Command{
	Use:   "parse <file.html>",
	Short: "Normalize a saved element page and print the record",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	f := parseCmd.Flags()
	f.String("format", "json", "Output format: json, markdown or pdf")
	f.Bool("expand", false, "Split Discovery into discoveryYear and discoveryCountries")
	f.IntVar(&flagParseNumber, "number", 0, "Atomic number of the page, used in headings")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]
	html, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading page: %w", err)
	}

	renderer, err := selectRenderer(cfg.Format)
	if err != nil {
		return err
	}

	rows, err := extract.New(cfg.Sections...).Extract(string(html))
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	logger.Debug("extracted rows", "file", path, "rows", len(rows))

	data, err := renderer.Render(core.Element{
		AtomicNumber: flagParseNumber,
		Source:       path,
		Record:       core.Collect(newNormalizer(cfg), rows),
	})
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
