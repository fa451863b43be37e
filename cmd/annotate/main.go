package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"viromex/adapters/tabular"
	"viromex/app"
)

func main() {
	rootCmd := newAnnotateCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newAnnotateCmd() *cobra.Command {
	var outPath string
	var xlsxPath string
	var summaryPath string

	cmd := &cobra.Command{
		Use:   "annotate <count-table>",
		Short: "Annotate a virome count table without the web UI",
		Long: `Annotate runs the full classification pipeline (family extraction,
host inference, spillover tagging, diversity indices) over a CSV or XLSX
count table with columns Taxon and Count.

The annotated table goes to --out (default stdout); the plain-text One
Health summary goes to --summary or stderr-adjacent stdout when omitted.

Example: annotate sample_virome.csv --out annotated.csv --summary summary.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := app.NewAnalysisService()
			analysis, err := service.AnalyzeFile(args[0])
			if err != nil {
				return err
			}

			if err := writeAnnotated(analysis, outPath); err != nil {
				return err
			}
			if xlsxPath != "" {
				f, err := os.Create(xlsxPath)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := tabular.WriteAnnotatedXLSX(f, analysis.Records); err != nil {
					return err
				}
			}

			summary := app.BuildOneHealthSummary(analysis)
			if summaryPath != "" {
				if err := os.WriteFile(summaryPath, []byte(summary+"\n"), 0o644); err != nil {
					return err
				}
			} else if outPath != "" {
				// Summary to stdout only when it will not interleave
				// with the CSV stream.
				fmt.Println(summary)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "annotated CSV output path (default stdout)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "also write the annotated table as XLSX")
	cmd.Flags().StringVar(&summaryPath, "summary", "", "write the One Health summary to this path")
	return cmd
}

func writeAnnotated(analysis *app.Analysis, outPath string) error {
	if outPath == "" {
		return tabular.WriteAnnotatedCSV(os.Stdout, analysis.Records)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()
	return tabular.WriteAnnotatedCSV(f, analysis.Records)
}
