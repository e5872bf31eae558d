package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apaliavy/golangcodestyle/formatter"
	"github.com/apaliavy/golangcodestyle/internal"
	"github.com/apaliavy/golangcodestyle/internal/types"
	"github.com/apaliavy/golangcodestyle/lint"
)

var (
	outputFormat string
	outPath      string
	noProgress   bool
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Run the convention checks over files or directories",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		runner, err := lint.New(cfgFile, logger)
		if err != nil {
			logger.Fatal("failed to initialize the engine", zap.Error(err))
		}
		runner.ShowProgress(!noProgress && (outputFormat == "" || outputFormat == "text"))

		reports := make([]*types.Report, 0, len(args))
		for _, path := range args {
			report, err := runner.ProcessPath(ctx, path)
			if err != nil {
				logger.Fatal("analysis failed", zap.String("path", path), zap.Error(err))
			}
			reports = append(reports, report)
		}
		merged := internal.MergeReports(reports...)

		f, err := formatter.Get(outputFormat)
		if err != nil {
			logger.Fatal("bad output format", zap.Error(err))
		}
		rendered, err := f.Format(merged)
		if err != nil {
			logger.Fatal("formatting failed", zap.Error(err))
		}

		if outPath != "" {
			if err := os.WriteFile(outPath, []byte(rendered), 0o644); err != nil {
				logger.Fatal("failed to write output file", zap.Error(err))
			}
		} else {
			fmt.Print(rendered)
		}

		if hasErrors(merged) {
			os.Exit(1)
		}
	},
}

func hasErrors(report *types.Report) bool {
	for _, f := range report.Findings {
		if f.Severity == types.SeverityError {
			return true
		}
	}
	return false
}

func init() {
	checkCmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format: text, json or sarif")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "write the report to a file instead of stdout")
	checkCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
}
