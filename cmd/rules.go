package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/apaliavy/golangcodestyle/lint"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the built-in convention rules",
	Run: func(cmd *cobra.Command, args []string) {
		rules, err := lint.Rules()
		if err != nil {
			logger.Fatal("failed to load the rule set", zap.Error(err))
		}
		for _, rule := range rules {
			fmt.Printf("%-28s %-8s %s\n", rule.ID(), rule.DefaultSeverity(), rule.Title())
		}
	},
}
