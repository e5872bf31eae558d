package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/apaliavy/golangcodestyle/lint"
)

const defaultConfigName = ".gostyle.yaml"

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with every rule at its default severity",
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = defaultConfigName
		}
		if err := writeDefaultConfig(path); err != nil {
			logger.Error("failed to write the configuration file", zap.Error(err))
			return
		}
		fmt.Printf("configuration file created: %s\n", path)
	},
}

func writeDefaultConfig(path string) error {
	cfg, err := lint.DefaultConfig()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
