// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the ado-pipeline-doc CLI. It reads an
// Azure DevOps pipeline YAML file and renders its parameters as a markdown
// table, either to the console or spliced into a target document between
// the ADOPipelineDoc marker lines.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/ado-pipeline-doc/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command; the tool has a single operation, so the root
// command does the work itself.
var rootCmd = &cobra.Command{
	Use:   "ado-pipeline-doc YAMLFILE",
	Short: "Generate markdown documentation for Azure DevOps pipeline parameters",
	Long: `ado-pipeline-doc reads the parameters section of an Azure DevOps pipeline
YAML file and renders it as a markdown table. Without --markdown-file the
table is printed to the console; with it, the table is written into the
target document between the literal lines

  <!-- ADOPipelineDoc Start -->
  <!-- ADOPipelineDoc End -->

replacing whatever was between them on the previous run. A target without
markers gets the block appended; a missing target is created.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := types.DocConfig{Indent: types.DefaultIndent}
		if err := viper.Unmarshal(&cfg); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
		if mdFile, _ := cmd.Flags().GetString("markdown-file"); mdFile != "" {
			cfg.MarkdownFile = mdFile
		}
		if cmd.Flags().Changed("indent") {
			cfg.Indent, _ = cmd.Flags().GetInt("indent")
		}

		return run(args[0], cfg, os.Stdout)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./ado-pipeline-doc.yaml or ~/.config/ado-pipeline-doc/config.yaml)")
	rootCmd.Flags().String("markdown-file", "", "target markdown document; omit to print the table to the console")
	rootCmd.Flags().Int("indent", types.DefaultIndent, "YAML indent for pretty-printed object cells")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("ado-pipeline-doc")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "ado-pipeline-doc"))
		}
	}

	viper.SetEnvPrefix("ADO_PIPELINE_DOC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
