package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/pagehost/internal/infrastructure/config"
)

var configSchemaWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long:  `Print the configuration after defaults, environment overrides and normalization.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	Long: `Print the JSON schema editors use to validate config.toml.

With --write the schema is (re)written next to the config file instead.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configPathCmd, configSchemaCmd)

	configSchemaCmd.Flags().BoolVar(&configSchemaWrite, "write", false, "write the schema file next to config.toml")
}

func runConfigShow(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	data, err := config.EncodeTOML(a.Config)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	path := ""
	if a.ConfigManager != nil {
		path = a.ConfigManager.GetConfigFile()
	}
	if path == "" {
		if path, err = config.GetConfigFile(); err != nil {
			return err
		}
	}
	fmt.Println(path)
	return nil
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	if configSchemaWrite {
		path, err := config.GetSchemaFile()
		if err != nil {
			return err
		}
		if err := config.WriteSchema(path); err != nil {
			return err
		}
		fmt.Println(a.Theme.SuccessStyle.Render("schema written to " + path))
		return nil
	}

	data, err := config.SchemaJSON()
	if err != nil {
		return err
	}
	_, err = fmt.Println(string(data))
	return err
}
