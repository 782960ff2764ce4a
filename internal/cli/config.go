package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/licensetracker/pkg/config"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration",
		Long: `Inspect where configuration is read from and which values apply.

Config files are looked up in this order: --config, $LICENSETRACKER_CONFIG,
then licensetracker.toml, config.toml, config.yaml, config.yml and
config.json in the working directory.`,
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file (default: search the working directory)")

	cmd.AddCommand(c.configPathCommand(&configPath))
	cmd.AddCommand(c.configShowCommand(&configPath))
	return cmd
}

func (c *CLI) configPathCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Find(c.dir(), *configPath)
			if err != nil {
				return err
			}
			if path == "" {
				printKeyValue(c.Out, "config", StyleDim.Render("none (using defaults)"))
				return nil
			}
			printKeyValue(c.Out, "config", path)
			return nil
		},
	}
}

func (c *CLI) configShowCommand(configPath *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := config.Load(c.dir(), *configPath)
			if err != nil {
				return err
			}
			if format == "" {
				format = strings.TrimPrefix(filepath.Ext(path), ".")
			}
			if format == "" {
				format = "toml"
			}
			if err := config.Encode(c.Out, cfg, format); err != nil {
				return fmt.Errorf("encode config: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: toml, yaml or json (default: format of the file in use)")
	return cmd
}
