/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ssargent/freyjalink/pkg/config"
	"github.com/ssargent/freyjalink/pkg/handle"
)

// newInitCmd represents the init command
func newInitCmd() *cobra.Command {
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a FreyjaLink configuration file",
		Long: `Write a default FreyjaLink configuration file.

The handle type is fixed for the life of a store: every link record is a
concatenation of handles of exactly this width.

Examples:
  freyjalink init --data-dir=./data
  freyjalink init --handle-type=fixed --handle-width=16 --config=./freyjalink.yaml`,
		Annotations: map[string]string{skipStoreAnnotation: "true"},
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")
			handleType, _ := cmd.Flags().GetString("handle-type")
			handleWidth, _ := cmd.Flags().GetInt("handle-width")

			cfg, configPath, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if config.ConfigExists(configPath) && !force {
				cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", configPath)
				return nil
			}

			cfg.Handle = config.Handle{Type: handleType, Width: handleWidth}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if err := config.SaveConfig(cfg, configPath); err != nil {
				return err
			}

			factory, err := cfg.HandleFactory()
			if err != nil {
				return err
			}
			cmd.Printf("Wrote config to %s\n", configPath)
			cmd.Printf("Data directory: %s\n", cfg.DataDir)
			cmd.Printf("Handle type: %s (%d bytes)\n", cfg.Handle.Type, handle.Width(factory))
			return nil
		},
	}

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
	initCmd.Flags().String("handle-type", handle.KindKSUID, fmt.Sprintf("Handle type (%s or %s)", handle.KindKSUID, handle.KindFixed))
	initCmd.Flags().Int("handle-width", 0, "Handle width in bytes for fixed handles")
	return initCmd
}
