package cmd

import (
	"github.com/spf13/cobra"
)

// newDeleteCmd represents the delete command
func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <handle>",
		Short: "Delete a link",
		Long: `Delete the link stored under a handle.

Example:
  freyjalink delete 2dXa...`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			parser, err := a.parser()
			if err != nil {
				return err
			}

			id, err := parser.Parse(args[0])
			if err != nil {
				return err
			}
			if err := a.links.Delete(id); err != nil {
				return err
			}
			cmd.Printf("Deleted link %s\n", id)
			return nil
		},
	}
}
