package cmd

import (
	"github.com/spf13/cobra"
)

// newGetCmd represents the get command
func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <handle>",
		Short: "Print the targets of a link",
		Long: `Print the targets of a link, one per line, in stored order.

Example:
  freyjalink get 2dXa...`,
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
			link, err := a.links.Read(id)
			if err != nil {
				return err
			}
			for _, target := range link {
				cmd.Println(target.String())
			}
			return nil
		},
	}
}
