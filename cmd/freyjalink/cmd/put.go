package cmd

import (
	"github.com/spf13/cobra"
	"github.com/ssargent/freyjalink/pkg/handle"
)

// newPutCmd represents the put command
func newPutCmd() *cobra.Command {
	putCmd := &cobra.Command{
		Use:   "put <target>...",
		Short: "Store a link",
		Long: `Store a link to the given targets, in order.

Without --handle a new handle is generated for the link. With --handle the
link stored under that handle is replaced.

Example:
  freyjalink put 2dXy... 2dXz...
  freyjalink put --handle 2dXa... 2dXy...`,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			parser, err := a.parser()
			if err != nil {
				return err
			}

			targets := make([]handle.Handle, len(args))
			for i, raw := range args {
				if targets[i], err = parser.Parse(raw); err != nil {
					return err
				}
			}

			if raw, _ := cmd.Flags().GetString("handle"); raw != "" {
				id, err := parser.Parse(raw)
				if err != nil {
					return err
				}
				if err := a.links.Update(id, targets); err != nil {
					return err
				}
				cmd.Println(id.String())
				return nil
			}

			id, err := a.links.Create(targets)
			if err != nil {
				return err
			}
			a.logger.Debug("link created", "handle", id.String(), "targets", len(targets))
			cmd.Println(id.String())
			return nil
		},
	}

	putCmd.Flags().String("handle", "", "Replace the link stored under this handle")
	return putCmd
}
