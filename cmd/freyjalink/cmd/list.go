package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/ssargent/freyjalink/pkg/handle"
)

// newListCmd represents the list command
func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every stored link",
		Long: `List every stored link as "<handle>: <target> <target> ...".

A corrupt record stops the listing with an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := appFrom(cmd)
			if err != nil {
				return err
			}
			return a.links.Scan(func(id handle.Handle, link []handle.Handle) error {
				targets := make([]string, len(link))
				for i, t := range link {
					targets[i] = t.String()
				}
				cmd.Printf("%s: %s\n", id, strings.Join(targets, " "))
				return nil
			})
		},
	}
}
