package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/go-saleor-client/globalid"
)

func newIDCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "id",
		Short:             "Encode and decode global object IDs",
		PersistentPreRunE: skipInit,
	}
	cmd.AddCommand(&cobra.Command{
		Use:     "encode <type> <pk>",
		Short:   "Build the global ID of an object",
		Example: "  saleorctl id encode Product 72",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), globalid.Encode(args[0], args[1]))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "decode <id>",
		Short: "Print the type and primary key of a global ID",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, pk, err := globalid.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", typ, pk)
			return nil
		},
	})
	return cmd
}
