package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/llehouerou/go-saleor-client/document"
)

func skipInit(*cobra.Command, []string) error { return nil }

func newDocumentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "document",
		Short:             "Inspect the operations sent by the client",
		PersistentPreRunE: skipInit,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "print [operation]",
		Short: "Print one or all operation documents",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := operationNames()
			if len(args) == 1 {
				names = args
			}
			for _, name := range names {
				doc, ok := document.Operations[name]
				if !ok {
					return fmt.Errorf("unknown operation %q", name)
				}
				fmt.Fprintln(cmd.OutOrStdout(), document.Print(doc))
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a document file, or the built-in operations, against the schema",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs := map[string]*ast.QueryDocument{}
			if len(args) == 1 {
				src, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				doc, err := document.Parse(string(src))
				if err != nil {
					return err
				}
				docs[args[0]] = doc
			} else {
				docs = document.Operations
			}
			names := make([]string, 0, len(docs))
			for name := range docs {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				if err := document.Validate(docs[name]); err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", name)
			}
			return nil
		},
	})
	return cmd
}

func operationNames() []string {
	names := make([]string, 0, len(document.Operations))
	for name := range document.Operations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
