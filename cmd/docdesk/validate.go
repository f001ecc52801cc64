package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/spf13/cobra"
)

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [path]",
		Short: "Check a store file against the schema and for dangling ids",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.DocsPath
			if len(args) == 1 {
				path = args[0]
			}
			return validateStore(cmd, path)
		},
	}
}

func validateStore(cmd *cobra.Command, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	store, err := docstore.Parse(data)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", path, err)
		return err
	}

	problems := store.Check()
	for _, p := range problems {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", path, p)
	}
	if len(problems) > 0 {
		return errors.New("store has problems")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d folders, %d documents)\n", path, len(store.Folders), len(store.Files))
	return nil
}
