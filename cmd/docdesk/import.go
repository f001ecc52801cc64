package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/dgallion1/docdesk/internal/docstore"
	"github.com/dgallion1/docdesk/internal/parser"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		out         string
		concurrency int
		pdftotext   bool
	)
	cmd := &cobra.Command{
		Use:   "import <dir>",
		Short: "Build a store file from a directory of documents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			im := &parser.Importer{
				Log:                  a.log,
				Concurrency:          concurrency,
				PDFFallbackPdftotext: pdftotext,
			}
			store, err := im.Import(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := store.Encode(&buf); err != nil {
				return err
			}
			// The output must load in serve.
			if err := docstore.Validate(buf.Bytes()); err != nil {
				return fmt.Errorf("generated store is invalid: %w", err)
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			return os.WriteFile(out, buf.Bytes(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "parallel parsers (default GOMAXPROCS)")
	cmd.Flags().BoolVar(&pdftotext, "pdftotext", true, "fall back to pdftotext for PDFs the Go reader cannot handle")
	return cmd
}
