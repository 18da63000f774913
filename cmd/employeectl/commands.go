package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newImportCmd(opts *cliOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.csv>",
		Short: "Import employees from a CSV file",
		Long: `Reads a CSV file with name, email and salary columns. Valid rows are stored
in one batch. Invalid rows are reported with their line number and skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeFn()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()

			result, err := svc.ImportCSV(filepath.Base(args[0]), f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Successfully added %d employees from the CSV!\n", result.Imported)
			for _, rejected := range result.Rejected {
				for _, fe := range rejected.Errors {
					fmt.Fprintf(out, "Skipped line %d: %s: %s\n", rejected.Line, fe.Field, fe.Message)
				}
			}
			return nil
		},
	}
}

func newExportCmd(opts *cliOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export every employee as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeFn()

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			return svc.ExportCSV(w)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to this file instead of stdout")
	return cmd
}

func newListCmd(opts *cliOptions) *cobra.Command {
	var name, salary string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, closeFn, err := openService(opts)
			if err != nil {
				return err
			}
			defer closeFn()

			employees, err := svc.Filter(name, salary)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tSALARY")
			for _, e := range employees {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Email, e.Salary.String())
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Only employees whose name contains this text")
	cmd.Flags().StringVar(&salary, "salary", "", "Only employees earning at least this amount")
	return cmd
}
