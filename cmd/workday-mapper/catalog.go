package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"workday-mapper/internal/diagnostic"
	"workday-mapper/internal/functions"
	"workday-mapper/internal/schema"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect the service catalog",
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog services",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		w := newTable(cmd.OutOrStdout())
		fmt.Fprintln(w, "OPERATION\tLABEL\tCATEGORY\tVERSION\tFIELDS\tREQUIRED\tCHOICE GROUPS")

		for _, name := range cat.Names() {
			svc, err := cat.Service(name)
			if err != nil {
				return err
			}

			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
				svc.Operation, svc.Label, svc.Category, svc.Version,
				len(svc.Fields), len(svc.RequiredFields()), len(svc.ChoiceGroups))
		}

		return w.Flush()
	},
}

var showByCategory bool

var catalogShowCmd = &cobra.Command{
	Use:   "show SERVICE",
	Short: "Print a service definition as YAML",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, svc, err := loadService(args[0])
		if err != nil {
			return err
		}

		if showByCategory {
			return printFieldsByCategory(cmd, svc)
		}

		data, err := schema.Marshal(svc)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

var catalogCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check every service template against its fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		var all diagnostic.Diagnostics

		for _, name := range cat.Names() {
			svc, err := cat.Service(name)
			if err != nil {
				return err
			}

			all.Merge(schema.Check(svc))
		}

		printDiagnostics(cmd.OutOrStdout(), all)

		if err := all.Error(); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d services ok\n", len(cat.Names()))

		return nil
	},
}

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the dynamic functions a mapping can use",
	RunE: func(cmd *cobra.Command, _ []string) error {
		w := newTable(cmd.OutOrStdout())
		fmt.Fprintln(w, "ID\tCATEGORY\tLABEL\tDESCRIPTION")

		for _, fn := range functions.Default().All() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", fn.ID, fn.Category, fn.Label, fn.Description)
		}

		return w.Flush()
	},
}

func init() {
	catalogShowCmd.Flags().BoolVar(&showByCategory, "by-category", false, "List fields grouped by category instead of YAML")
	catalogCmd.AddCommand(catalogListCmd, catalogShowCmd, catalogCheckCmd)
}

func printFieldsByCategory(cmd *cobra.Command, svc *schema.Service) error {
	byCategory := svc.FieldsByCategory()
	w := newTable(cmd.OutOrStdout())

	for _, category := range svc.Categories() {
		fmt.Fprintf(w, "[%s]\n", category)

		for _, f := range byCategory[category] {
			fmt.Fprintf(w, "  %s\t%s\t%t\t%s\n", f.Name, f.Type, f.Required, f.Path)
		}
	}

	return w.Flush()
}
