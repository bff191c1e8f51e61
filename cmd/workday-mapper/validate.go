package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"workday-mapper/internal/choice"
	"workday-mapper/internal/diagnostic"
	"workday-mapper/internal/functions"
	"workday-mapper/internal/mapping"
)

var validateSession string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a mapping session and its choice selections",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := mapping.LoadFile(validateSession)
		if err != nil {
			return err
		}

		_, svc, err := loadService(s.Service)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		diags := mapping.Validate(s, svc, functions.Default())
		printDiagnostics(out, diags)

		sel := choice.Selections(s.ChoiceSelections)
		vals := choice.Values(s.ChoiceFieldValues)

		res := choice.Validate(svc.ChoiceGroups, sel, vals)
		sum := choice.Summary(svc.ChoiceGroups, sel, vals)
		dump("choice validation", res)

		for _, k := range res.ErrorKeys() {
			fmt.Fprintf(out, "choice: %s: %s\n", k, res.Errors[k])
		}

		fmt.Fprintf(out, "choice groups: %d total, %d valid, %d invalid, %d unselected; required fields %d/%d\n",
			sum.TotalGroups, sum.ValidGroups, sum.InvalidGroups, sum.UnselectedGroups,
			sum.RequiredFilled, sum.RequiredTotal)

		return errors.Join(diags.Error(), res.Err())
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSession, "session", "", "Session file (YAML or JSON)")
	_ = validateCmd.MarkFlagRequired("session")
}

func printDiagnostics(w io.Writer, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}
}
