package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"workday-mapper/internal/mapping"
	"workday-mapper/internal/match"
	"workday-mapper/internal/schema"
	"workday-mapper/internal/source"
)

var (
	automapService string
	automapSource  string
	automapGlobals string
	automapSession string

	splitCamel bool
)

var automapCmd = &cobra.Command{
	Use:   "automap",
	Short: "Suggest mappings from a source file to a service's fields",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, svc, err := loadService(automapService)
		if err != nil {
			return err
		}

		table, globals, err := loadSources(automapSource, automapGlobals)
		if err != nil {
			return err
		}

		matcher := newMatcher(splitCamel)

		var existing []mapping.FieldMapping

		if automapSession != "" {
			prev, err := mapping.LoadFile(automapSession)

			switch {
			case errors.Is(err, fs.ErrNotExist):
			case err != nil:
				return err
			case prev.Service == svc.Operation:
				existing = prev.Mappings
			}
		}

		res := matcher.AutoMap(svc.Fields, table.Descriptors(), globals, existing)
		dump("auto-map result", res)

		if err := printMappings(cmd, svc, res.Mappings); err != nil {
			return err
		}

		s := res.Stats
		fmt.Fprintf(cmd.OutOrStdout(), "\n%d/%d mapped (%d high, %d medium, %d low), %d unmapped\n",
			s.Mapped, s.Total, s.HighConfidence, s.MediumConfidence, s.LowConfidence, s.Unmapped)

		if automapSession == "" {
			return nil
		}

		row, _ := table.Row(0)
		session := &mapping.Session{
			Service:   svc.Operation,
			Mappings:  res.Mappings,
			SampleRow: row,
		}

		if err := mapping.WriteFile(session, automapSession); err != nil {
			return err
		}

		logger.Info("session written", "path", automapSession, "mappings", len(res.Mappings))

		return nil
	},
}

var (
	explainService string
	explainSource  string
	explainGlobals string
	explainField    string
	explainTop      int
	explainMinScore float64
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Rank every source for one target field with the score breakdown",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, svc, err := loadService(explainService)
		if err != nil {
			return err
		}

		tgt, ok := svc.FieldByName(explainField)
		if !ok {
			return fmt.Errorf("service %s has no field %q", svc.Operation, explainField)
		}

		table, globals, err := loadSources(explainSource, explainGlobals)
		if err != nil {
			return err
		}

		matcher := newMatcher(splitCamel)
		ranked := matcher.Rank(*tgt, table.Descriptors(), globals)

		w := newTable(cmd.OutOrStdout())
		fmt.Fprintln(w, "SOURCE\tTYPE\tSCORE\tCONFIDENCE\tEXACT\tCONTAIN\tWORDS\tCATEGORY\tSIMILARITY\tTYPE BONUS")

		for _, c := range ranked.AboveThreshold(explainMinScore).Top(explainTop) {
			b := matcher.Explain(c.Source, *tgt)
			fmt.Fprintf(w, "%s\t%s\t%.1f\t%s\t%t\t%.1f\t%.1f\t%.1f\t%.1f\t%.1f\n",
				c.Source.Label(), c.SourceType, c.Score, match.ConfidenceLabel(c.Score),
				b.Exact, b.Containment+b.DescriptionContainment, b.Words, b.Category, b.Similarity, b.TypeBonus)
		}

		if err := w.Flush(); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		minScore := matcher.Weights().MinScore

		if best := ranked.Best(); best != nil && best.Score >= minScore {
			fmt.Fprintf(out, "\nbest: %s (%s, %.1f %s)\n",
				best.Source.Label(), best.SourceType, best.Score, match.ConfidenceLabel(best.Score))
		} else {
			fmt.Fprintf(out, "\nno source reaches the %.0f suggestion threshold\n", minScore)
		}

		if ranked.IsAmbiguous(match.DefaultAmbiguityThreshold) {
			logger.Warn("top candidates are close, review manually", "field", tgt.Name)
		}

		return nil
	},
}

func init() {
	automapCmd.Flags().StringVarP(&automapService, "service", "s", "", "Service operation name")
	automapCmd.Flags().StringVar(&automapSource, "source", "", "Source file (.csv, .xlsx or .json)")
	automapCmd.Flags().StringVar(&automapGlobals, "globals", "", "Global attributes file (YAML or JSON)")
	automapCmd.Flags().StringVar(&automapSession, "session", "", "Session file to extend and write")
	automapCmd.Flags().BoolVar(&splitCamel, "split-camel", false, "Split camelCase source names into words")
	_ = automapCmd.MarkFlagRequired("service")
	_ = automapCmd.MarkFlagRequired("source")

	explainCmd.Flags().StringVarP(&explainService, "service", "s", "", "Service operation name")
	explainCmd.Flags().StringVar(&explainSource, "source", "", "Source file (.csv, .xlsx or .json)")
	explainCmd.Flags().StringVar(&explainGlobals, "globals", "", "Global attributes file (YAML or JSON)")
	explainCmd.Flags().StringVarP(&explainField, "field", "f", "", "Target field name")
	explainCmd.Flags().IntVar(&explainTop, "top", 10, "Number of candidates to show")
	explainCmd.Flags().Float64Var(&explainMinScore, "min-score", 0, "Hide candidates scoring below this")
	explainCmd.Flags().BoolVar(&splitCamel, "split-camel", false, "Split camelCase source names into words")
	_ = explainCmd.MarkFlagRequired("service")
	_ = explainCmd.MarkFlagRequired("source")
	_ = explainCmd.MarkFlagRequired("field")
}

func newMatcher(splitCamel bool) *match.Matcher {
	opts := []match.Option{match.WithLogger(logger)}
	if splitCamel {
		opts = append(opts, match.WithCamelCaseSplit())
	}

	return match.NewMatcher(opts...)
}

func loadSources(sourcePath, globalsPath string) (*source.Table, []source.Descriptor, error) {
	if sourcePath == "" {
		return nil, nil, errors.New("a source file is required")
	}

	table, err := source.LoadFile(sourcePath)
	if err != nil {
		return nil, nil, err
	}

	var globals []source.Descriptor

	if globalsPath != "" {
		globals, err = source.LoadGlobals(globalsPath)
		if err != nil {
			return nil, nil, err
		}
	}

	logger.Debug("sources loaded",
		"columns", len(table.Columns),
		"rows", len(table.Rows),
		"globals", len(globals),
	)

	return table, globals, nil
}

func printMappings(cmd *cobra.Command, svc *schema.Service, ms []mapping.FieldMapping) error {
	set := mapping.NewSet(ms...)
	w := newTable(cmd.OutOrStdout())

	fmt.Fprintln(w, "TARGET\tREQUIRED\tSOURCE TYPE\tSOURCE\tTYPE\tCONFIDENCE")

	for _, f := range svc.Fields {
		m, ok := set.Get(f.Name)
		if !ok || !m.IsMapped() {
			fmt.Fprintf(w, "%s\t%t\t%s\t\t\t\n", f.Name, f.Required, mapping.SourceUnmapped)

			continue
		}

		conf := "manual"
		if m.Confidence != nil {
			conf = fmt.Sprintf("%.1f %s", *m.Confidence, match.ConfidenceLabel(*m.Confidence))
		}

		fmt.Fprintf(w, "%s\t%t\t%s\t%s\t%s\t%s\n", f.Name, f.Required, m.SourceType, m.SourceValue, m.TypeValue, conf)
	}

	return w.Flush()
}
