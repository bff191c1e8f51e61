package main

import (
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"workday-mapper/internal/pathresolve"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	resolveJSON     string
	resolvePath     string
	resolveCriteria []string
	resolveSmart    string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve a JSON path, with wildcards and element criteria, against a payload",
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := readJSON(resolveJSON)
		if err != nil {
			return err
		}

		criteria, err := parseCriteria(resolveCriteria)
		if err != nil {
			return err
		}

		r := pathresolve.New(pathresolve.WithLogger(logger))

		var (
			value any
			ok    bool
		)

		if resolveSmart != "" {
			sample, err := readJSON(resolveSmart)
			if err != nil {
				return err
			}

			sm := pathresolve.CreateSmartMapping(resolvePath, resolvePath, sample)
			dump("smart mapping", sm)

			value, ok = r.Apply(data, sm)
		} else {
			value, ok = r.Resolve(data, resolvePath, criteria)
		}

		if !ok {
			return fmt.Errorf("path %q did not resolve", resolvePath)
		}

		out, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode value: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), string(out))

		return nil
	},
}

var describePath string

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Render a JSON path in readable form",
	Run: func(cmd *cobra.Command, _ []string) {
		p := pathresolve.CreatePathPattern(describePath)

		fmt.Fprintln(cmd.OutOrStdout(), pathresolve.DescribePath(describePath))
		fmt.Fprintf(cmd.OutOrStdout(), "pattern: %s\n", p.Pattern)
	},
}

func init() {
	resolveCmd.Flags().StringVar(&resolveJSON, "json", "", "JSON payload file")
	resolveCmd.Flags().StringVarP(&resolvePath, "path", "p", "", "Path, e.g. data.items[*].value")
	resolveCmd.Flags().StringArrayVar(&resolveCriteria, "criteria", nil, "Element criteria key=value (repeatable)")
	resolveCmd.Flags().StringVar(&resolveSmart, "smart", "", "Sample payload to infer matching criteria from")
	_ = resolveCmd.MarkFlagRequired("json")
	_ = resolveCmd.MarkFlagRequired("path")

	describeCmd.Flags().StringVarP(&describePath, "path", "p", "", "Path to describe")
	_ = describeCmd.MarkFlagRequired("path")
}

func readJSON(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	return pathresolve.DecodeJSON(data)
}

func parseCriteria(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	out := make(map[string]any, len(pairs))

	for _, p := range pairs {
		k, v, ok := strings.Cut(p, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("criteria %q: expected key=value", p)
		}

		out[k] = v
	}

	return out, nil
}
