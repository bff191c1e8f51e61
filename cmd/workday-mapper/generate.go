package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"workday-mapper/internal/functions"
	"workday-mapper/internal/mapping"
	"workday-mapper/internal/pathresolve"
	"workday-mapper/internal/soapgen"
	"workday-mapper/internal/source"
)

var (
	generateSession      string
	generateSource       string
	generateRow          int
	generatePayload      string
	generateOut          string
	generateInstructions bool

	tenantURL      string
	serviceVersion string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the SOAP request of a mapping session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := mapping.LoadFile(generateSession)
		if err != nil {
			return err
		}

		cat, err := loadCatalog()
		if err != nil {
			return err
		}

		row, err := sampleRow(s)
		if err != nil {
			return err
		}

		req := soapgen.RequestFromSession(s, row)
		dump("request", req)

		cfg := soapgen.DefaultConfig()
		cfg.Credential = credential()

		gen := soapgen.NewGenerator(cfg,
			soapgen.WithFunctions(functions.Default()),
			soapgen.WithLogger(logger.With("service", s.Service)),
		)

		xml, err := gen.GenerateFor(cat, s.Service, req)
		if err != nil {
			return err
		}

		if generateInstructions {
			xml += "\n\n" + soapgen.PostmanInstructions(cfg.Credential, s.Service)
		}

		if generateOut != "" {
			if err := soapgen.WriteFile(generateOut, xml); err != nil {
				return err
			}

			logger.Info("request written", "path", generateOut, "service", s.Service)

			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), xml)

		return nil
	},
}

var instructionsOperation string

var instructionsCmd = &cobra.Command{
	Use:   "instructions",
	Short: "Print the steps for sending a request from Postman",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), soapgen.PostmanInstructions(credential(), instructionsOperation))
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateSession, "session", "", "Session file (YAML or JSON)")
	generateCmd.Flags().StringVar(&generateSource, "source", "", "Source file to take the sample row from")
	generateCmd.Flags().IntVar(&generateRow, "row", 0, "Zero-based row of --source")
	generateCmd.Flags().StringVar(&generatePayload, "payload", "", "JSON payload the session's smart paths resolve against")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Write the request to a file instead of stdout")
	generateCmd.Flags().BoolVar(&generateInstructions, "instructions", false, "Append Postman setup steps")
	generateCmd.Flags().StringVar(&tenantURL, "tenant", "", "Tenant service URL")
	generateCmd.Flags().StringVar(&serviceVersion, "version", "", "Web-service version, overrides the catalog")
	_ = generateCmd.MarkFlagRequired("session")

	instructionsCmd.Flags().StringVar(&instructionsOperation, "operation", soapgen.DefaultOperation, "SOAP operation name")
	instructionsCmd.Flags().StringVar(&tenantURL, "tenant", "", "Tenant service URL")
	instructionsCmd.Flags().StringVar(&serviceVersion, "version", "", "Web-service version")
}

func credential() *soapgen.Credential {
	if tenantURL == "" && serviceVersion == "" {
		return nil
	}

	return &soapgen.Credential{TenantURL: tenantURL, Version: serviceVersion}
}

// sampleRow picks the row mapped values are read from: a row of --source,
// else the session's stored row, extended by smart paths over --payload.
func sampleRow(s *mapping.Session) (map[string]any, error) {
	if generateSource != "" {
		table, err := source.LoadFile(generateSource)
		if err != nil {
			return nil, err
		}

		row, ok := table.Row(generateRow)
		if !ok {
			return nil, fmt.Errorf("source %s has no row %d", generateSource, generateRow)
		}

		s.SampleRow = row
	}

	if generatePayload == "" {
		return nil, nil
	}

	data, err := os.ReadFile(generatePayload)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload %s: %w", generatePayload, err)
	}

	payload, err := pathresolve.DecodeJSON(data)
	if err != nil {
		return nil, err
	}

	return s.SampleWithPayload(payload, pathresolve.New(pathresolve.WithLogger(logger))), nil
}
