package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"workday-mapper/internal/logging"
	"workday-mapper/internal/schema"
)

var (
	logLevel   string
	dumpValues bool
	catalogDir string

	logger = logging.New()
)

var rootCmd = &cobra.Command{
	Use:   "workday-mapper",
	Short: "Map source data onto Workday web-service requests",
	Long: `workday-mapper suggests mappings from spreadsheet columns and global
attributes to Workday target fields, validates mapping sessions and renders
the SOAP request for a service.`,
	SilenceUsage: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetLevel(logLevel)
	},
}

func init() {
	rootCmd.AddCommand(
		automapCmd,
		explainCmd,
		validateCmd,
		generateCmd,
		instructionsCmd,
		resolveCmd,
		describeCmd,
		functionsCmd,
		catalogCmd,
	)

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&dumpValues, "dump", false, "Dump intermediate values to stderr")
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog", "", "Service YAML file or directory of them (default: built-in catalog)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadCatalog reads --catalog as a directory of service files or a single
// service file, falling back to the built-in catalog.
func loadCatalog() (*schema.Catalog, error) {
	if catalogDir == "" {
		return schema.LoadCatalog()
	}

	info, err := os.Stat(catalogDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", catalogDir, err)
	}

	if info.IsDir() {
		return schema.LoadCatalogDir(catalogDir)
	}

	svc, err := schema.LoadServiceFile(catalogDir)
	if err != nil {
		return nil, err
	}

	cat := schema.NewCatalog()
	if err := cat.Add(svc); err != nil {
		return nil, err
	}

	return cat, nil
}

func loadService(name string) (*schema.Catalog, *schema.Service, error) {
	cat, err := loadCatalog()
	if err != nil {
		return nil, nil, err
	}

	svc, err := cat.Service(name)
	if err != nil {
		return nil, nil, err
	}

	return cat, svc, nil
}

// dump writes a go-spew rendering of v to stderr when --dump is set.
func dump(label string, v any) {
	if !dumpValues {
		return
	}

	fmt.Fprintf(os.Stderr, "--- %s\n", label)
	spew.Fdump(os.Stderr, v)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
