package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jamidon/sqlgen"
	"github.com/jamidon/sqlgen/internal/config"
	"github.com/jamidon/sqlgen/internal/console"
)

var (
	dsn          string
	dialect      string
	schemaName   string
	outputFile   string
	outputDir    string
	format       string
	tables       string
	excludeList  string
	includeRe    string
	excludeRe    string
	packageName  string
	indent       string
	eol          string
	prependText  string
	appendText   string
	omitComments bool
	configPath   string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "sqlgen",
	Short: "Generate table definitions from a database schema",
	Long: `sqlgen introspects a relational database through information_schema and
generates source code containing declarative table definitions.

Supported databases: PostgreSQL, MySQL, SQL Server, and SQLite. The dialect
is detected from the connection string scheme (postgres://, mysql://,
sqlserver://, sqlite://) or forced with --dialect.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&dsn, "dsn", "", "Database connection string (or SQLGEN_DSN)")
	rootCmd.Flags().StringVar(&dialect, "dialect", "", "Force dialect: postgres, mysql, mssql, or sqlite")
	rootCmd.Flags().StringVarP(&schemaName, "schema", "s", "", "Database schema name (default: public for PostgreSQL, dbo for SQL Server)")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (default: stdout)")
	rootCmd.Flags().StringVarP(&outputDir, "output-dir", "d", "", "Output directory for one generated file per table")
	rootCmd.Flags().StringVarP(&format, "format", "f", "go", "Output format: go or dbml")
	rootCmd.Flags().StringVarP(&tables, "tables", "t", "", "Specific tables (comma-separated)")
	rootCmd.Flags().StringVar(&excludeList, "exclude-tables", "", "Tables to skip (comma-separated)")
	rootCmd.Flags().StringVar(&includeRe, "include", "", "Only generate tables matching this regular expression")
	rootCmd.Flags().StringVar(&excludeRe, "exclude", "", "Skip tables matching this regular expression")
	rootCmd.Flags().StringVar(&packageName, "package", "dbschema", "Generated Go package name (empty omits the package clause)")
	rootCmd.Flags().StringVar(&indent, "indent", "\t", "Indentation token")
	rootCmd.Flags().StringVar(&eol, "eol", "\n", "Line terminator token")
	rootCmd.Flags().StringVar(&prependText, "prepend", "", "Text placed after the generated header")
	rootCmd.Flags().StringVar(&appendText, "append", "", "Text placed at the end of the output")
	rootCmd.Flags().BoolVar(&omitComments, "omit-comments", false, "Suppress generated comments")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file (flags win over file values)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	// A .env next to the working directory may carry the DSN
	_ = godotenv.Load()

	if configPath != "" {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		applyConfig(cmd, cfg)
	}
	if dsn == "" {
		dsn = os.Getenv("SQLGEN_DSN")
	}
	if dsn == "" {
		return fmt.Errorf("a connection string is required (--dsn, config file, or SQLGEN_DSN)")
	}
	if outputFile != "" && outputDir != "" {
		return fmt.Errorf("cannot use both --output and --output-dir")
	}

	logger, err := newLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	opts := &sqlgen.Options{
		Dialect:       sqlgen.Dialect(dialect),
		SchemaName:    schemaName,
		Tables:        splitList(tables),
		ExcludeTables: splitList(excludeList),
		Include:       includeRe,
		Exclude:       excludeRe,
		Logger:        logger,
	}

	out := &sqlgen.OutputOptions{
		OutputDir:    outputDir,
		Format:       format,
		Package:      packageName,
		Indent:       indent,
		EOL:          eol,
		Prepend:      prependText,
		Append:       appendText,
		OmitComments: omitComments,
	}

	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			if err := f.Close(); err != nil {
				console.Warnf("warning: failed to close output file: %v", err)
			}
		}()
		out.Writer = f
	}

	if verbose {
		console.Infof("%s", connectLine(dsn))
	}

	stats, err := sqlgen.Run(context.Background(), dsn, opts, out)
	if err != nil {
		return err
	}

	if stats.Tables == 0 {
		console.Warnf("no tables matched")
		return nil
	}
	console.Successf("%s", summaryLine(stats))
	return nil
}

// applyConfig fills in settings from the config file for every flag the
// user did not set explicitly.
func applyConfig(cmd *cobra.Command, cfg *config.Config) {
	set := func(name string, dst *string, val string) {
		if val != "" && !cmd.Flags().Changed(name) {
			*dst = val
		}
	}

	set("dsn", &dsn, cfg.DSN)
	set("dialect", &dialect, cfg.Dialect)
	set("schema", &schemaName, cfg.Schema)
	set("output", &outputFile, cfg.Output)
	set("output-dir", &outputDir, cfg.OutputDir)
	set("format", &format, cfg.Format)
	set("include", &includeRe, cfg.Include)
	set("exclude", &excludeRe, cfg.Exclude)
	set("package", &packageName, cfg.Package)
	set("indent", &indent, cfg.Indent)
	set("eol", &eol, cfg.EOL)
	set("prepend", &prependText, cfg.Prepend)
	set("append", &appendText, cfg.Append)

	if len(cfg.Tables) > 0 && !cmd.Flags().Changed("tables") {
		tables = strings.Join(cfg.Tables, ",")
	}
	if len(cfg.ExcludeTables) > 0 && !cmd.Flags().Changed("exclude-tables") {
		excludeList = strings.Join(cfg.ExcludeTables, ",")
	}
	if cfg.OmitComments && !cmd.Flags().Changed("omit-comments") {
		omitComments = true
	}
	if cfg.Verbose && !cmd.Flags().Changed("verbose") {
		verbose = true
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func connectLine(dsn string) string {
	return "connecting to " + sqlgen.MaskDSN(dsn)
}

func summaryLine(stats *sqlgen.Stats) string {
	return fmt.Sprintf("generated %d tables (%d columns, %d bytes) in %s",
		stats.Tables, stats.Columns, stats.BytesWritten, stats.Elapsed.Round(time.Millisecond))
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		console.Errorf("sqlgen: %v", err)
		os.Exit(1)
	}
}
