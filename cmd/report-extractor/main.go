package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/google/uuid"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/config"
	"github.com/rishavraj543256/Coca-Cola-Projects/internal/extract"
	"github.com/rishavraj543256/Coca-Cola-Projects/internal/pdffile"
	"github.com/rishavraj543256/Coca-Cola-Projects/internal/report"
	"github.com/rishavraj543256/Coca-Cola-Projects/internal/workbook"
)

var (
	version   = "dev"     // This will be set by build flags
	buildTime = "unknown" // This will be set by build flags
	gitCommit = "unknown" // This will be set by build flags
)

// BatchResult is the full output of one extraction run.
type BatchResult struct {
	RunID             string                        `json:"run_id"`
	GeneratedAt       string                        `json:"generated_at"`
	Source            string                        `json:"source"`
	BasicInfo         []report.BasicInfoRow         `json:"basic_info"`
	ManufacturerStats []report.ManufacturerStatsRow `json:"manufacturer_stats"`
	InjuredTracker    []report.InjuredTrackerRow    `json:"injured_tracker"`
	SourceReport      []report.SourceReportRow      `json:"source_report_summary"`
}

// setupLogging configures logging based on the configured level
func setupLogging(cfg *config.Config) {
	log.SetOutput(os.Stderr)
	if cfg.IsDebug() {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}
}

func main() {
	// Check for version flag before parsing other flags
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			printVersion()
			return
		}
	}

	// Load configuration from flags first
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	if cfg.IsDebug() {
		log.Printf("Starting with configuration: %s", cfg.String())
	}

	tables, source, err := buildTables(cfg)
	if errors.Is(err, report.ErrNoRecords) {
		// an empty batch is a no-op, not a failure
		log.Println("No matching PDF files found or no data extracted")
		return
	}
	if err != nil {
		log.Fatalf("Failed to build extraction tables: %v", err)
	}

	codes := report.DefaultBottlerCodes()
	for _, override := range cfg.BottlerCodes {
		codes = append(codes, report.BottlerCode{FullName: override.Name, Code: override.Code})
	}

	injured, summary := report.DeriveReports(tables, codes)

	result := &BatchResult{
		RunID:             uuid.NewString(),
		GeneratedAt:       time.Now().Format(time.RFC3339),
		Source:            source,
		BasicInfo:         tables.BasicInfo,
		ManufacturerStats: tables.ManufacturerStats,
		InjuredTracker:    injured,
		SourceReport:      summary,
	}

	if err := writeResult(cfg, result); err != nil {
		log.Fatalf("Failed to write results: %v", err)
	}

	log.Printf("Compiled %d report rows and %d manufacturer rows", len(result.BasicInfo), len(result.ManufacturerStats))
}

// buildTables produces the extraction tables either from an existing
// workbook or from a directory of draft report PDFs.
func buildTables(cfg *config.Config) (*report.Tables, string, error) {
	if cfg.IsWorkbookMode() {
		tables, err := workbook.ReadTables(cfg.WorkbookPath)
		if err != nil {
			return nil, "", fmt.Errorf("read workbook %s: %w", cfg.WorkbookPath, err)
		}
		return tables, cfg.WorkbookPath, nil
	}
	tables, err := extractDirectory(cfg)
	if err != nil {
		return nil, "", err
	}
	return tables, cfg.InputDir, nil
}

// extractDirectory runs the extraction pipeline over every PDF found
// under the input directory. Individual document failures are logged
// and skipped so one bad file cannot abort the batch.
func extractDirectory(cfg *config.Config) (*report.Tables, error) {
	paths, err := pdffile.FindPDFs(cfg.InputDir)
	if err != nil {
		return nil, fmt.Errorf("scan directory %s: %w", cfg.InputDir, err)
	}
	log.Printf("Found %d PDF files in %s", len(paths), cfg.InputDir)

	extractor := extract.NewExtractorWithKeywords(cfg.FilenameKeywords, log.Default())
	agg := report.NewAggregator(extractor, log.Default())

	for _, path := range paths {
		if err := processFile(cfg, agg, path); err != nil {
			log.Printf("Skipping %s: %v", path, err)
		}
	}

	tables, err := agg.Tables()
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// processFile validates, opens and processes one PDF.
func processFile(cfg *config.Config, agg *report.Aggregator, path string) error {
	if err := pdffile.Validate(path); err != nil {
		return fmt.Errorf("validate: %w", err)
	}

	f, err := pdffile.Open(path, cfg.MaxFileSize)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	agg.Process(f)
	return nil
}

// writeResult encodes the batch result as indented JSON to the
// configured output path, or stdout when none was given.
func writeResult(cfg *config.Config, result *BatchResult) error {
	out := os.Stdout
	if cfg.OutputPath != "" {
		f, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// printVersion prints version information
func printVersion() {
	fmt.Printf("Report Extractor\n")
	fmt.Printf("Version: %s\n", version)
	fmt.Printf("Build Time: %s\n", buildTime)
	fmt.Printf("Git Commit: %s\n", gitCommit)
	fmt.Printf("Built with: %s\n", runtime.Version())
}
