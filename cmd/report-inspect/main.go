package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/rishavraj543256/Coca-Cola-Projects/internal/extract"
	"github.com/rishavraj543256/Coca-Cola-Projects/internal/pdffile"
)

var (
	outputFormat = flag.String("format", "text", "Output format: text, json")
	showPageText = flag.Bool("pagetext", false, "Dump the first page text before the extracted record")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *help {
		printHelp()
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintf(os.Stderr, "Error: PDF file path required\n\n")
		printUsage()
		os.Exit(1)
	}

	pdfPath := flag.Arg(0)
	if _, err := os.Stat(pdfPath); os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Error: File not found: %s\n", pdfPath)
		os.Exit(1)
	}

	record, err := inspectFile(pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error inspecting file: %v\n", err)
		os.Exit(1)
	}

	if err := outputRecord(record); err != nil {
		fmt.Fprintf(os.Stderr, "Error outputting results: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Report Inspect - extract fields from a single draft report PDF")
	fmt.Println()
	fmt.Println("Runs the extraction pipeline over one PDF and shows what each")
	fmt.Println("field resolved to. Useful when a report in a batch comes back")
	fmt.Println("with empty columns and you need to see why.")
	fmt.Println()
	printUsage()
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -format      Output format: text (default), json")
	fmt.Println("  -pagetext    Dump the first page text before the extracted record")
	fmt.Println("  -help        Show this help message")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  report-inspect 'Draft Report_KB1234.pdf'")
	fmt.Println("  report-inspect -format json report.pdf")
}

func printUsage() {
	fmt.Println("USAGE:")
	fmt.Println("  report-inspect [OPTIONS] <pdf_file>")
}

func inspectFile(pdfPath string) (*extract.DocumentRecord, error) {
	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := pdffile.Validate(absPath); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	f, err := pdffile.Open(absPath, pdffile.DefaultMaxFileSize)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if *showPageText {
		text, err := f.PageText(1)
		if err != nil {
			return nil, err
		}
		fmt.Println("---- page 1 ----")
		fmt.Println(text)
		fmt.Println("----------------")
	}

	extractor := extract.NewExtractor(log.Default())
	record := extractor.Extract(f)
	return &record, nil
}

func outputRecord(record *extract.DocumentRecord) error {
	switch *outputFormat {
	case "json":
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(record)
	case "text":
		return outputText(record)
	default:
		return fmt.Errorf("unsupported output format: %s", *outputFormat)
	}
}

func outputText(record *extract.DocumentRecord) error {
	fmt.Printf("File:         %s\n", record.FileName)
	fmt.Printf("Company:      %s\n", record.CompanyName)
	fmt.Printf("Project ID:   %s\n", record.ProjectID)
	fmt.Printf("Location:     %s\n", record.Location)
	fmt.Printf("Report Date:  %s\n", record.ReportDate)
	fmt.Printf("Survey ID:    %s\n", record.SurveyID)
	fmt.Printf("Requestor:    %s\n", record.Requestor)
	fmt.Printf("Summary Date: %s\n", record.SummaryDate)
	fmt.Println()

	if len(record.ManufacturerStatistics) == 0 {
		fmt.Println("No manufacturer statistics found")
		return nil
	}

	fmt.Printf("Manufacturer statistics (%d rows):\n", len(record.ManufacturerStatistics))
	for i, m := range record.ManufacturerStatistics {
		fmt.Printf("[%d] %s\n", i+1, m.ManufacturerName)
		if m.StockObservationPercentage != nil {
			fmt.Printf("    Stock observation: %.2f%%\n", *m.StockObservationPercentage)
		}
		printCount("Loose units", m.AffectedLooseUnits)
		printCount("Full cases", m.AffectedFullCases)
		printCount("Loose (repeat batch)", m.AffectedLooseRepeatBatch)
		printCount("Cases (repeat batch)", m.AffectedCasesRepeatBatch)
		if m.HasExponential {
			fmt.Println("    Note: exponent marker stripped from a count")
		}
	}
	return nil
}

func printCount(label string, v *int) {
	if v == nil {
		return
	}
	fmt.Printf("    %s: %d\n", label, *v)
}

func init() {
	flag.Usage = func() {
		printHelp()
	}
}
