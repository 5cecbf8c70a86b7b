// Command docid is the offline CLI front-end for the identifier
// pipeline, mirroring the subcommand layout of the original
// implementation's argparse-based CLI (process, batch, verify) plus a
// generate-id command for producing an identifier from typed-in field
// values without running OCR at all.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/facturaIA/docid-service/internal/config"
	"github.com/facturaIA/docid-service/internal/identifier"
	"github.com/facturaIA/docid-service/internal/logging"
	"github.com/facturaIA/docid-service/internal/models"
	"github.com/facturaIA/docid-service/internal/pipeline"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "process":
		cmdProcess(os.Args[2:])
	case "batch":
		cmdBatch(os.Args[2:])
	case "verify":
		cmdVerify(os.Args[2:])
	case "generate-id":
		cmdGenerateID(os.Args[2:])
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `docid - deterministic document identifier generator

Usage:
  docid process [--prefix DOC] file...
  docid batch [--prefix DOC] [-o results.json] directory
  docid verify [--prefix DOC] file expected-id
  docid generate-id --type invoice --nip NIP --number NUM --date DATE --amount AMT`)
}

func cmdProcess(args []string) {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	prefix := fs.String("prefix", "DOC", "identifier prefix")
	output := fs.String("o", "", "save results to a JSON file")
	quiet := fs.Bool("q", false, "suppress per-file output")
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "process requires at least one file")
		os.Exit(1)
	}

	p := pipeline.New(*prefix, logging.New(quietLoggingConfig()))
	ctx := context.Background()

	var results []map[string]any
	for _, file := range files {
		doc, err := p.Process(ctx, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error processing %s: %v\n", file, err)
			continue
		}
		if !*quiet {
			line := fmt.Sprintf("%s: %s", file, doc.DocumentID)
			if doc.Duplicate {
				line += " (duplicate)"
			}
			fmt.Println(line)
		}
		results = append(results, map[string]any{
			"file":        file,
			"document_id": doc.DocumentID,
			"type":        doc.Kind,
			"confidence":  doc.Confidence,
			"duplicate":   doc.Duplicate,
		})
	}

	if *output != "" {
		writeJSONFile(*output, results)
		fmt.Printf("Results saved to: %s\n", *output)
	}
}

func cmdBatch(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	prefix := fs.String("prefix", "DOC", "identifier prefix")
	output := fs.String("o", "", "save results to a JSON file")
	fs.Parse(args)

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "batch requires exactly one directory")
		os.Exit(1)
	}
	dir := fs.Arg(0)

	p := pipeline.New(*prefix, logging.New(quietLoggingConfig()))
	results, err := p.Batch(context.Background(), dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "batch failed: %v\n", err)
		os.Exit(1)
	}

	duplicates := 0
	byType := map[string]int{}
	var out []map[string]any
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(os.Stderr, "error processing %s: %v\n", r.Path, r.Err)
			continue
		}
		if r.Document.Duplicate {
			duplicates++
		}
		byType[string(r.Document.Kind)]++
		out = append(out, map[string]any{
			"file":        r.Path,
			"document_id": r.Document.DocumentID,
			"type":        r.Document.Kind,
			"duplicate":   r.Document.Duplicate,
		})
	}

	fmt.Printf("\n%s\n", divider())
	fmt.Printf("Processed: %d documents\n", len(out))
	fmt.Printf("Duplicates found: %d\n", duplicates)
	fmt.Printf("%s\n\n", divider())

	fmt.Println("By document type:")
	for kind, count := range byType {
		fmt.Printf("  %s: %d\n", kind, count)
	}

	if *output != "" {
		writeJSONFile(*output, out)
		fmt.Printf("Results saved to: %s\n", *output)
	}
}

func cmdVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	prefix := fs.String("prefix", "DOC", "identifier prefix")
	fs.Parse(args)

	if fs.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "verify requires a file and an expected id")
		os.Exit(1)
	}
	file, expectedID := fs.Arg(0), fs.Arg(1)

	p := pipeline.New(*prefix, logging.New(quietLoggingConfig()))
	ok, err := p.Verify(context.Background(), file, expectedID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verification error: %v\n", err)
		os.Exit(1)
	}
	if ok {
		fmt.Printf("MATCH: %s\n", expectedID)
		return
	}
	fmt.Println("MISMATCH")
	os.Exit(1)
}

func cmdGenerateID(args []string) {
	fs := flag.NewFlagSet("generate-id", flag.ExitOnError)
	docType := fs.String("type", "", "document type: invoice, receipt, contract")
	prefix := fs.String("prefix", "DOC", "identifier prefix")
	nip := fs.String("nip", "", "seller/party-1 NIP")
	nip2 := fs.String("nip2", "", "buyer/party-2 NIP")
	number := fs.String("number", "", "document number")
	date := fs.String("date", "", "document date")
	amount := fs.String("amount", "", "gross amount")
	fs.Parse(args)

	builder := identifier.NewBuilderWithPrefix(*prefix)

	var result *models.ExtractionResult
	switch *docType {
	case "invoice":
		if *nip == "" || *number == "" || *date == "" || *amount == "" {
			fmt.Fprintln(os.Stderr, "invoice requires --nip, --number, --date, --amount")
			os.Exit(1)
		}
		result = &models.ExtractionResult{Kind: models.KindInvoice, Fields: models.Fields{
			models.FieldIssuerNIP:     *nip,
			models.FieldInvoiceNumber: *number,
			models.FieldDocumentDate:  *date,
			models.FieldGrossAmount:  *amount,
		}}
	case "receipt":
		if *nip == "" || *date == "" || *amount == "" {
			fmt.Fprintln(os.Stderr, "receipt requires --nip, --date, --amount")
			os.Exit(1)
		}
		result = &models.ExtractionResult{Kind: models.KindReceipt, Fields: models.Fields{
			models.FieldIssuerNIP:     *nip,
			models.FieldDocumentDate:  *date,
			models.FieldGrossAmount:  *amount,
			models.FieldReceiptNumber: *number,
		}}
	case "contract":
		if *nip == "" || *nip2 == "" || *date == "" {
			fmt.Fprintln(os.Stderr, "contract requires --nip, --nip2, --date")
			os.Exit(1)
		}
		result = &models.ExtractionResult{Kind: models.KindContract, Fields: models.Fields{
			models.FieldNIP1:           *nip,
			models.FieldNIP2:           *nip2,
			models.FieldDocumentDate:   *date,
			models.FieldContractNumber: *number,
		}}
	default:
		fmt.Fprintf(os.Stderr, "unknown type %q\n", *docType)
		os.Exit(1)
	}

	canonical, err := builder.CanonicalString(result, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(builder.Build(result.Kind, canonical))
}

func writeJSONFile(path string, data any) {
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", path, err)
		return
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func divider() string {
	out := make([]byte, 60)
	for i := range out {
		out[i] = '='
	}
	return string(out)
}

func quietLoggingConfig() config.LoggingConfig {
	return config.LoggingConfig{Level: "warn", Format: "text"}
}
