// Package main provides a CLI command for summarizing a single document.
// Usage: textsum-summarize [-n N] [-algorithm lexrank|lead] [-output text|json] [FILE]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"textsum/internal/domain/entity"
	hsum "textsum/internal/handler/http/summary"
	"textsum/internal/infra/extractor"
	"textsum/internal/infra/summarizer"
	"textsum/internal/infra/tokenizer"
	"textsum/internal/observability/logging"
	sumUC "textsum/internal/usecase/summary"
)

// SummaryOutput represents the JSON output format for summary results.
type SummaryOutput struct {
	Name           string   `json:"name"`
	Algorithm      string   `json:"algorithm"`
	Requested      int      `json:"requested"`
	TotalSentences int      `json:"total_sentences"`
	Sentences      []string `json:"sentences"`
	Summary        string   `json:"summary"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("textsum-summarize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		count        int
		algorithm    string
		outputFormat string
		maxBytes     int64
	)
	fs.IntVar(&count, "n", entity.DefaultSentenceCount, "Number of sentences in the summary (1-10)")
	fs.StringVar(&algorithm, "algorithm", string(summarizer.AlgorithmLexRank), "Summarization algorithm: lexrank or lead")
	fs.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	fs.Int64Var(&maxBytes, "max-bytes", extractor.DefaultMaxBytes, "Largest accepted input file in bytes")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: textsum-summarize [-n N] [-algorithm lexrank|lead] [-output text|json] [FILE]")
		fmt.Fprintln(stderr, "")
		fmt.Fprintln(stderr, "Reads FILE (.txt, .pdf, .docx, .html) or standard input when FILE is omitted or \"-\".")
		fmt.Fprintln(stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}
	if outputFormat != "text" && outputFormat != "json" {
		fmt.Fprintf(stderr, "Error: Invalid output format '%s' (must be 'text' or 'json')\n", outputFormat)
		return 2
	}

	logger := logging.NewTextLogger(stderr)
	slog.SetDefault(logger)

	algo, err := summarizer.ParseAlgorithm(algorithm)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	tok, err := tokenizer.New(tokenizer.DefaultLanguage)
	if err != nil {
		logger.Error("failed to load sentence tokenizer", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: Failed to load sentence tokenizer: %v\n", err)
		return 1
	}
	cfg := summarizer.DefaultConfig()
	cfg.Algorithm = algo
	sum, err := summarizer.New(cfg, tok, nil)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	svc := &sumUC.Service{
		Extractor:    extractor.New(extractor.Config{MaxBytes: maxBytes}),
		Summarizer:   sum,
		MinSentences: entity.MinSentenceCount,
		MaxSentences: entity.MaxSentenceCount,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	name := fs.Arg(0)
	doc, result, err := summarize(ctx, svc, name, stdin, count)
	if err != nil {
		logger.Debug("summarize failed", slog.Any("error", err))
		fmt.Fprintf(stderr, "Error: %s\n", userMessage(err))
		return 1
	}

	if outputFormat == "json" {
		return outputJSON(stdout, stderr, doc, result, count)
	}
	outputText(stdout, result)
	return 0
}

// summarize reads the input named by name ("" or "-" for stdin) and
// summarizes it. Standard input is read as plain text.
func summarize(ctx context.Context, svc *sumUC.Service, name string, stdin io.Reader, count int) (entity.Document, entity.Summary, error) {
	if name == "" || name == "-" {
		if err := svc.ValidateCount(count); err != nil {
			return entity.Document{}, entity.Summary{}, err
		}
		data, err := io.ReadAll(stdin)
		if err != nil {
			return entity.Document{}, entity.Summary{}, fmt.Errorf("read stdin: %w", err)
		}
		doc := entity.NewManualDocument(string(data))
		doc.Name = "stdin"
		sum, err := svc.Summarize(ctx, doc, count)
		return doc, sum, err
	}

	f, err := os.Open(name)
	if err != nil {
		return entity.Document{}, entity.Summary{}, err
	}
	defer func() { _ = f.Close() }()
	return svc.SummarizeFile(ctx, name, f, count)
}

// userMessage returns the message shown for err, matching the web page.
func userMessage(err error) string {
	var vErr *entity.ValidationError
	switch {
	case errors.Is(err, sumUC.ErrEmptyInput):
		return hsum.MsgEmptyInput
	case errors.As(err, &vErr):
		return fmt.Sprintf("Invalid %s: %s.", vErr.Field, vErr.Message)
	case errors.Is(err, sumUC.ErrFileTooLarge):
		return hsum.MsgFileTooLarge
	case errors.Is(err, sumUC.ErrUnsupportedFormat):
		return "Unsupported file type. Please use one of: .txt, .pdf, .docx, .html."
	case errors.Is(err, sumUC.ErrExtractionFailed):
		return hsum.MsgExtractionFailed
	default:
		return err.Error()
	}
}

// outputText prints one summary sentence per line.
func outputText(w io.Writer, sum entity.Summary) {
	for _, s := range sum.Sentences {
		fmt.Fprintln(w, s)
	}
}

// outputJSON prints the summary in JSON format.
func outputJSON(stdout, stderr io.Writer, doc entity.Document, sum entity.Summary, requested int) int {
	sentences := sum.Sentences
	if sentences == nil {
		sentences = []string{}
	}
	output := SummaryOutput{
		Name:           doc.Name,
		Algorithm:      sum.Algorithm,
		Requested:      requested,
		TotalSentences: sum.TotalSentences,
		Sentences:      sentences,
		Summary:        sum.Text(),
	}

	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		fmt.Fprintf(stderr, "Error: Failed to encode JSON: %v\n", err)
		return 1
	}
	return 0
}
