package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Aashish23092/visa-document-scanner/config"
	"github.com/Aashish23092/visa-document-scanner/dto"
	"github.com/Aashish23092/visa-document-scanner/logger"
	"github.com/Aashish23092/visa-document-scanner/service"
)

type scanOptions struct {
	mediaType string
	trace     bool
	progress  bool
	textLayer bool
	timeout   time.Duration
}

func newScanCmd(cfg *config.Config) *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Scan one document and print the extracted record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), cfg, args[0], opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&opts.mediaType, "type", "t", "", "Media type of the file (default: detected from content)")
	cmd.Flags().BoolVar(&opts.trace, "json-trace", false, "Include the strategy behind each field")
	cmd.Flags().BoolVarP(&opts.progress, "progress", "p", false, "Print progress to stderr")
	cmd.Flags().BoolVar(&opts.textLayer, "text-layer", cfg.PreferPDFTextLayer, "Use the embedded PDF text when present")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 5*time.Minute, "Processing timeout")

	return cmd
}

func runScan(ctx context.Context, cfg *config.Config, path string, opts *scanOptions, stdout, stderr io.Writer) error {
	log := logger.WithComponent("scan")

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, opts.timeout)
	defer cancel()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	scanCfg := *cfg
	scanCfg.PreferPDFTextLayer = opts.textLayer
	pipeline := service.NewPipeline(&scanCfg)
	defer pipeline.OCR.Close()

	doc := &dto.UploadedDocument{
		Filename:  filepath.Base(path),
		MediaType: opts.mediaType,
		Data:      data,
	}

	// A one-shot run can afford to wait for the PDF probe.
	if err := pipeline.PDFSupport.Init(ctx); err != nil {
		log.Warn().Err(err).Msg("PDF support unavailable")
	}

	var userMessage string
	cb := service.Callbacks{
		OnError: func(msg string) { userMessage = msg },
	}
	if opts.progress {
		cb.OnProgress = func(p int) { fmt.Fprintf(stderr, "\rprogress: %3d%%", p) }
	}

	resp, err := pipeline.Scanner.Scan(ctx, doc, cb)
	if opts.progress {
		fmt.Fprintln(stderr)
	}
	if err != nil {
		if userMessage != "" {
			return fmt.Errorf("%s (%s)", userMessage, dto.ErrorCode(err))
		}
		return err
	}

	out := struct {
		Record  dto.ExtractedRecord `json:"record"`
		Barcode string              `json:"barcode,omitempty"`
		Source  string              `json:"source"`
		Trace   map[string]string   `json:"trace,omitempty"`
	}{
		Record:  resp.Record,
		Barcode: resp.Barcode,
		Source:  resp.Source,
	}
	if opts.trace {
		out.Trace = resp.Trace
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
