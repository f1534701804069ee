package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pdfmd "github.com/elshazlio/pdf-to-markdown-converter"
	"github.com/elshazlio/pdf-to-markdown-converter/markdown"
	"github.com/elshazlio/pdf-to-markdown-converter/ocr"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert PDF files to structured Markdown",
	Long: `Convert transforms one or more PDF files into Markdown documents. Each
input produces <out>/<stem>.md plus an <out>/<stem>/ directory holding the
extracted images the Markdown references.

Embedded images are run through Tesseract and their recognized text is
inlined as captions. With --zip, each document's Markdown and images are
additionally bundled into <out>/<stem>.zip.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("out", "output", "output directory for Markdown and images")
	convertCmd.Flags().Int("concurrency", pdfmd.DefaultConcurrency, "number of documents converted in parallel")
	convertCmd.Flags().String("languages", "eng", "OCR languages (comma-separated Tesseract codes)")
	convertCmd.Flags().Bool("ocr", true, "run OCR on embedded images")
	convertCmd.Flags().Bool("zip", false, "bundle each document's output into a ZIP archive")

	viper.BindPFlag("out", convertCmd.Flags().Lookup("out"))
	viper.BindPFlag("concurrency", convertCmd.Flags().Lookup("concurrency"))
	viper.BindPFlag("languages", convertCmd.Flags().Lookup("languages"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	outDir := viper.GetString("out")
	concurrency := viper.GetInt("concurrency")
	languages := viper.GetString("languages")
	useOCR, _ := cmd.Flags().GetBool("ocr")
	bundle, _ := cmd.Flags().GetBool("zip")

	docs := make([]pdfmd.Document, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		docs = append(docs, pdfmd.Document{Name: path, Data: data})
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	batch := pdfmd.NewBatch().
		Concurrency(concurrency).
		OutputRoot(outDir).
		OnProgress(func(done, total int, res pdfmd.Result) {
			status := "ok"
			if res.Err != nil {
				status = "FAILED: " + res.Err.Error()
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "[%d/%d] %s: %s\n", done, total, res.SourceName, status)
			for _, w := range res.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "    warning: %s\n", w)
			}
		})

	if useOCR {
		client, err := ocr.New()
		if err != nil {
			return err
		}
		defer client.Close()
		if err := client.Available(); err != nil {
			return fmt.Errorf("OCR engine unavailable: %w", err)
		}
		if languages != "" {
			if err := client.SetLanguages(strings.Split(languages, ",")...); err != nil {
				return fmt.Errorf("set OCR languages: %w", err)
			}
		}
		batch = batch.WithRecognizer(client)
	}

	report, err := batch.Run(docs)
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		if res.Err != nil {
			continue
		}
		stem := markdown.Stem(res.SourceName)
		mdPath := filepath.Join(outDir, stem+".md")
		if err := os.WriteFile(mdPath, []byte(res.Markdown), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", mdPath, err)
		}
		if bundle {
			zipPath := filepath.Join(outDir, stem+".zip")
			if err := bundleDocument(zipPath, mdPath, filepath.Join(outDir, stem)); err != nil {
				return fmt.Errorf("bundle %s: %w", zipPath, err)
			}
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %d/%d documents", report.Completed-report.Failed, len(docs))
	if report.Failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d failed)", report.Failed)
	}
	fmt.Fprintln(cmd.OutOrStdout())

	if report.Failed > 0 {
		return fmt.Errorf("%d of %d documents failed", report.Failed, len(docs))
	}
	return nil
}
