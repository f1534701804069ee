package pdfmd

import (
	"fmt"
	"sync"

	"github.com/elshazlio/pdf-to-markdown-converter/layout"
	"github.com/elshazlio/pdf-to-markdown-converter/ocr"
)

// DefaultConcurrency is the number of documents converted in parallel when
// no other value is configured.
const DefaultConcurrency = 4

// Document is one input to a batch run.
type Document struct {
	// Name is the source filename; it determines the derived title and
	// artifact directory stem, and must be unique within a batch to keep
	// artifact directories from colliding.
	Name string

	// Data is the raw PDF payload.
	Data []byte
}

// Report is the outcome of a batch run. Results are ordered to match the
// input documents regardless of completion order.
type Report struct {
	Results   []Result
	Completed int
	Failed    int
}

// ProgressFunc is invoked after each document finishes, successfully or not.
// Calls are serialized; implementations need no locking.
type ProgressFunc func(done, total int, res Result)

// DocumentConverter converts a single named document. The production
// implementation wraps Converter; tests substitute their own.
type DocumentConverter interface {
	Convert(name string, data []byte) Result
}

type converterFunc func(name string, data []byte) Result

func (f converterFunc) Convert(name string, data []byte) Result { return f(name, data) }

// Batch converts many documents with bounded parallelism. Like Converter,
// every configuration method returns a new instance.
type Batch struct {
	concurrency int
	recognizer  ocr.Recognizer
	progress    ProgressFunc
	converter   DocumentConverter
	options     ConvertOptions
}

// NewBatch creates a Batch with default settings.
func NewBatch() *Batch {
	return &Batch{
		concurrency: DefaultConcurrency,
		options:     defaultOptions(),
	}
}

func (b *Batch) clone() *Batch {
	return &Batch{
		concurrency: b.concurrency,
		recognizer:  b.recognizer,
		progress:    b.progress,
		converter:   b.converter,
		options:     b.options.clone(),
	}
}

// Concurrency sets the number of documents converted in parallel. Values
// below 1 are treated as 1.
func (b *Batch) Concurrency(n int) *Batch {
	next := b.clone()
	if n < 1 {
		n = 1
	}
	next.concurrency = n
	return next
}

// WithRecognizer sets the OCR capability shared by all conversions in the
// batch. The recognizer is probed once before any work starts.
func (b *Batch) WithRecognizer(r ocr.Recognizer) *Batch {
	next := b.clone()
	next.recognizer = r
	return next
}

// OutputRoot sets the directory artifacts are written under.
func (b *Batch) OutputRoot(dir string) *Batch {
	next := b.clone()
	next.options.outputRoot = dir
	return next
}

// HeadingConfig overrides the heading classification thresholds used by all
// conversions in the batch.
func (b *Batch) HeadingConfig(config layout.Config) *Batch {
	next := b.clone()
	next.options.headingConfig = config
	return next
}

// OnProgress registers a callback invoked after each document finishes.
func (b *Batch) OnProgress(fn ProgressFunc) *Batch {
	next := b.clone()
	next.progress = fn
	return next
}

// WithConverter substitutes the per-document conversion. Intended for tests;
// when set, the recognizer probe is skipped.
func (b *Batch) WithConverter(dc DocumentConverter) *Batch {
	next := b.clone()
	next.converter = dc
	return next
}

// Run converts all documents and returns a Report with one Result per input,
// in input order. The OCR engine is verified once up front: an unavailable
// engine fails the whole batch before any document is opened, so a broken
// installation surfaces as one error instead of a failure per image.
func (b *Batch) Run(docs []Document) (*Report, error) {
	convert := b.converter
	if convert == nil {
		if err := b.probe(); err != nil {
			return nil, err
		}
		convert = converterFunc(func(name string, data []byte) Result {
			c := &Converter{
				name:       name,
				data:       data,
				recognizer: b.recognizer,
				options:    b.options.clone(),
			}
			return c.Convert()
		})
	}

	report := &Report{Results: make([]Result, len(docs))}
	if len(docs) == 0 {
		return report, nil
	}

	workers := b.concurrency
	if workers > len(docs) {
		workers = len(docs)
	}

	jobs := make(chan int)
	done := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				report.Results[i] = convert.Convert(docs[i].Name, docs[i].Data)
				done <- i
			}
		}()
	}

	go func() {
		for i := range docs {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
		close(done)
	}()

	// Only this loop touches the counters and the progress callback, so
	// both stay race free without locks.
	for i := range done {
		report.Completed++
		if report.Results[i].Err != nil {
			report.Failed++
		}
		if b.progress != nil {
			b.progress(report.Completed, len(docs), report.Results[i])
		}
	}

	return report, nil
}

// probe verifies the configured recognizer before the batch starts. A nil
// recognizer is allowed; conversions then run without captions.
func (b *Batch) probe() error {
	if b.recognizer == nil {
		return nil
	}
	p, ok := b.recognizer.(ocr.Prober)
	if !ok {
		return nil
	}
	if err := p.Available(); err != nil {
		return fmt.Errorf("OCR engine unavailable: %w", err)
	}
	return nil
}
