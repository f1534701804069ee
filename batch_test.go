package pdfmd

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

// fakeConverter records nothing and converts nothing; it returns canned
// results with an optional per-document delay so tests can force completion
// order to differ from input order.
type fakeConverter struct {
	delay func(name string) time.Duration
	fail  map[string]error
}

func (f *fakeConverter) Convert(name string, data []byte) Result {
	if f.delay != nil {
		time.Sleep(f.delay(name))
	}
	if err, ok := f.fail[name]; ok {
		return Result{SourceName: name, Err: err}
	}
	return Result{SourceName: name, Markdown: "# " + name}
}

func namedDocs(n int) []Document {
	docs := make([]Document, n)
	for i := range docs {
		docs[i] = Document{Name: fmt.Sprintf("doc-%02d.pdf", i), Data: []byte("x")}
	}
	return docs
}

func TestBatchPreservesInputOrder(t *testing.T) {
	docs := namedDocs(8)

	// Earlier documents sleep longer, so completion order is roughly the
	// reverse of submission order.
	fc := &fakeConverter{
		delay: func(name string) time.Duration {
			var i int
			fmt.Sscanf(name, "doc-%02d.pdf", &i)
			return time.Duration(len(docs)-i) * 2 * time.Millisecond
		},
	}

	report, err := NewBatch().Concurrency(4).WithConverter(fc).Run(docs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Results) != len(docs) {
		t.Fatalf("got %d results, want %d", len(report.Results), len(docs))
	}
	for i, res := range report.Results {
		if res.SourceName != docs[i].Name {
			t.Errorf("result %d: got %q, want %q", i, res.SourceName, docs[i].Name)
		}
	}
}

func TestBatchIsolatesFailures(t *testing.T) {
	docs := namedDocs(5)
	boom := errors.New("boom")
	fc := &fakeConverter{fail: map[string]error{docs[2].Name: boom}}

	report, err := NewBatch().Concurrency(3).WithConverter(fc).Run(docs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Completed != len(docs) {
		t.Errorf("Completed = %d, want %d", report.Completed, len(docs))
	}
	if report.Failed != 1 {
		t.Errorf("Failed = %d, want 1", report.Failed)
	}
	for i, res := range report.Results {
		if i == 2 {
			if !errors.Is(res.Err, boom) {
				t.Errorf("result 2: err = %v, want boom", res.Err)
			}
			continue
		}
		if res.Err != nil {
			t.Errorf("result %d: unexpected error %v", i, res.Err)
		}
	}
}

func TestBatchProgress(t *testing.T) {
	docs := namedDocs(6)
	fc := &fakeConverter{}

	// Progress callbacks are serialized by the collector, so plain
	// appends are safe here.
	var seen []int
	_, err := NewBatch().
		Concurrency(3).
		WithConverter(fc).
		OnProgress(func(done, total int, res Result) {
			if total != len(docs) {
				t.Errorf("total = %d, want %d", total, len(docs))
			}
			if res.SourceName == "" {
				t.Error("progress result missing source name")
			}
			seen = append(seen, done)
		}).
		Run(docs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(seen) != len(docs) {
		t.Fatalf("got %d progress calls, want %d", len(seen), len(docs))
	}
	for i, done := range seen {
		if done != i+1 {
			t.Errorf("call %d: done = %d, want %d", i, done, i+1)
		}
	}
}

func TestBatchEmpty(t *testing.T) {
	report, err := NewBatch().WithConverter(&fakeConverter{}).Run(nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(report.Results) != 0 || report.Completed != 0 || report.Failed != 0 {
		t.Errorf("empty batch produced %+v", report)
	}
}

func TestBatchConcurrencyFloor(t *testing.T) {
	docs := namedDocs(3)
	report, err := NewBatch().Concurrency(0).WithConverter(&fakeConverter{}).Run(docs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if report.Completed != len(docs) {
		t.Errorf("Completed = %d, want %d", report.Completed, len(docs))
	}
}

// unavailableRecognizer satisfies both Recognizer and Prober and always
// reports a broken engine.
type unavailableRecognizer struct{ err error }

func (u *unavailableRecognizer) RecognizeImage(data []byte) (string, error) { return "", u.err }
func (u *unavailableRecognizer) Close() error                               { return nil }
func (u *unavailableRecognizer) Available() error                           { return u.err }

func TestBatchProbeFailureIsFatal(t *testing.T) {
	engineErr := errors.New("tesseract not installed")
	docs := namedDocs(2)

	_, err := NewBatch().
		WithRecognizer(&unavailableRecognizer{err: engineErr}).
		Run(docs)
	if err == nil {
		t.Fatal("expected batch-level error for unavailable engine")
	}
	if !errors.Is(err, engineErr) {
		t.Errorf("err = %v, want wrapped engine error", err)
	}
}

func TestBatchChainIsImmutable(t *testing.T) {
	base := NewBatch()
	forked := base.Concurrency(9).OutputRoot("elsewhere")

	if base.concurrency != DefaultConcurrency {
		t.Errorf("base concurrency changed to %d", base.concurrency)
	}
	if base.options.outputRoot != DefaultOutputRoot {
		t.Errorf("base output root changed to %q", base.options.outputRoot)
	}
	if forked.concurrency != 9 || forked.options.outputRoot != "elsewhere" {
		t.Errorf("fork did not carry its own settings: %+v", forked)
	}
}
