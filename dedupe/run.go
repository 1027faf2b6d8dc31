package dedupe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nads2259/deduplicate-leads/auditlog"
	"github.com/nads2259/deduplicate-leads/lead"
)

var ErrConstruct = errors.New("could not create audit log")

// Engine is the boundary object the CLI drives: construct with the
// input and audit log paths, Run once, SaveOutput, Close.
type Engine struct {
	load   func() ([]lead.Record, error)
	sink   *auditlog.Writer
	result *Result
}

// New builds an engine reading its input from a file. The audit log at
// logPath is created (truncated) immediately; an empty or uncreatable
// path fails construction.
func New(inputPath, logPath string) (*Engine, error) {
	return newEngine(func() ([]lead.Record, error) {
		return lead.LoadFile(inputPath)
	}, logPath)
}

// NewFromBytes builds an engine over an already-fetched document, e.g.
// one downloaded from a lead server.
func NewFromBytes(doc []byte, logPath string) (*Engine, error) {
	return newEngine(func() ([]lead.Record, error) {
		return lead.Load(doc)
	}, logPath)
}

func newEngine(load func() ([]lead.Record, error), logPath string) (*Engine, error) {
	if logPath == "" {
		return nil, fmt.Errorf("%w: empty log path", ErrConstruct)
	}
	sink, err := auditlog.Create(logPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConstruct, err)
	}
	return &Engine{load: load, sink: sink}, nil
}

// Run loads the input and deduplicates it. Load failures and audit
// sink write failures abort; per-record problems do not.
func (e *Engine) Run() error {
	records, err := e.load()
	if err != nil {
		return err
	}

	res, err := Deduplicate(records, e.sink)
	if err != nil {
		return err
	}
	e.result = res

	slog.Info("dedup finished",
		"in", len(records),
		"out", len(res.Records),
		"merged", res.Merged,
		"dropped", res.Dropped,
		"skipped", res.Skipped)
	return nil
}

// Result returns the outcome of the last Run, nil before any run.
func (e *Engine) Result() *Result {
	return e.result
}

// SaveOutput writes the deduplicated records to path.
func (e *Engine) SaveOutput(path string) error {
	if e.result == nil {
		return fmt.Errorf("%w: engine has not run", lead.ErrWrite)
	}
	return lead.Save(path, e.result.Records)
}

// Close closes the audit sink. Safe to call after a failed run.
func (e *Engine) Close() error {
	return e.sink.Close()
}
