// Package ingest drives the batch pipeline: read an SMS backup file,
// classify each message, and persist the results.
package ingest

import (
	"context"
	"fmt"

	"github.com/Tresor26/MOMO-Dashboard/internal/classifier"
	"github.com/Tresor26/MOMO-Dashboard/internal/dateutils"
	"github.com/Tresor26/MOMO-Dashboard/internal/logging"
	"github.com/Tresor26/MOMO-Dashboard/internal/models"
	"github.com/Tresor26/MOMO-Dashboard/internal/smsparser"
	"github.com/Tresor26/MOMO-Dashboard/internal/textutils"
)

// Storage is the slice of the store the processor needs.
type Storage interface {
	ReplaceAll(ctx context.Context) error
	SaveTransaction(ctx context.Context, record models.ClassifiedRecord, date string) error
}

// Result summarizes one ingestion run.
type Result struct {
	Processed int
	Ignored   int
}

// SuccessRate returns the fraction of messages that produced a record, as
// a percentage. Zero messages yields zero.
func (r Result) SuccessRate() float64 {
	total := r.Processed + r.Ignored
	if total == 0 {
		return 0
	}
	return float64(r.Processed) / float64(total) * 100
}

// Options tunes the processor. Zero values fall back to defaults.
type Options struct {
	// ProgressInterval is how many persisted records between progress
	// log lines. Default 100.
	ProgressInterval int
	// LogBodyLimit caps how many characters of an unclassified body end
	// up in the log. Default 100.
	LogBodyLimit int
}

// Processor runs the replace-all ingestion pipeline. Each run clears the
// stored transactions before writing the new batch; messages that classify
// are persisted, everything else is counted as ignored and the body logged
// truncated for offline review.
type Processor struct {
	classifier *classifier.Classifier
	storage    Storage
	log        logging.Logger
	opts       Options
}

// NewProcessor wires a processor from its collaborators.
func NewProcessor(c *classifier.Classifier, storage Storage, logger logging.Logger, opts Options) *Processor {
	if logger == nil {
		logger = logging.NopLogger{}
	}
	if opts.ProgressInterval <= 0 {
		opts.ProgressInterval = 100
	}
	if opts.LogBodyLimit <= 0 {
		opts.LogBodyLimit = 100
	}
	return &Processor{classifier: c, storage: storage, log: logger, opts: opts}
}

// Run ingests the SMS backup file at xmlPath.
func (p *Processor) Run(ctx context.Context, xmlPath string) (Result, error) {
	messages, err := smsparser.ParseFile(xmlPath)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read SMS backup: %w", err)
	}

	if err := p.storage.ReplaceAll(ctx); err != nil {
		return Result{}, err
	}

	p.log.Info("Processing SMS messages",
		logging.Field{Key: logging.FieldCount, Value: len(messages)},
		logging.Field{Key: logging.FieldFile, Value: xmlPath},
	)

	return p.processMessages(ctx, messages)
}

// ProcessMessages classifies and persists an already-parsed batch. Exposed
// for callers that obtain messages from somewhere other than a backup file.
func (p *Processor) ProcessMessages(ctx context.Context, messages []smsparser.Message) (Result, error) {
	if err := p.storage.ReplaceAll(ctx); err != nil {
		return Result{}, err
	}
	return p.processMessages(ctx, messages)
}

func (p *Processor) processMessages(ctx context.Context, messages []smsparser.Message) (Result, error) {
	var result Result

	for _, msg := range messages {
		if msg.Body == "" {
			result.Ignored++
			continue
		}

		date, err := dateutils.ConvertTimestamp(msg.Date)
		if err != nil {
			result.Ignored++
			p.log.WithError(err).Debug("Skipping message with unparseable timestamp")
			continue
		}

		record, ok := p.classifier.Classify(msg.Body)
		if !ok {
			result.Ignored++
			p.log.Info("Ignored SMS",
				logging.Field{Key: logging.FieldBody, Value: textutils.Truncate(classifier.NormalizeBody(msg.Body), p.opts.LogBodyLimit)},
			)
			continue
		}

		if err := p.storage.SaveTransaction(ctx, record, date); err != nil {
			return result, fmt.Errorf("failed to persist transaction: %w", err)
		}
		result.Processed++

		if result.Processed%p.opts.ProgressInterval == 0 {
			p.log.Infof("Processed %d transactions...", result.Processed)
		}
	}

	p.log.Info("Processing complete",
		logging.Field{Key: "processed", Value: result.Processed},
		logging.Field{Key: "ignored", Value: result.Ignored},
		logging.Field{Key: "success_rate", Value: fmt.Sprintf("%.1f%%", result.SuccessRate())},
	)

	return result, nil
}
