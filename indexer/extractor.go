package indexer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	movegrpc "github.com/movestream/movewire/grpc"
	"github.com/movestream/movewire/types"
	"github.com/movestream/movewire/validate"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Source supplies decoded block envelopes. *movegrpc.Client satisfies
// it; tests substitute in-process fakes.
type Source interface {
	GetLedgerInfo(ctx context.Context) (movegrpc.LedgerInfo, error)
	Blocks(ctx context.Context, start, count uint64) (<-chan movegrpc.DecodedBlock, error)
}

// Config tunes an Extractor. Zero values fall back to the defaults in
// New.
type Config struct {
	StartHeight uint64
	// StopHeight bounds the extraction inclusively. Zero means live
	// mode: follow the chain head until the context is cancelled.
	StopHeight   uint64
	Concurrency  int
	MaxRetries   uint
	RetryDelay   time.Duration
	PollInterval time.Duration
	// Progress renders a terminal progress bar for bounded ranges.
	Progress bool
}

// Extractor streams blocks from a Source, validates them and hands
// them to an OutputHandler.
type Extractor struct {
	source  Source
	handler OutputHandler
	cfg     Config
}

// New builds an Extractor, filling in config defaults.
func New(source Source, handler OutputHandler, cfg Config) *Extractor {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 8
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryDelay <= 0 {
		cfg.RetryDelay = time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	return &Extractor{source: source, handler: handler, cfg: cfg}
}

// Run performs the extraction. In live mode it returns only on context
// cancellation or an unrecoverable error.
func (e *Extractor) Run(ctx context.Context) error {
	if e.cfg.StopHeight != 0 {
		if e.cfg.StopHeight < e.cfg.StartHeight {
			return errors.Errorf("stop height %d below start height %d", e.cfg.StopHeight, e.cfg.StartHeight)
		}
		slog.Info("extracting blocks",
			"range", fmt.Sprintf("[%d, %d]", e.cfg.StartHeight, e.cfg.StopHeight))
		return e.extractRange(ctx, e.cfg.StartHeight, e.cfg.StopHeight, e.progressBar())
	}
	return e.followHead(ctx)
}

// ProcessMissing re-fetches every gap the output handler reports.
func (e *Extractor) ProcessMissing(ctx context.Context) error {
	missing, err := e.handler.MissingHeights(ctx)
	if err != nil {
		return errors.Wrap(err, "listing missing heights")
	}
	if len(missing) == 0 {
		return nil
	}
	slog.Warn("missing blocks detected", "count", len(missing))
	for _, height := range missing {
		if err := e.extractRange(ctx, height, height, nil); err != nil {
			return errors.Wrapf(err, "backfilling block %d", height)
		}
	}
	return nil
}

func (e *Extractor) followHead(ctx context.Context) error {
	info, err := e.ledgerInfoWithRetry(ctx)
	if err != nil {
		return err
	}
	slog.Info("following chain head", "chain_id", info.ChainID, "latest", info.LatestHeight)

	next := e.cfg.StartHeight
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if info.LatestHeight >= next {
			if err := e.extractRange(ctx, next, info.LatestHeight, nil); err != nil {
				return err
			}
			next = info.LatestHeight + 1
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.cfg.PollInterval):
		}
		if info, err = e.ledgerInfoWithRetry(ctx); err != nil {
			return err
		}
	}
}

func (e *Extractor) ledgerInfoWithRetry(ctx context.Context) (movegrpc.LedgerInfo, error) {
	var lastErr error
	for attempt := uint(0); attempt <= e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			streamRetries.Inc()
			select {
			case <-ctx.Done():
				return movegrpc.LedgerInfo{}, ctx.Err()
			case <-time.After(e.cfg.RetryDelay * time.Duration(attempt)):
			}
		}
		info, err := e.source.GetLedgerInfo(ctx)
		if err == nil {
			return info, nil
		}
		lastErr = err
		slog.Warn("ledger info fetch failed", "attempt", attempt+1, "error", err)
	}
	return movegrpc.LedgerInfo{}, errors.Wrapf(lastErr, "ledger info after %d retries", e.cfg.MaxRetries)
}

// extractRange ingests [start, stop], reconnecting from the last
// delivered height when the stream drops.
func (e *Extractor) extractRange(ctx context.Context, start, stop uint64, bar *progressbar.ProgressBar) error {
	next := start
	var lastErr error
	for attempt := uint(0); attempt <= e.cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			streamRetries.Inc()
			slog.Warn("block stream dropped, reconnecting",
				"next", next, "attempt", attempt, "error", lastErr)
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(e.cfg.RetryDelay * time.Duration(attempt)):
			}
		}
		before := next
		lastErr = e.streamRange(ctx, &next, stop, bar)
		if lastErr == nil {
			if bar != nil {
				_ = bar.Finish()
			}
			return nil
		}
		if errors.Is(lastErr, context.Canceled) {
			return lastErr
		}
		var perm *permanentError
		if errors.As(lastErr, &perm) {
			return perm.err
		}
		if next > before {
			// Progress was made; give the endpoint a fresh set of
			// attempts from the new position.
			attempt = 0
		}
	}
	return errors.Wrapf(lastErr, "extracting range [%d, %d] stalled at %d", start, stop, next)
}

func (e *Extractor) streamRange(ctx context.Context, next *uint64, stop uint64, bar *progressbar.ProgressBar) error {
	ch, err := e.source.Blocks(ctx, *next, stop-*next+1)
	if err != nil {
		return errors.Wrap(err, "opening block stream")
	}

	eg, egCtx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, e.cfg.Concurrency)
	var streamErr error
	for db := range ch {
		if db.Err != nil {
			streamErr = db.Err
			break
		}
		*next = db.Height + 1

		blk := db.Block
		sem <- struct{}{}
		eg.Go(func() error {
			defer func() { <-sem }()
			if err := e.process(egCtx, blk); err != nil {
				return err
			}
			if bar != nil {
				if err := bar.Add(1); err != nil {
					slog.Warn("progress bar update failed", "error", err)
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		// Validation and output failures are not transient; retrying
		// the stream would only skip past the offending block.
		return &permanentError{err: err}
	}
	return streamErr
}

type permanentError struct{ err error }

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func (e *Extractor) process(ctx context.Context, blk *types.Block) error {
	if err := validate.Block(ctx, blk); err != nil {
		validationFailures.Inc()
		slog.Error("block failed validation", "height", blk.Height, "error", err)
		return errors.Wrapf(err, "block %s failed validation", blk.Height)
	}
	if err := e.handler.WriteBlock(ctx, blk); err != nil {
		return errors.Wrapf(err, "writing block %s", blk.Height)
	}
	blocksIngested.Inc()
	transactionsIngested.Add(float64(len(blk.Transactions)))
	return nil
}

func (e *Extractor) progressBar() *progressbar.ProgressBar {
	if !e.cfg.Progress || e.cfg.StopHeight <= e.cfg.StartHeight {
		return nil
	}
	bar := progressbar.NewOptions64(
		int64(e.cfg.StopHeight-e.cfg.StartHeight+1),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetDescription("Processing blocks..."),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "=",
			SaucerHead:    ">",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
	)
	if err := bar.RenderBlank(); err != nil {
		slog.Warn("progress bar render failed", "error", err)
	}
	return bar
}
