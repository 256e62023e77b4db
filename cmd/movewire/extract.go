package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	movegrpc "github.com/movestream/movewire/grpc"
	"github.com/movestream/movewire/indexer"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Stream blocks from an endpoint into PostgreSQL",
	Long: `Extract streams blocks from a block stream gRPC endpoint, validates
them and writes them to the configured output. With --stop 0 the
extraction runs live, following the chain head until interrupted.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("address", "localhost:50051", "Block stream gRPC endpoint")
	extractCmd.Flags().String("node-url", "", "Node REST base URL for the ledger probe (optional)")
	extractCmd.Flags().String("postgres-dsn", "", "PostgreSQL connection string (empty keeps blocks in memory)")
	extractCmd.Flags().Uint64("start", 0, "First block height to extract")
	extractCmd.Flags().Uint64("stop", 0, "Last block height to extract (0 runs live)")
	extractCmd.Flags().Bool("resume", false, "Resume from the highest height already written")
	extractCmd.Flags().Int("concurrency", 8, "Blocks processed in parallel")
	extractCmd.Flags().Uint("max-retries", 3, "Stream reconnect attempts before giving up")
	extractCmd.Flags().Duration("retry-delay", time.Second, "Base delay between reconnect attempts")
	extractCmd.Flags().Duration("poll-interval", 2*time.Second, "Chain head poll interval in live mode")
	extractCmd.Flags().Bool("backfill", false, "Re-fetch missing heights after the extraction")
}

func runExtract(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := indexer.Config{
		StartHeight:  viper.GetUint64("start"),
		StopHeight:   viper.GetUint64("stop"),
		Concurrency:  viper.GetInt("concurrency"),
		MaxRetries:   viper.GetUint("max-retries"),
		RetryDelay:   viper.GetDuration("retry-delay"),
		PollInterval: viper.GetDuration("poll-interval"),
		Progress:     true,
	}

	if nodeURL := viper.GetString("node-url"); nodeURL != "" {
		status, err := indexer.NewLedgerProbe(nodeURL).Status(ctx)
		if err != nil {
			return errors.Wrap(err, "probing node")
		}
		slog.Info("node ledger status",
			"chain_id", status.ChainID,
			"epoch", status.Epoch,
			"block_height", status.BlockHeight,
			"oldest_block_height", status.OldestBlockHeight)
		if uint64(status.OldestBlockHeight) > cfg.StartHeight {
			slog.Warn("start height below pruning horizon, adjusting",
				"start", cfg.StartHeight, "oldest", status.OldestBlockHeight)
			cfg.StartHeight = uint64(status.OldestBlockHeight)
		}
	}

	handler, err := newOutputHandler(ctx)
	if err != nil {
		return err
	}
	defer handler.Close()

	if viper.GetBool("resume") {
		latest, ok, err := handler.LatestHeight(ctx)
		if err != nil {
			return errors.Wrap(err, "reading resume height")
		}
		if ok && latest+1 > cfg.StartHeight {
			slog.Info("resuming extraction", "from", latest+1)
			cfg.StartHeight = latest + 1
		}
	}

	client, err := movegrpc.Dial(ctx, viper.GetString("address"),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return errors.Wrap(err, "dialing block stream endpoint")
	}
	defer client.Close()

	ext := indexer.New(client, handler, cfg)
	if err := ext.Run(ctx); err != nil {
		return err
	}
	if viper.GetBool("backfill") {
		return ext.ProcessMissing(ctx)
	}
	return nil
}

func newOutputHandler(ctx context.Context) (indexer.OutputHandler, error) {
	dsn := viper.GetString("postgres-dsn")
	if dsn == "" {
		slog.Warn("no PostgreSQL DSN configured, blocks are kept in memory only")
		return indexer.NewMemoryHandler(), nil
	}
	handler, err := indexer.NewPostgresHandler(ctx, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "opening PostgreSQL output")
	}
	return handler, nil
}
