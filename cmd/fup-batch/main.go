package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"

	"github.com/pvillanueva/fup-consult/gen/ent"
	"github.com/pvillanueva/fup-consult/internal/batch"
	"github.com/pvillanueva/fup-consult/internal/common"
	"github.com/pvillanueva/fup-consult/internal/export"
	"github.com/pvillanueva/fup-consult/internal/osce"
	"github.com/pvillanueva/fup-consult/internal/provider"
	"github.com/pvillanueva/fup-consult/internal/repository"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		file  = flag.String("file", "", "input file with RUCs: XLSX first column or one per line (required)")
		out   = flag.String("out", "", "results directory (optional, defaults to BATCH_RESULTS_DIR)")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg := common.LoadConfig()
	if *out != "" {
		cfg.Batch.ResultsDir = *out
	}

	logger := common.NewConsoleLogger(common.ParseLogLevel(os.Getenv("LOG_LEVEL")))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var entc *ent.Client
	if *inmem {
		var err error
		entc, err = repository.OpenSQLite(ctx, "", logger)
		if err != nil {
			printError("Error: opening in-memory database: %v\n", err)
			os.Exit(1)
		}
		defer entc.Close()
	} else {
		client, pool, err := repository.Open(ctx, repository.Config{
			DSN:             cfg.Database.DSN,
			MaxConns:        cfg.Database.MaxConns,
			MinConns:        cfg.Database.MinConns,
			MaxConnLifetime: cfg.Database.MaxConnLifetime,
			MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
			DialTimeout:     cfg.Database.DialTimeout,
		}, logger)
		if err != nil {
			printError("Error: opening database: %v\n", err)
			os.Exit(1)
		}
		defer repository.Close(client, pool, logger)
		entc = client
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		printError("Error: reading input file: %v\n", err)
		os.Exit(1)
	}

	jobs := repository.NewBatchJobRepository(entc, logger)
	items := repository.NewBatchItemRepository(entc, logger)
	lookup := provider.NewService(osce.NewClient(cfg.OSCE, logger), logger)
	exports := export.NewService(cfg.Batch.ResultsDir, logger)
	svc := batch.NewService(jobs, items, lookup, exports, cfg.Batch, logger)

	start := time.Now()
	job, err := svc.SubmitFile(ctx, *file, content)
	if err != nil {
		printError("Error: submitting batch: %v\n", err)
		os.Exit(1)
	}
	logger.Info("submitted batch", "job_id", job.ID, "total_items", job.TotalItems)

	final, err := svc.Run(ctx, job.ID)
	if err != nil {
		printError("Error: running batch: %v\n", err)
		os.Exit(1)
	}

	st, err := svc.Status(ctx, job.ID)
	if err != nil {
		printError("Error: reading final status: %v\n", err)
		os.Exit(1)
	}
	logger.Info("batch finished",
		"job_id", st.ID,
		"status", st.Status,
		"completed", st.CompletedItems,
		"failed", st.FailedItems,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	if final.HasResultFile() {
		fmt.Printf("result file: %s\n", *final.ResultFile)
	}
}
