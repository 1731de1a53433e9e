package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Garik-/nibbler/internal/config"
	"github.com/Garik-/nibbler/internal/logging"
	"github.com/Garik-/nibbler/internal/metrics"
	"github.com/Garik-/nibbler/pkg/midi"
	"github.com/Garik-/nibbler/pkg/nibble"
)

var (
	configFlag     = flag.String("c", "", "The path to the config file (toml, yaml or json)")
	backendFlag    = flag.String("b", "", "Message backend: "+strings.Join(midi.Backends(), ", "))
	maxPendingFlag = flag.Int("max-pending", -1, "Max buffered nibbles, 0 for no limit")
	metricsFlag    = flag.String("metrics", "", "Serve Prometheus metrics on this address")
	debugFlag      = flag.Bool("debug", false, "Debug logging")
)

func applyFlags(cfg *config.Config) {
	if *backendFlag != "" {
		cfg.Decoder.Backend = *backendFlag
	}
	if *maxPendingFlag >= 0 {
		cfg.Decoder.MaxPending = *maxPendingFlag
	}
	if *metricsFlag != "" {
		cfg.Metrics.Enable = true
		cfg.Metrics.Addr = *metricsFlag
	}
	if *debugFlag {
		cfg.Logging.Level = "debug"
	}
}

// run feeds every line of in to d as one chunk and prints each decoded
// message to out.
func run(ctx context.Context, in io.Reader, out io.Writer, d *midi.Decoder, rec *metrics.Recorder, logger *zap.Logger) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		ns, err := nibble.Parse(scanner.Text())
		if err != nil {
			return err
		}

		rep := d.Process(ns)
		rec.Observe(rep, d.Pending())

		for _, msg := range rep.Messages {
			if _, err := fmt.Fprintln(out, msg); err != nil {
				return err
			}
		}
		if len(rep.Rejected) > 0 {
			logger.Debug("rejected", zap.String("nibbles", nibble.Join(rep.Rejected)))
		}
		if err := rep.Err(); err != nil {
			logger.Warn("stream desynchronized", zap.Error(err))
		}
	}

	if err := scanner.Err(); err != nil {
		return err
	}

	if d.Pending() > 0 {
		logger.Info("incomplete input left", zap.String("nibbles", nibble.Join(d.Buffered())))
	}
	return nil
}

func serveMetrics(cfg config.MetricsConfig, h http.Handler, logger *zap.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle(cfg.Path, h)
	srv := &http.Server{Addr: cfg.Addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server", zap.Error(err))
		}
	}()
	return srv
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [hex ...]\nReads hex from the arguments, or stdin line by line.\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.Logging).With(zap.String("session", uuid.NewString()))
	defer func() { _ = logger.Sync() }()

	d, err := midi.NewDecoder(
		midi.WithBackend(cfg.Decoder.Backend),
		midi.WithMaxPending(cfg.Decoder.MaxPending),
		midi.WithLogger(logger),
	)
	if err != nil {
		logger.Fatal("new decoder", zap.Error(err))
	}

	reg := metrics.NewRegistry()
	rec := metrics.NewRecorder(reg)
	if cfg.Metrics.Enable {
		srv := serveMetrics(cfg.Metrics, metrics.Handler(reg), logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}()
	}

	var in io.Reader = os.Stdin
	if flag.NArg() > 0 {
		in = strings.NewReader(strings.Join(flag.Args(), "\n"))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Debug("start", zap.String("backend", cfg.Decoder.Backend), zap.Int("max_pending", cfg.Decoder.MaxPending))

	if err := run(ctx, in, os.Stdout, d, rec, logger); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("decode", zap.Error(err))
	}
}
