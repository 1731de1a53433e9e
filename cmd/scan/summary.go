package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"go.uber.org/zap"

	"github.com/Garik-/nibbler/pkg/midi"
)

// summary is the total over every decoded file.
type summary struct {
	files     int
	kinds     map[midi.Kind]int
	processed int
	rejected  int
	pending   int
	desync    int
}

func newSummary(parent context.Context, paths <-chan string, cntRoutines int, opts []midi.Option) (*summary, error) {
	log := summaryLog.Named("newSummary")
	ctx, cancel := context.WithCancel(parent)
	results, done := decodeWorker(ctx, paths, cntRoutines, opts)

	defer func() {
		log.Debug("cancel")
		cancel()
		<-done // wait decodeWorker closed
	}()

	s := &summary{kinds: make(map[midi.Kind]int)}

	for result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("%s: %w", result.name, result.err)
		}

		log.Debug("result",
			zap.String("name", result.name),
			zap.Int("processed", result.processed),
			zap.Int("rejected", result.rejected),
		)

		s.files++
		for k, n := range result.kinds {
			s.kinds[k] += n
		}
		s.processed += result.processed
		s.rejected += result.rejected
		s.pending += result.pending
		s.desync += result.desync
	}

	return s, nil
}

func (s *summary) write(w io.Writer) error {
	kinds := make([]midi.Kind, 0, len(s.kinds))
	for k := range s.kinds {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	if _, err := fmt.Fprintf(w, "files: %d\n", s.files); err != nil {
		return err
	}
	for _, k := range kinds {
		if _, err := fmt.Fprintf(w, "%s: %d\n", k, s.kinds[k]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "processed: %d, rejected: %d, pending: %d, desync: %d\n", s.processed, s.rejected, s.pending, s.desync)
	return err
}
