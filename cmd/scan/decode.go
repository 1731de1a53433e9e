package main

import (
	"bufio"
	"context"
	"os"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Garik-/nibbler/pkg/midi"
	"github.com/Garik-/nibbler/pkg/nibble"
)

type result struct {
	name      string
	kinds     map[midi.Kind]int
	processed int
	rejected  int
	pending   int
	desync    int
	err       error
}

// decodeFile feeds every line of a hex dump to its own decoder.
func decodeFile(name string, opts []midi.Option) *result {
	out := &result{name: name, kinds: make(map[midi.Kind]int)}
	f, err := os.Open(name)
	if err != nil {
		out.err = err
		return out
	}

	defer f.Close()

	fileOpts := make([]midi.Option, 0, len(opts)+1)
	fileOpts = append(fileOpts, opts...)
	fileOpts = append(fileOpts, midi.WithLogger(decoderLog.With(
		zap.String("file", name),
		zap.String("session", uuid.NewString()),
	)))

	decoder, err := midi.NewDecoder(fileOpts...)
	if err != nil {
		out.err = err
		return out
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		ns, err := nibble.Parse(scanner.Text())
		if err != nil {
			out.err = err
			return out
		}

		report := decoder.Process(ns)
		for _, k := range report.Kinds {
			out.kinds[k]++
		}
		out.processed += len(report.Processed)
		out.rejected += len(report.Rejected)
		if report.Desync {
			out.desync++
		}
	}
	if err := scanner.Err(); err != nil {
		out.err = err
		return out
	}

	out.pending = decoder.Pending()
	return out
}

func decodeWorker(ctx context.Context, paths <-chan string, cntRoutines int, opts []midi.Option) (<-chan *result, <-chan struct{}) {
	out := make(chan *result)
	done := make(chan struct{}, 1)

	go func() {
		var wg sync.WaitGroup
		goroutines := make(chan struct{}, cntRoutines)

	loop:
		for path := range paths {
			select {
			case goroutines <- struct{}{}:
			case <-ctx.Done():
				decoderLog.Debug("decodeWorker context done")
				break loop
			}
			wg.Add(1)
			go func(ctx context.Context, path string, goroutines <-chan struct{}, out chan<- *result, wg *sync.WaitGroup) {
				defer wg.Done()

				select {
				case out <- decodeFile(path, opts):
				case <-ctx.Done():
					decoderLog.Debug("decodeFile context done", zap.String("path", path))
				}
				<-goroutines

			}(ctx, path, goroutines, out, &wg)
		}

		wg.Wait()
		close(goroutines)
		close(out)

		done <- struct{}{}
		close(done)
	}()

	return out, done
}
