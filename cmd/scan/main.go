package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Garik-/nibbler/internal/config"
	"github.com/Garik-/nibbler/internal/logging"
	"github.com/Garik-/nibbler/pkg/midi"
)

var (
	listFlag   = flag.String("l", "", "The path to the list of hex dump files,\nfind . -type f -name \"*.hex\" > hex_list.txt")
	maxFlag    = flag.Int("p", 0, "Number of files processed in parallel, must be > 0 (default from config)")
	configFlag = flag.String("c", "", "The path to the config file (toml, yaml or json)")
	debugFlag  = flag.Bool("debug", false, "Debug logging")
)

func readList(file *os.File) <-chan string {
	out := make(chan string)

	scanner := bufio.NewScanner(file)
	scanner.Split(bufio.ScanLines)

	go func() {
		for scanner.Scan() {
			if line := scanner.Text(); line != "" {
				out <- line
			}
		}
		close(out)
	}()

	return out
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s \n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *listFlag == "" || *maxFlag < 0 {
		flag.Usage()
		return
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatal(err)
	}
	if *maxFlag > 0 {
		cfg.Scan.Parallel = *maxFlag
	}
	if *debugFlag {
		cfg.Logging.Level = "debug"
		enableDebugLogging(logging.New(cfg.Logging))
	}

	f, err := os.Open(*listFlag)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	opts := []midi.Option{
		midi.WithBackend(cfg.Decoder.Backend),
		midi.WithMaxPending(cfg.Decoder.MaxPending),
	}

	paths := readList(f)
	s, err := newSummary(context.Background(), paths, cfg.Scan.Parallel, opts)
	if err != nil {
		log.Fatal(err)
	}

	if err := s.write(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
