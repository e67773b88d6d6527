// Copyright 2026 The go-rwlock Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// rwstress drives an RWLock from many goroutines and checks that the
// mutual-exclusion contract holds: writers advance two counters together,
// readers verify that they never observe the counters apart.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	rwlock "github.com/modguz/go-rwlock"
	"golang.org/x/sync/errgroup"
)

type config struct {
	readers  int
	writers  int
	duration time.Duration
	debug    bool
	jsonOut  bool
}

// Package-level flag variables
var (
	flagReaders  int
	flagWriters  int
	flagDuration time.Duration
	flagDebug    bool
	flagJSON     bool
)

func init() {
	flag.IntVar(&flagReaders, "readers", 8, "Number of concurrent reader goroutines")
	flag.IntVar(&flagWriters, "writers", 2, "Number of concurrent writer goroutines")
	flag.DurationVar(&flagDuration, "duration", 5*time.Second, "How long to run the stress loop")
	flag.BoolVar(&flagDebug, "debug", false, "Enable debug output")
	flag.BoolVar(&flagJSON, "json", false, "Print the summary as JSON")
}

func parseConfig() *config {
	cfg := &config{
		readers:  flagReaders,
		writers:  flagWriters,
		duration: flagDuration,
		debug:    flagDebug,
		jsonOut:  flagJSON,
	}

	if cfg.debug {
		rwlock.SetDebugEnabled(true)
	}

	return cfg
}

// Summary holds the final result of a stress run.
type Summary struct {
	ReadOps   uint64        `json:"readOps"`
	WriteOps  uint64        `json:"writeOps"`
	TornReads uint64        `json:"tornReads"`
	Elapsed   time.Duration `json:"elapsedNs"`
	Stats     rwlock.Stats  `json:"lockStats"`
}

// shared is the state the lock protects. Writers advance both counters
// under the write stake; any reader seeing them differ proves a stake
// overlap.
type shared struct {
	a uint64
	b uint64
}

func run(ctx context.Context, cfg *config) (*Summary, error) {
	lock := rwlock.New()
	var state shared
	var readOps, writeOps, tornReads atomic.Uint64

	ctx, cancel := context.WithTimeout(ctx, cfg.duration)
	defer cancel()

	start := time.Now()
	g := new(errgroup.Group)

	for i := 0; i < cfg.readers; i++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				err := lock.WithRead(func() error {
					if state.a != state.b {
						tornReads.Add(1)
					}
					return nil
				})
				if err != nil {
					return err
				}
				readOps.Add(1)
			}
			return nil
		})
	}

	for i := 0; i < cfg.writers; i++ {
		g.Go(func() error {
			for ctx.Err() == nil {
				err := lock.WithWrite(func() error {
					state.a++
					state.b++
					return nil
				})
				if err != nil {
					return err
				}
				writeOps.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stress worker failed: %w", err)
	}

	summary := &Summary{
		ReadOps:   readOps.Load(),
		WriteOps:  writeOps.Load(),
		TornReads: tornReads.Load(),
		Elapsed:   time.Since(start),
		Stats:     lock.Stats(),
	}
	if summary.TornReads > 0 {
		return summary, errors.New("torn read observed: counters diverged under a read stake")
	}
	if left := lock.Readers(); left != 0 {
		return summary, fmt.Errorf("reader count is %d after all workers exited", left)
	}
	return summary, nil
}

func printSummary(cfg *config, s *Summary) error {
	if cfg.jsonOut {
		data, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal summary: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("readers=%d writers=%d elapsed=%v\n", cfg.readers, cfg.writers, s.Elapsed.Round(time.Millisecond))
	fmt.Printf("  read ops:         %d\n", s.ReadOps)
	fmt.Printf("  write ops:        %d\n", s.WriteOps)
	fmt.Printf("  torn reads:       %d\n", s.TornReads)
	fmt.Printf("  contended writes: %d\n", s.Stats.ContendedWrites)
	return nil
}

func main() {
	flag.Parse()
	cfg := parseConfig()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := run(ctx, cfg)
	if summary != nil {
		if perr := printSummary(cfg, summary); perr != nil {
			fmt.Fprintf(os.Stderr, "rwstress: %v\n", perr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "rwstress: %v\n", err)
		os.Exit(1)
	}
}
