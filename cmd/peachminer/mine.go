package main

import (
	"encoding/hex"
	"flag"
	"log"
	"time"

	"peachminer/config"
	"peachminer/ledger"
	"peachminer/mining"
)

func runMine(args []string) {
	fs := flag.NewFlagSet("mine", flag.ExitOnError)
	trailerPath := fs.String("trailer", "", "160-byte block trailer file (default: synthetic)")
	outPath := fs.String("out", "", "path to write the solved trailer to")
	difficulty := fs.Uint("difficulty", uint(config.Difficulty), "difficulty byte")
	workers := fs.Int("workers", config.Workers, "number of concurrent workers")
	dataDir := fs.String("data-dir", config.DataDir, "ledger data directory")
	useLedger := fs.Bool("ledger", false, "append the solved nonce to the ledger")
	fs.Parse(args)

	bt, err := loadTrailer(*trailerPath, uint8(*difficulty))
	if err != nil {
		fatalUsage(fs, "peachminer mine: %v", err)
	}

	var lg *ledger.Ledger
	if *useLedger {
		lg, err = ledger.Open(*dataDir)
		if err != nil {
			log.Fatalf("peachminer mine: open ledger: %v", err)
		}
		defer lg.Close()
	}

	log.Printf("mining: difficulty=%d workers=%d", bt.DifficultyByte(), *workers)
	start := time.Now()

	ctrl := mining.NewSyncControl()
	stop := make(chan struct{})
	result := mining.Run(bt, *workers, uint32(time.Now().UnixNano()), ctrl, stop)

	if result.Nonce == [32]byte{} {
		log.Fatalf("peachminer mine: no solution found")
	}

	bt.SetNonce(result.Nonce[:])
	log.Printf("solved in %s by worker %d: nonce=%s hash=%s",
		time.Since(start), result.Worker,
		hex.EncodeToString(result.Nonce[:]), hex.EncodeToString(result.Hash[:]))

	if lg != nil {
		seq, err := lg.Put(bt, result.Hash[:])
		if err != nil {
			log.Printf("peachminer mine: ledger put failed: %v", err)
		} else {
			log.Printf("ledger: recorded as seq %d", seq)
		}
	}

	if *outPath != "" {
		if err := writeTrailer(*outPath, bt); err != nil {
			log.Fatalf("peachminer mine: write trailer: %v", err)
		}
	}
}
