package main

import (
	"encoding/hex"
	"flag"
	"log"

	"peachminer/peach"
)

func runVerify(args []string) {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	trailerPath := fs.String("trailer", "", "160-byte block trailer file")
	fs.Parse(args)

	if *trailerPath == "" {
		fatalUsage(fs, "peachminer verify: --trailer is required")
	}

	bt, err := loadTrailer(*trailerPath, 0)
	if err != nil {
		fatalUsage(fs, "peachminer verify: %v", err)
	}

	var hash [32]byte
	ok := peach.Check(bt, hash[:])
	if !ok {
		log.Printf("INVALID: trailer does not satisfy difficulty %d", bt.DifficultyByte())
		return
	}
	log.Printf("VALID: hash=%s difficulty=%d", hex.EncodeToString(hash[:]), bt.DifficultyByte())
}
