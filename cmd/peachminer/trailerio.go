package main

import (
	"fmt"
	"os"
	"time"

	"peachminer/trailer"
)

// loadTrailer reads a 160-byte trailer from path, or (if path is empty)
// synthesizes one stamped with the current time and the given
// difficulty byte, for ad-hoc exercising of the mine subcommand without
// a real chain.
func loadTrailer(path string, difficulty uint8) (*trailer.Trailer, error) {
	if path == "" {
		var bt trailer.Trailer
		bt[56] = difficulty
		stamp := uint32(time.Now().Unix())
		bt[52] = byte(stamp)
		bt[53] = byte(stamp >> 8)
		bt[54] = byte(stamp >> 16)
		bt[55] = byte(stamp >> 24)
		return &bt, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trailer: %w", err)
	}
	if len(data) != trailer.Size {
		return nil, fmt.Errorf("trailer file must be exactly %d bytes, got %d", trailer.Size, len(data))
	}
	var bt trailer.Trailer
	copy(bt[:], data)
	return &bt, nil
}

func writeTrailer(path string, bt *trailer.Trailer) error {
	return os.WriteFile(path, bt.Bytes(), 0644)
}
