// Package mining orchestrates one or more Peach workers solving the
// same block trailer concurrently, each with its own independent Peach
// solver context (map and cache) and per-worker random source. Adapted
// from the pause/resume and progress-logging idiom in
// poai/miner/workloop.go, which this package generalizes from a single
// shared-state mining loop to an arbitrary number of independently
// seeded workers.
package mining

import (
	"log"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"peachminer/config"
	"peachminer/peach"
	"peachminer/randgen"
	"peachminer/trailer"
)

// SyncControl lets a caller pause and resume all running workers,
// matching the PauseCh idiom in poai/miner/workloop.go.
type SyncControl struct {
	PauseCh chan bool

	mu    sync.Mutex
	state bool
}

// NewSyncControl returns a ready-to-use SyncControl.
func NewSyncControl() *SyncControl {
	return &SyncControl{PauseCh: make(chan bool, 1)}
}

func (s *SyncControl) paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	select {
	case p := <-s.PauseCh:
		s.state = p
	default:
	}
	return s.state
}

// Result is a solved nonce, returned over a Result channel the moment
// any worker succeeds.
type Result struct {
	Worker int
	Nonce  [32]byte
	Hash   [32]byte
}

// Run starts n independent workers attempting to solve bt via Peach,
// each seeded from a distinct LCG stream derived from baseSeed. It
// blocks until ctrl-driven cancellation via stop, or until one worker
// reports a Result; it returns the first Result found, or a zero Result
// if stop fires first.
func Run(bt *trailer.Trailer, n int, baseSeed uint32, ctrl *SyncControl, stop <-chan struct{}) Result {
	if n < 1 {
		n = 1
	}
	found := make(chan Result, n)
	var wg sync.WaitGroup
	var attempts uint64

	workerStop := make(chan struct{})
	var stopOnce sync.Once
	closeStop := func() { stopOnce.Do(func() { close(workerStop) }) }

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			runWorker(id, bt, baseSeed+uint32(id), ctrl, workerStop, found, &attempts)
		}(i)
	}

	go func() {
		wg.Wait()
		close(found)
	}()

	var result Result
	select {
	case <-stop:
		closeStop()
		wg.Wait()
	case r, ok := <-found:
		if ok {
			result = r
		}
		closeStop()
	}
	return result
}

func runWorker(id int, bt *trailer.Trailer, seed uint32, ctrl *SyncControl, stop <-chan struct{}, found chan<- Result, attempts *uint64) {
	src := randgen.New(seed)
	solver, err := peach.NewSolver(bt, src.Next)
	if err != nil {
		log.Printf("[mining][worker %d] failed to allocate peach map: %v", id, err)
		return
	}
	defer solver.Free()

	log.Printf("[mining][worker %d] started, difficulty=%d", id, bt.DifficultyByte())

	var nonce [32]byte
	lastLog := time.Now()
	var tries uint64
	for {
		select {
		case <-stop:
			return
		default:
		}
		if ctrl != nil && ctrl.paused() {
			time.Sleep(10 * time.Millisecond)
			continue
		}

		tries++
		atomic.AddUint64(attempts, 1)
		if tries%config.ReportInterval == 0 {
			elapsed := time.Since(lastLog)
			log.Printf("[mining][worker %d] %d attempts (%.1f/s)", id, tries,
				float64(config.ReportInterval)/elapsed.Seconds())
			lastLog = time.Now()
		}

		if solver.Generate(nonce[:]) {
			var withNonce trailer.Trailer = *bt
			withNonce.SetNonce(nonce[:])
			var hash [32]byte
			peach.Check(&withNonce, hash[:])
			log.Printf("[mining][worker %d] solution found after %d attempts", id, tries)
			select {
			case found <- Result{Worker: id, Nonce: nonce, Hash: hash}:
			default:
			}
			return
		}
		runtime.Gosched()
	}
}
