package cyclecover

import (
	"math/rand"
	"sort"
	"sync"
)

// Config parametrizes one cycle-cover repetition batch.
type Config struct {
	Nodes      int   // number of weighted positions
	MinWeight  int8  // inclusive
	MaxWeight  int8  // inclusive
	Steps      uint64 // random-walk steps per run; 0 means "sample a uniformly random valid encoding directly"
	Runs       uint64 // number of independent random walks per repetition
	QuitEarly  bool   // stop a repetition's accounting as soon as 99% coverage is hit
}

// FrequencyCount pairs a visit count with how many encodings were visited
// exactly that many times, e.g. {Count: 1, Encodings: 40} means 40 distinct
// configurations were each seen by exactly one run.
type FrequencyCount struct {
	Count     uint64
	Encodings uint64
}

// Result is one repetition's outcome.
type Result struct {
	Config           Config
	NumValidEncodings int
	FrequencyCounts   []FrequencyCount
	CompletionRun     *uint64 // run index at which 99% of valid encodings had been seen at least once, if reached
}

// sampleEncoding runs one random walk of cfg.Steps reassignments (or, when
// Steps is 0, rejection-samples a uniformly random valid encoding directly)
// and returns the resulting configuration's encoding.
func sampleEncoding(cfg Config, valid map[uint32]struct{}, possible uint64, rng *rand.Rand) uint32 {
	if cfg.Steps == 0 {
		for {
			candidate := uint32(rng.Int63n(int64(possible)))
			if _, ok := valid[candidate]; ok {
				return candidate
			}
		}
	}

	var w Weights
	span := int(cfg.MaxWeight-cfg.MinWeight) + 1
	for i := uint64(0); i < cfg.Steps; i++ {
		node := rng.Intn(cfg.Nodes)
		weight := cfg.MinWeight + int8(rng.Intn(span))
		w.TryUpdate(node, weight)
	}
	return w.Encode(cfg.Nodes, cfg.MinWeight, cfg.MaxWeight)
}

// Run performs cfg.Runs independent random walks, tracking how many runs
// land on each distinct encoding, and returns the per-visit-count histogram
// plus (if reached) the run index at which 99% of feasible encodings had
// been seen. Work is spread across a bounded goroutine pool sized to
// workers (use runtime.NumCPU() at the call site): a fixed pool drains a
// work channel under a WaitGroup rather than spawning one goroutine per
// run.
func Run(cfg Config, workers int, rng *rand.Rand) Result {
	valid := ValidEncodings(cfg.Nodes, cfg.MinWeight, cfg.MaxWeight)
	possible := PossibleEncodings(cfg.Nodes, cfg.MinWeight, cfg.MaxWeight)

	if workers < 1 {
		workers = 1
	}

	type sample struct {
		run      uint64
		encoding uint32
	}
	jobs := make(chan uint64, cfg.Runs)
	results := make(chan sample, cfg.Runs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		workerRng := rand.New(rand.NewSource(rng.Int63()))
		go func(workerRng *rand.Rand) {
			defer wg.Done()
			for run := range jobs {
				results <- sample{run: run, encoding: sampleEncoding(cfg, valid, possible, workerRng)}
			}
		}(workerRng)
	}
	for run := uint64(0); run < cfg.Runs; run++ {
		jobs <- run
	}
	close(jobs)
	go func() {
		wg.Wait()
		close(results)
	}()

	encodings := make([]uint32, cfg.Runs)
	for s := range results {
		encodings[s.run] = s.encoding
	}

	maxEncoding := uint32(0)
	for e := range valid {
		if e > maxEncoding {
			maxEncoding = e
		}
	}
	frequency := make([]uint64, maxEncoding+1)
	numUnseen := len(valid)
	threshold := len(valid) / 100
	var completionRun *uint64
	for step, encoding := range encodings {
		frequency[encoding]++
		if frequency[encoding] == 1 {
			numUnseen--
		}
		if completionRun == nil && numUnseen <= threshold {
			s := uint64(step)
			completionRun = &s
			if cfg.QuitEarly {
				return Result{Config: cfg, NumValidEncodings: len(valid), CompletionRun: completionRun}
			}
		}
	}

	countOfFrequencies := make(map[uint64]uint64)
	for encoding := range valid {
		countOfFrequencies[frequency[encoding]]++
	}
	counts := make([]FrequencyCount, 0, len(countOfFrequencies))
	for count, encodings := range countOfFrequencies {
		counts = append(counts, FrequencyCount{Count: count, Encodings: encodings})
	}
	sort.Slice(counts, func(i, j int) bool { return counts[i].Count < counts[j].Count })

	return Result{
		Config:            cfg,
		NumValidEncodings: len(valid),
		FrequencyCounts:   counts,
		CompletionRun:     completionRun,
	}
}
