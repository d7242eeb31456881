package profiler

import (
	"log/slog"
	"runtime"
	"sync"
	"time"
)

// Sample is the measurement of one profiled operation.
type Sample struct {
	Op       string
	Duration time.Duration
	// HeapMB is the live heap after the operation.
	HeapMB float64
	// AllocMB is the memory allocated while the operation ran.
	AllocMB float64
	// GCs is the number of collections that ran during the operation.
	GCs uint32
}

// Profiler measures duration and allocation of engine operations (scene builds,
// flattening, persistence) and reports each sample to a structured logger.
// Safe for concurrent use.
type Profiler struct {
	mu      sync.Mutex
	logger  *slog.Logger
	samples map[string]Sample
}

// NewProfiler creates a new Profiler that reports to logger.
// A nil logger falls back to slog.Default().
//
// Parameters:
//   - logger: destination for per-operation samples
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(logger *slog.Logger) *Profiler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Profiler{
		logger:  logger,
		samples: make(map[string]Sample),
	}
}

// Start begins measuring op. The returned function stops the measurement, logs the
// sample at debug level and records it as the latest sample for op.
//
// Parameters:
//   - op: the operation name
//
// Returns:
//   - func() Sample: stops the measurement
func (p *Profiler) Start(op string) func() Sample {
	var before runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()

	return func() Sample {
		elapsed := time.Since(start)
		var after runtime.MemStats
		runtime.ReadMemStats(&after)

		s := Sample{
			Op:       op,
			Duration: elapsed,
			HeapMB:   float64(after.Alloc) / 1024 / 1024,
			AllocMB:  float64(after.TotalAlloc-before.TotalAlloc) / 1024 / 1024,
			GCs:      after.NumGC - before.NumGC,
		}

		p.mu.Lock()
		p.samples[op] = s
		p.mu.Unlock()

		p.logger.Debug("profile",
			slog.String("op", op),
			slog.Duration("duration", s.Duration),
			slog.Float64("heap_mb", s.HeapMB),
			slog.Float64("alloc_mb", s.AllocMB),
			slog.Uint64("gc", uint64(s.GCs)),
		)
		return s
	}
}

// Last returns the most recent sample recorded for op.
//
// Parameters:
//   - op: the operation name
//
// Returns:
//   - Sample: the sample
//   - bool: whether op has been measured
func (p *Profiler) Last(op string) (Sample, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	s, ok := p.samples[op]
	return s, ok
}
