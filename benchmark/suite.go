package benchmark

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/nvr-ai/go-imgproc/common"
	"github.com/nvr-ai/go-imgproc/internal/imageutil"
	"github.com/nvr-ai/go-imgproc/threshold"
	"github.com/nvr-ai/go-imgproc/warp"
)

// Matrices the harness drives the warp kernels with: a mild rotate/scale
// affine and a mild perspective, both output-to-input and chosen so most
// samples land in range (the interesting fast path) with a real border
// fraction.
var (
	benchAffine = warp.AffineMatrix{
		0.98, 0.06, -4.0,
		-0.06, 0.98, 6.0,
	}
	benchPerspective = warp.PerspectiveMatrix{
		0.98, 0.06, -4.0,
		-0.06, 0.98, 6.0,
		0.00002, -0.00001, 1.0,
	}
)

const randomSeed = 42

// Suite manages and executes benchmark scenarios.
type Suite struct {
	mu        sync.RWMutex
	scenarios []Scenario
	results   []PerformanceMetrics
	outputDir string
}

// NewSuite creates an empty suite writing JSON results under outputDir.
func NewSuite(outputDir string) *Suite {
	return &Suite{
		outputDir: outputDir,
		scenarios: make([]Scenario, 0),
		results:   make([]PerformanceMetrics, 0),
	}
}

// AddScenario appends a scenario to the run list.
func (s *Suite) AddScenario(scenario Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = append(s.scenarios, scenario)
}

// AddScenarios appends several scenarios at once.
func (s *Suite) AddScenarios(scenarios []Scenario) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scenarios = append(s.scenarios, scenarios...)
}

// Results returns a copy of the metrics recorded so far.
func (s *Suite) Results() []PerformanceMetrics {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]PerformanceMetrics, len(s.results))
	copy(out, s.results)
	return out
}

// Run executes every scenario in order, honoring ctx between scenarios.
func (s *Suite) Run(ctx context.Context) ([]PerformanceMetrics, error) {
	s.mu.RLock()
	scenarios := make([]Scenario, len(s.scenarios))
	copy(scenarios, s.scenarios)
	s.mu.RUnlock()

	for _, scenario := range scenarios {
		if err := ctx.Err(); err != nil {
			return s.Results(), errors.Wrap(err, "benchmark run canceled")
		}
		metrics, err := s.RunScenario(scenario)
		if err != nil {
			return s.Results(), errors.Wrapf(err, "scenario %q", scenario.Name)
		}
		s.mu.Lock()
		s.results = append(s.results, *metrics)
		s.mu.Unlock()
	}
	return s.Results(), nil
}

// RunScenario executes a single scenario and returns its metrics.
func (s *Suite) RunScenario(scenario Scenario) (*PerformanceMetrics, error) {
	run, err := buildRunner(scenario)
	if err != nil {
		return nil, err
	}

	for i := 0; i < scenario.WarmupRuns; i++ {
		if err := run(); err != nil {
			return nil, errors.Wrap(err, "warmup run")
		}
	}

	metrics := &PerformanceMetrics{
		Scenario:  scenario,
		Timestamp: time.Now(),
	}
	before := captureMemory()
	samples := make([]time.Duration, 0, scenario.Iterations)
	for i := 0; i < scenario.Iterations; i++ {
		start := time.Now()
		if err := run(); err != nil {
			return nil, errors.Wrap(err, "timed run")
		}
		samples = append(samples, time.Since(start))
	}
	after := captureMemory()

	metrics.finalize(samples, scenario.Resolution.MegaPixels())
	metrics.MemoryStats = MemoryMetrics{
		AllocBytes:      after.AllocBytes,
		TotalAllocBytes: after.TotalAllocBytes - before.TotalAllocBytes,
		SysBytes:        after.SysBytes,
		HeapAllocBytes:  after.HeapAllocBytes,
		NumGC:           after.NumGC - before.NumGC,
	}
	return metrics, nil
}

// buildRunner allocates the scenario's buffers once and returns a closure
// that performs one iteration of the operation under test.
func buildRunner(scenario Scenario) (func() error, error) {
	res := scenario.Resolution
	switch scenario.Op {
	case OpAffineNearest, OpAffineLinear, OpPerspectiveNearest, OpPerspectiveLinear:
		channels := scenario.Channels
		if channels == 0 {
			channels = 3
		}
		src := warp.NewImage[uint8](res.Height, res.Width, channels)
		dst := warp.NewImage[uint8](res.Height, res.Width, channels)
		imageutil.RandomFill(src.Pix, randomSeed, 0, 256)
		opt := warp.Options[uint8]{
			Border:   scenario.Border,
			Parallel: scenario.Parallel,
		}
		switch scenario.Op {
		case OpAffineNearest:
			return func() error { return warp.AffineNearestPoint(dst, src, benchAffine, opt) }, nil
		case OpAffineLinear:
			return func() error { return warp.AffineLinear(dst, src, benchAffine, opt) }, nil
		case OpPerspectiveNearest:
			return func() error { return warp.PerspectiveNearestPoint(dst, src, benchPerspective, opt) }, nil
		default:
			return func() error { return warp.PerspectiveLinear(dst, src, benchPerspective, opt) }, nil
		}
	case OpThresholdMean, OpThresholdGaussian:
		src := make([]uint8, res.Height*res.Width)
		dst := make([]uint8, res.Height*res.Width)
		imageutil.RandomFill(src, randomSeed, 0, 256)
		method := common.AdaptiveMean
		if scenario.Op == OpThresholdGaussian {
			method = common.AdaptiveGaussian
		}
		blockSize := scenario.BlockSize
		if blockSize == 0 {
			blockSize = 3
		}
		return func() error {
			return threshold.AdaptiveThreshold(
				res.Height, res.Width, res.Width, src, res.Width, dst,
				155, method, common.ThresholdBinary, blockSize, 5,
				common.BorderReplicate)
		}, nil
	default:
		return nil, errors.Errorf("unknown op %q", scenario.Op)
	}
}

// Export writes the collected metrics as JSON under the suite's output
// directory and returns the file path.
func (s *Suite) Export() (string, error) {
	results := s.Results()
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "creating output directory")
	}
	path := filepath.Join(s.outputDir, "results.json")
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding results")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", errors.Wrap(err, "writing results")
	}
	return path, nil
}
