package benchmark

import (
	"fmt"

	"github.com/nvr-ai/go-imgproc/common"
)

// Resolution is one rung of the fixed size ladder the harness sweeps.
type Resolution struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// MegaPixels returns the pixel count in millions.
func (r Resolution) MegaPixels() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return float64(r.Width*r.Height) / 1_000_000.0
}

// Sweep is the canonical resolution ladder: QVGA through 4K UHD.
var Sweep = []Resolution{
	{Name: "QVGA", Width: 320, Height: 240},
	{Name: "VGA", Width: 640, Height: 480},
	{Name: "HD720", Width: 1280, Height: 720},
	{Name: "FHD1080", Width: 1920, Height: 1080},
	{Name: "UHD4K", Width: 3840, Height: 2160},
}

// Op names one public kernel operation exercised by the harness.
type Op string

// The operations the harness knows how to drive.
const (
	OpAffineNearest       Op = "affine-nearest"
	OpAffineLinear        Op = "affine-linear"
	OpPerspectiveNearest  Op = "perspective-nearest"
	OpPerspectiveLinear   Op = "perspective-linear"
	OpThresholdMean       Op = "adaptive-threshold-mean"
	OpThresholdGaussian   Op = "adaptive-threshold-gaussian"
)

// Scenario describes one benchmark configuration.
type Scenario struct {
	Name       string            `json:"name"`
	Op         Op                `json:"op"`
	Resolution Resolution        `json:"resolution"`
	Channels   int               `json:"channels"`
	Border     common.BorderType `json:"border"`
	Parallel   bool              `json:"parallel"`
	BlockSize  int               `json:"block_size,omitempty"` // threshold ops only
	Iterations int               `json:"iterations"`
	WarmupRuns int               `json:"warmup_runs"`
}

// ScenarioBuilder assembles scenarios with a fluent API.
type ScenarioBuilder struct {
	scenario Scenario
}

// NewScenarioBuilder starts a scenario with the default iteration counts.
func NewScenarioBuilder(name string) *ScenarioBuilder {
	return &ScenarioBuilder{
		scenario: Scenario{
			Name:       name,
			Channels:   1,
			BlockSize:  3,
			Iterations: 50,
			WarmupRuns: 5,
		},
	}
}

// WithOp sets the operation under test.
func (sb *ScenarioBuilder) WithOp(op Op) *ScenarioBuilder {
	sb.scenario.Op = op
	return sb
}

// WithResolution sets the image resolution.
func (sb *ScenarioBuilder) WithResolution(width, height int) *ScenarioBuilder {
	sb.scenario.Resolution = Resolution{
		Name:   fmt.Sprintf("%dx%d", width, height),
		Width:  width,
		Height: height,
	}
	return sb
}

// WithChannels sets the channel count (warp ops only).
func (sb *ScenarioBuilder) WithChannels(channels int) *ScenarioBuilder {
	sb.scenario.Channels = channels
	return sb
}

// WithBorder sets the border policy.
func (sb *ScenarioBuilder) WithBorder(border common.BorderType) *ScenarioBuilder {
	sb.scenario.Border = border
	return sb
}

// WithParallel enables row-partitioned execution.
func (sb *ScenarioBuilder) WithParallel(parallel bool) *ScenarioBuilder {
	sb.scenario.Parallel = parallel
	return sb
}

// WithBlockSize sets the neighborhood size for threshold ops.
func (sb *ScenarioBuilder) WithBlockSize(blockSize int) *ScenarioBuilder {
	sb.scenario.BlockSize = blockSize
	return sb
}

// WithIterations sets the timed iteration count.
func (sb *ScenarioBuilder) WithIterations(iterations int) *ScenarioBuilder {
	sb.scenario.Iterations = iterations
	return sb
}

// Build returns the assembled scenario.
func (sb *ScenarioBuilder) Build() Scenario {
	return sb.scenario
}

// DefaultScenarios returns the full sweep: every warp operation at every
// ladder resolution with three channels, plus the adaptive-threshold
// collaborator at the same sizes.
func DefaultScenarios() []Scenario {
	warpOps := []Op{OpAffineNearest, OpAffineLinear, OpPerspectiveNearest, OpPerspectiveLinear}
	scenarios := make([]Scenario, 0, len(Sweep)*(len(warpOps)+2))
	for _, res := range Sweep {
		for _, op := range warpOps {
			scenarios = append(scenarios, NewScenarioBuilder(fmt.Sprintf("%s-%s", op, res.Name)).
				WithOp(op).
				WithResolution(res.Width, res.Height).
				WithChannels(3).
				WithBorder(common.BorderConstant).
				Build())
		}
		for _, op := range []Op{OpThresholdMean, OpThresholdGaussian} {
			scenarios = append(scenarios, NewScenarioBuilder(fmt.Sprintf("%s-%s", op, res.Name)).
				WithOp(op).
				WithResolution(res.Width, res.Height).
				WithBorder(common.BorderReplicate).
				WithBlockSize(5).
				Build())
		}
	}
	return scenarios
}

// QuickScenarios returns a reduced sweep for smoke runs.
func QuickScenarios() []Scenario {
	all := DefaultScenarios()
	quick := make([]Scenario, 0, len(all))
	for _, sc := range all {
		if sc.Resolution.Width <= 640 {
			sc.Iterations = 10
			sc.WarmupRuns = 2
			quick = append(quick, sc)
		}
	}
	return quick
}
