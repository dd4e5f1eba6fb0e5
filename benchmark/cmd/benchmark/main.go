// Command benchmark sweeps the kernel operations across the standard
// resolution ladder and writes JSON metrics, optionally with a CPU
// profile and a comparison against third-party resamplers.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/nvr-ai/go-imgproc/benchmark"
)

func main() {
	var (
		outputDir  = flag.String("output", "./benchmark_results", "Output directory for results")
		quick      = flag.Bool("quick", false, "Run the reduced sweep (<= VGA, fewer iterations)")
		compare    = flag.Bool("compare", false, "Also time third-party resamplers on a rescale")
		cpuProfile = flag.String("cpuprofile", "", "Write a CPU profile to this file")
		timeout    = flag.Duration("timeout", 30*time.Minute, "Benchmark timeout")
	)
	flag.Parse()

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("Failed to create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Failed to start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	suite := benchmark.NewSuite(*outputDir)
	if *quick {
		suite.AddScenarios(benchmark.QuickScenarios())
	} else {
		suite.AddScenarios(benchmark.DefaultScenarios())
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	results, err := suite.Run(ctx)
	if err != nil {
		log.Fatalf("Benchmark run failed: %v", err)
	}

	fmt.Printf("%-40s %12s %12s\n", "scenario", "avg", "MPix/s")
	for _, r := range results {
		fmt.Printf("%-40s %12s %12.1f\n", r.Scenario.Name, r.AvgDuration, r.MegapixelsPerSecond)
	}

	path, err := suite.Export()
	if err != nil {
		log.Fatalf("Failed to export results: %v", err)
	}
	fmt.Printf("\nResults written to %s\n", path)

	if *compare {
		cmp, err := benchmark.CompareScale(1920, 1080, 640, 480, 20)
		if err != nil {
			log.Fatalf("Comparison failed: %v", err)
		}
		fmt.Printf("\nrescale %dx%d -> %dx%d over %d iterations:\n",
			cmp.SrcWidth, cmp.SrcHeight, cmp.DstWidth, cmp.DstHeight, cmp.Iterations)
		fmt.Printf("  warp.AffineLinear      %12s\n", cmp.WarpLinear)
		fmt.Printf("  nfnt/resize bilinear   %12s\n", cmp.NfntResize)
		fmt.Printf("  x/image ApproxBiLinear %12s\n", cmp.XImageDraw)
	}
}
