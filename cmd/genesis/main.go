package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	kitlog "github.com/go-kit/kit/log"
	"golang.org/x/exp/rand"

	genesis "github.com/efoley/orbitalgenesis"
)

var (
	seed     uint64
	frames   int
	timeStep float64
	speed    float64
	export   string
	pretty   bool
	verbose  bool
)

func init() {
	// Read flags
	flag.Uint64Var(&seed, "seed", 0, "generation seed (0 uses the clock)")
	flag.IntVar(&frames, "frames", 0, "number of simulation frames to step after generating")
	flag.Float64Var(&timeStep, "dt", 1.0/60, "real seconds per simulated frame")
	flag.Float64Var(&speed, "speed", 1, "simulation speed multiplier")
	flag.StringVar(&export, "export", "", "export the system as JSON under the given file name")
	flag.BoolVar(&pretty, "pretty", false, "indent the exported JSON")
	flag.BoolVar(&verbose, "v", false, "log simulation events")
}

func main() {
	flag.Parse()
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("[info] generating with seed %d\n", seed)
	src := rand.New(rand.NewSource(seed))
	sys := genesis.Generate(src)
	log.Printf("[info] %s\n", sys)

	fmt.Printf("%s (radius %.1f)\n", sys.Star, sys.Star.Radius)
	for i, p := range sys.Planets {
		fmt.Printf("%2d. %s\n", i+1, p)
	}
	for _, b := range sys.Belts {
		fmt.Printf("    belt [%.1f, %.1f] with %d particles\n", b.MinRadius, b.MaxRadius, len(b.Particles))
	}

	if frames > 0 {
		var klog kitlog.Logger
		if verbose {
			klog = kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
		}
		sim := genesis.NewSimulation(sys, klog)
		sim.SetSpeed(speed)
		start := time.Now()
		var frame genesis.Frame
		for i := 0; i < frames; i++ {
			sim.Advance(timeStep)
			frame = sim.Frame()
		}
		log.Printf("[info] stepped %d frames to t=%.2f (%d bodies, %d particles) in %s\n",
			frames, frame.Elapsed, len(frame.Bodies), len(frame.Particles), time.Since(start))
	}

	if export != "" {
		path, err := genesis.ExportSystem(sys, genesis.ExportConfig{Filename: export, Pretty: pretty})
		if err != nil {
			log.Fatalf("[error] %s\n", err)
		}
		log.Printf("[info] system exported to %s\n", path)
	}
}
