package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

func main() {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig("config.json")
	if err != nil {
		fmt.Println("Using default configuration (config.json not found)")
		config = utils.DefaultConfig()
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	world, err := model.RandomWorld(config.Width, config.Height, rng)
	if err != nil {
		fmt.Printf("Failed to create world: %+v\n", err)
		os.Exit(1)
	}

	canvas := model.NewConsoleCanvas(config.Width, config.Height)
	paintInitialState(world, canvas)

	stats := utils.NewStats()

	fmt.Printf("Grid: %dx%d | Seed: %d | Initial living cells: %d\n",
		world.Width(), world.Height(), seed, world.CountLivingCells())
	fmt.Println("Press Ctrl+C to exit gracefully")

	eg, ctx := errgroup.WithContext(context.Background())
	ctx, cancel := context.WithCancel(ctx)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	eg.Go(func() error {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		return nil
	})

	eg.Go(func() error {
		defer cancel()
		runSimulation(ctx, config, world, canvas, stats)
		return nil
	})

	if err = eg.Wait(); err != nil {
		fmt.Printf("Simulation error: %+v\n", err)
	}

	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
		stats.GenerationsPerSecond, stats.AveragePopulation)
}

// runSimulation advances the world until the generation cap is reached
// or the context is cancelled
func runSimulation(
	ctx context.Context,
	config utils.Config,
	world *model.World,
	canvas model.Canvas,
	stats *utils.Stats,
) {
	var (
		generation    = 0
		lastFrameTime = time.Now()
	)

	for generation < config.MaxGenerations {
		select {
		case <-ctx.Done():
			fmt.Println("\nShutting down gracefully...")
			return
		default:
			// Continue with the next generation
		}

		world.AdvanceGeneration(canvas)
		generation++

		stats.Update(generation, world.CountLivingCells(), time.Since(lastFrameTime))
		lastFrameTime = time.Now()

		if config.Render {
			fmt.Print("\x1B[2J\x1B[1;1H")
			fmt.Printf("Gen: %d | Living: %d | Performance: %.1f gen/sec\n",
				generation, world.CountLivingCells(), stats.GenerationsPerSecond)
			canvas.Render()
			time.Sleep(config.FrameRate)
		}
	}
}

// paintInitialState draws the seeded population so the first render
// shows generation zero rather than just the first frame's changes
func paintInitialState(world *model.World, canvas model.Canvas) {
	for i := 0; i < world.Height(); i++ {
		for j := 0; j < world.Width(); j++ {
			if world.CellState(i, j) == 1 {
				canvas.Draw(i, j, model.ColourOn)
			}
		}
	}
}
