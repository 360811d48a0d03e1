package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/nertz/internal/simulator"
	"github.com/lox/nertz/internal/statistics"
)

type CLI struct {
	Games    int    `default:"0" help:"Number of games to simulate (overrides config)"`
	Players  int    `default:"0" help:"Number of players per game (overrides config)"`
	Seed     int64  `default:"0" help:"RNG seed (0 for random)"`
	MaxTurns int    `default:"0" help:"Turn cutoff per game (overrides config)"`
	Parallel int    `default:"0" help:"Concurrent games (overrides config)"`
	Config   string `default:"nertz.hcl" help:"Path to HCL config file"`
	Verbose  bool   `short:"v" help:"Verbose logging"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli)

	config, err := simulator.LoadConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
		ctx.Exit(1)
	}

	// Flags override config file values
	if cli.Games > 0 {
		config.Simulation.Games = cli.Games
	}
	if cli.Players > 0 {
		config.Simulation.Players = cli.Players
	}
	if cli.Seed != 0 {
		config.Simulation.Seed = cli.Seed
	} else if config.Simulation.Seed == 0 {
		config.Simulation.Seed = time.Now().UnixNano()
	}
	if cli.MaxTurns > 0 {
		config.Simulation.MaxTurns = cli.MaxTurns
	}
	if cli.Parallel > 0 {
		config.Simulation.Parallel = cli.Parallel
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		ctx.Exit(1)
	}

	logger := newLogger(cli.Verbose, config.Simulation.LogLevel)

	fmt.Printf("Starting simulation: %d games of %d players (seed: %d)\n",
		config.Simulation.Games, config.Simulation.Players, config.Simulation.Seed)

	startTime := time.Now()
	stats, err := simulator.New(config, logger).Run(context.Background())
	if err != nil {
		fmt.Fprintf(os.Stderr, "simulation failed: %v\n", err)
		ctx.Exit(1)
	}
	printResults(stats, time.Since(startTime))

	ctx.Exit(0)
}

func newLogger(verbose bool, level string) *log.Logger {
	if verbose {
		return log.NewWithOptions(os.Stderr, log.Options{Level: log.DebugLevel})
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: log.InfoLevel})
	switch level {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	}
	return logger
}

func printResults(stats *statistics.Statistics, duration time.Duration) {
	fmt.Printf("\n=== RESULTS ===\n")
	fmt.Printf("Games completed: %d\n", stats.Games)
	if stats.Stalled > 0 {
		fmt.Printf("Games stalled: %d\n", stats.Stalled)
	}
	fmt.Printf("Total time: %v\n", duration.Round(time.Millisecond))
	if stats.Games == 0 {
		return
	}

	gamesPerSec := float64(stats.Games) / duration.Seconds()
	fmt.Printf("Performance: %.1f games/sec\n", gamesPerSec)

	fmt.Printf("\n=== TURN STATISTICS ===\n")
	fmt.Printf("Mean: %.2f turns/game\n", stats.MeanTurns())
	fmt.Printf("Median: %.2f turns/game\n", stats.MedianTurns())
	fmt.Printf("Std Dev: %.2f turns\n", stats.StdDev())
	fmt.Printf("Percentiles: P5=%.1f, P25=%.1f, P75=%.1f, P95=%.1f\n",
		stats.Percentile(0.05), stats.Percentile(0.25),
		stats.Percentile(0.75), stats.Percentile(0.95))

	fmt.Printf("\n=== GAME STATISTICS ===\n")
	fmt.Printf("Foundations created: %d (%.1f/game)\n",
		stats.FoundationsCreated, float64(stats.FoundationsCreated)/float64(stats.Games))
	fmt.Printf("Mean winner score: %.2f\n", stats.MeanWinnerScore())

	players := make([]int, 0, len(stats.WinsByPlayer))
	for player := range stats.WinsByPlayer {
		players = append(players, player)
	}
	sort.Ints(players)
	for _, player := range players {
		wins := stats.WinsByPlayer[player]
		fmt.Printf("Player %d: %d wins (%.1f%%)\n",
			player, wins, float64(wins)/float64(stats.Games)*100)
	}
}
