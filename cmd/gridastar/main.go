package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"
	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/render"
	"github.com/pdrpinto/gridastar/layouts"
	log "github.com/sirupsen/logrus"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitInvalid = 2
)

type config struct {
	mapName    string
	start      string
	goal       string
	relax      string
	trace      bool
	jsonOut    bool
	copyPath   bool
	all        bool
	play       bool
	frame      time.Duration
	hold       time.Duration
	workers    int
	logLevel   string
	relaxation astar.Relaxation
}

// pathReport is the -json output of one search.
type pathReport struct {
	Map       string    `json:"map"`
	Start     [2]int    `json:"start"`
	Goal      [2]int    `json:"goal"`
	Found     bool      `json:"found"`
	Path      [][2]int  `json:"path,omitempty"`
	Costs     []float64 `json:"costs,omitempty"`
	TotalCost float64   `json:"total_cost"`
	Expanded  [][2]int  `json:"expanded,omitempty"`
	Steps     int       `json:"steps"`
	Error     string    `json:"error,omitempty"`
}

var copyToClipboard = clipboard.WriteAll

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "error:", err)
		return exitInvalid
	}

	logger := log.New()
	logger.SetOutput(stderr)
	level, err := log.ParseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitInvalid
	}
	logger.SetLevel(level)

	ctx := context.Background()
	if cfg.all {
		return runAll(ctx, cfg, logger, stdout)
	}
	return runOne(ctx, cfg, logger, stdout, stderr)
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("gridastar", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mapName, "map", "empty", "map layout: "+strings.Join(layouts.Names(), ", "))
	fs.StringVar(&cfg.start, "start", "", "start cell as x,y (default: the map's start)")
	fs.StringVar(&cfg.goal, "goal", "", "goal cell as x,y (default: the map's goal)")
	fs.StringVar(&cfg.relax, "relax", "legacy", "relaxation policy: legacy or decrease-key")
	fs.BoolVar(&cfg.trace, "trace", false, "print the expansion order")
	fs.BoolVar(&cfg.jsonOut, "json", false, "print the result as JSON")
	fs.BoolVar(&cfg.copyPath, "copy", false, "copy the path to the clipboard")
	fs.BoolVar(&cfg.all, "all", false, "search every map with its default endpoints")
	fs.BoolVar(&cfg.play, "play", false, "animate the search in the terminal")
	fs.DurationVar(&cfg.frame, "frame", 50*time.Millisecond, "frame interval for -play")
	fs.DurationVar(&cfg.hold, "hold", 20*time.Second, "how long -play keeps the final frame")
	fs.IntVar(&cfg.workers, "workers", 4, "worker goroutines for -all")
	fs.StringVar(&cfg.logLevel, "log-level", "warning", "log level")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	switch cfg.relax {
	case "legacy":
		cfg.relaxation = astar.RelaxLegacy
	case "decrease-key":
		cfg.relaxation = astar.RelaxDecreaseKey
	default:
		return cfg, fmt.Errorf("unknown relaxation %q", cfg.relax)
	}
	if cfg.frame <= 0 {
		return cfg, fmt.Errorf("-frame must be > 0")
	}
	if cfg.workers <= 0 {
		return cfg, fmt.Errorf("-workers must be > 0")
	}
	return cfg, nil
}

func parseCell(s string) (astar.Cell, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return astar.Cell{}, fmt.Errorf("cell %q: want x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return astar.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return astar.Cell{}, fmt.Errorf("cell %q: %w", s, err)
	}
	return astar.Cell{X: x, Y: y}, nil
}

// endpointMessage phrases a rejected endpoint for the user.
func endpointMessage(err *astar.EndpointError) string {
	name := "Start"
	if err.Endpoint == astar.GoalEndpoint {
		name = "Goal"
	}
	switch err.Reason {
	case astar.ReasonOutOfBounds:
		return fmt.Sprintf("%s Node %v outside Map", name, err.Cell)
	case astar.ReasonObstacle:
		return fmt.Sprintf("%s Node %v inside obstacle", name, err.Cell)
	case astar.ReasonSameCell:
		return "Start node is Goal Node!!"
	}
	return err.Error()
}

func runOne(ctx context.Context, cfg config, logger *log.Logger, stdout, stderr io.Writer) int {
	layout, err := layouts.Get(cfg.mapName)
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitInvalid
	}
	start, goal := layout.Start, layout.Goal
	if cfg.start != "" {
		if start, err = parseCell(cfg.start); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return exitInvalid
		}
	}
	if cfg.goal != "" {
		if goal, err = parseCell(cfg.goal); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return exitInvalid
		}
	}
	grid, err := layout.Grid()
	if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}

	var endpointErr *astar.EndpointError
	if err := astar.ValidateEndpoints(grid, start, goal); errors.As(err, &endpointErr) {
		fmt.Fprintln(stdout, endpointMessage(endpointErr))
		return exitInvalid
	} else if err != nil {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}

	entry := logger.WithFields(log.Fields{"map": layout.Name, "relax": cfg.relaxation})
	options := []astar.Option{astar.WithRelaxation(cfg.relaxation), astar.WithLogger(entry)}

	began := time.Now()
	var result astar.Result
	if cfg.play {
		result, err = play(ctx, cfg, grid, start, goal, options)
		if errors.Is(err, render.ErrAborted) {
			return exitOK
		}
	} else {
		result, err = astar.Search(ctx, grid, start, goal, options...)
	}
	elapsed := time.Since(began)
	if err != nil && !errors.Is(err, astar.ErrUnreachable) {
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}

	report := newReport(layout.Name, start, goal, result, err)
	if cfg.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			fmt.Fprintln(stderr, "error:", err)
			return exitFailure
		}
	} else {
		printReport(stdout, report, cfg.trace)
		fmt.Fprintf(stdout, "Time to Find Solution Path %.3f seconds\n", elapsed.Seconds())
	}

	if cfg.copyPath && result.Found {
		if err := copyToClipboard(formatPath(result.Path)); err != nil {
			entry.WithError(err).Warn("copy to clipboard failed")
		}
	}
	return exitOK
}

func play(ctx context.Context, cfg config, grid *astar.Grid, start, goal astar.Cell, options []astar.Option) (astar.Result, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return astar.Result{}, err
	}
	if err := screen.Init(); err != nil {
		return astar.Result{}, err
	}
	defer screen.Fini()

	stepper, err := astar.NewStepper(ctx, grid, start, goal, options...)
	if err != nil {
		return astar.Result{}, err
	}
	defer stepper.Close()

	term := render.NewTerminal(screen, grid, start, goal)
	snap, err := term.Play(ctx, stepper, cfg.frame)
	if err != nil {
		return stepper.Result(), err
	}
	term.Hold(ctx, cfg.hold)
	if !snap.Found {
		return stepper.Result(), astar.ErrUnreachable
	}
	return stepper.Result(), nil
}

func runAll(ctx context.Context, cfg config, logger *log.Logger, stdout io.Writer) int {
	var jobs []astar.Job
	for _, layout := range layouts.All() {
		grid, err := layout.Grid()
		if err != nil {
			logger.WithError(err).WithField("map", layout.Name).Error("build map")
			return exitFailure
		}
		jobs = append(jobs, astar.Job{Name: layout.Name, Grid: grid, Start: layout.Start, Goal: layout.Goal})
	}

	results := astar.SearchBatch(ctx, jobs,
		astar.WithWorkers(cfg.workers),
		astar.WithRelaxation(cfg.relaxation),
		astar.WithLogger(logger),
	)

	reports := make([]pathReport, 0, len(results))
	code := exitOK
	for _, r := range results {
		if r.Err != nil && !errors.Is(r.Err, astar.ErrUnreachable) {
			logger.WithError(r.Err).WithField("map", r.Job.Name).Error("search failed")
			code = exitFailure
		}
		reports = append(reports, newReport(r.Job.Name, r.Job.Start, r.Job.Goal, r.Result, r.Err))
	}

	if cfg.jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			return exitFailure
		}
		return code
	}
	for _, report := range reports {
		printReport(stdout, report, cfg.trace)
	}
	return code
}

func toPair(c astar.Cell) [2]int { return [2]int{c.X, c.Y} }

func toPairs(cells []astar.Cell) [][2]int {
	if len(cells) == 0 {
		return nil
	}
	pairs := make([][2]int, len(cells))
	for i, c := range cells {
		pairs[i] = toPair(c)
	}
	return pairs
}

func newReport(name string, start, goal astar.Cell, result astar.Result, err error) pathReport {
	report := pathReport{
		Map:       name,
		Start:     toPair(start),
		Goal:      toPair(goal),
		Found:     result.Found,
		Path:      toPairs(result.Path),
		Costs:     result.Costs,
		TotalCost: result.TotalCost,
		Expanded:  toPairs(result.Expanded),
		Steps:     result.ExpandedNodes,
	}
	if err != nil {
		report.Error = err.Error()
	}
	return report
}

func formatPath(path []astar.Cell) string {
	parts := make([]string, len(path))
	for i, c := range path {
		parts[i] = fmt.Sprintf("[%d, %d]", c.X, c.Y)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func printReport(w io.Writer, report pathReport, trace bool) {
	fmt.Fprintf(w, "=== %s: (%d,%d) -> (%d,%d) ===\n",
		report.Map, report.Start[0], report.Start[1], report.Goal[0], report.Goal[1])
	if trace {
		for i, c := range report.Expanded {
			fmt.Fprintf(w, "expand %d: (%d,%d)\n", i+1, c[0], c[1])
		}
	}
	if !report.Found {
		fmt.Fprintf(w, "No path found after %d expansions\n", report.Steps)
		return
	}
	fmt.Fprintln(w, "Goal Reached !")
	parts := make([]string, len(report.Path))
	for i, c := range report.Path {
		parts[i] = fmt.Sprintf("(%d,%d)", c[0], c[1])
	}
	fmt.Fprintln(w, "Path:", strings.Join(parts, " "))
	fmt.Fprintf(w, "Cost to reach Goal Node --> %.3f\n", report.TotalCost)
	fmt.Fprintf(w, "Expanded nodes: %d\n", report.Steps)
}
