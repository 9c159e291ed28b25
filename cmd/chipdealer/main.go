package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/chip-dealer/internal/application"
	"github.com/eugenenazirov/chip-dealer/internal/config"
	"github.com/eugenenazirov/chip-dealer/internal/logging"
)

var signalNotify = signal.Notify

// cli holds the parsed command-line flags.
type cli struct {
	app        *kingpin.Application
	configFile *string
	envFile    *string
	chips      *string
	people     *int
	peopleSet  bool
	buyIn      *string
	locale     *string
	symbol     *string
	timeout    *time.Duration
	timeoutSet bool
	logLevel   *string
	fromStdin  *bool
}

func newCLI() *cli {
	c := &cli{app: kingpin.New("chipdealer", "Poker Chip Distribution Calculator - splits a chip case so every player's stack sums exactly to the buy-in")}
	c.configFile = c.app.Flag("config", "Path to YAML configuration file").String()
	c.envFile = c.app.Flag("env-file", "Path to a .env file with configuration variables").String()
	c.chips = c.app.Flag("chips", "Comma-separated chip rolls in the form qty/$denomination, e.g. 100/$0.25").String()
	c.people = c.app.Flag("people", "Number of players sharing the chips").IsSetByUser(&c.peopleSet).Int()
	c.buyIn = c.app.Flag("buy-in", "Amount each player's chips must add up to, e.g. $10.00").String()
	c.locale = c.app.Flag("locale", "Locale used to format amounts, e.g. en-CA").String()
	c.symbol = c.app.Flag("currency-symbol", "Symbol printed before every amount, e.g. €").String()
	c.timeout = c.app.Flag("timeout", "Abandon the search after this long (set 0 to disable)").IsSetByUser(&c.timeoutSet).Duration()
	c.logLevel = c.app.Flag("log-level", "Log level: debug, info, warn or error").String()
	c.fromStdin = c.app.Flag("stdin", "Read chips, people and buy-in as three lines from standard input").Bool()
	return c
}

// overrides maps the flags onto config overrides. Flags the user did not
// pass stay nil so lower-precedence sources keep their values.
func (c *cli) overrides() *config.CLIOverrides {
	overrides := &config.CLIOverrides{
		ConfigFile:     *c.configFile,
		EnvFile:        *c.envFile,
		Chips:          c.chips,
		BuyIn:          c.buyIn,
		Locale:         c.locale,
		CurrencySymbol: c.symbol,
		LogLevel:       c.logLevel,
	}
	if c.peopleSet {
		overrides.People = c.people
	}
	if c.timeoutSet {
		overrides.SearchTimeout = c.timeout
	}
	return overrides
}

func main() {
	c := newCLI()
	kingpin.MustParse(c.app.Parse(os.Args[1:]))

	overrides := c.overrides()
	if *c.fromStdin {
		def, err := readDefinition(os.Stdin)
		if err != nil {
			c.app.FatalUsage("%v\n", err)
		}
		overrides.Chips = &def.chips
		overrides.People = &def.people
		overrides.BuyIn = &def.buyIn
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	ctx, stop := watchSignals(context.Background(), logger)
	defer stop()

	if err := app.Run(ctx, os.Stdout); err != nil {
		logger.Fatal("failed to distribute chips", zap.Error(err))
	}
}

// watchSignals returns a context that is cancelled on SIGINT or SIGTERM, so
// an interrupted search stops instead of running to completion.
func watchSignals(parent context.Context, logger *zap.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-quit:
			logger.Info("interrupted, abandoning search")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(quit)
		cancel()
	}
}

// definition is the three-line input.def format: chips, people, buy-in.
type definition struct {
	chips  string
	people int
	buyIn  string
}

var errIncompleteDefinition = errors.New("input must have three lines: chips, people and buy-in")

func readDefinition(r io.Reader) (definition, error) {
	lines := make([]string, 0, 3)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return definition{}, fmt.Errorf("read input: %w", err)
	}
	if len(lines) != 3 {
		return definition{}, fmt.Errorf("%w, got %d", errIncompleteDefinition, len(lines))
	}

	people, err := strconv.Atoi(lines[1])
	if err != nil || people < 0 {
		return definition{}, fmt.Errorf("invalid number of players %q", lines[1])
	}

	return definition{chips: lines[0], people: people, buyIn: lines[2]}, nil
}
