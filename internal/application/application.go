package application

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/chip-dealer/internal/config"
	"github.com/eugenenazirov/chip-dealer/internal/dealer"
	"github.com/eugenenazirov/chip-dealer/internal/inventory"
	"github.com/eugenenazirov/chip-dealer/internal/money"
	"github.com/eugenenazirov/chip-dealer/internal/presenter"
)

// App encapsulates the application dependencies.
type App struct {
	cfg       config.Config
	inventory *inventory.Case
	dealer    dealer.Distributor
	formatter *money.Formatter
	logger    *zap.Logger
}

// New initializes the application with all dependencies from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) (*App, error) {
	chips, err := inventory.Parse(cfg.Chips)
	if err != nil {
		return nil, fmt.Errorf("failed to parse chips: %w", err)
	}

	return &App{
		cfg:       cfg,
		inventory: chips,
		dealer:    dealer.New(dealer.WithLogger(logger)),
		formatter: money.NewFormatter(cfg.Locale,
			money.WithSymbol(cfg.CurrencySymbol),
			money.WithScales(chips.Scales()),
		),
		logger:    logger,
	}, nil
}

// Distribute computes one person's share, bounded by the configured search timeout.
func (a *App) Distribute(ctx context.Context) (dealer.Result, error) {
	if a.cfg.SearchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.cfg.SearchTimeout)
		defer cancel()
	}

	denominations := a.inventory.Denominations()
	shown := make([]string, 0, len(denominations))
	for _, d := range denominations {
		shown = append(shown, a.formatter.Format(d))
	}
	a.logger.Debug("dealing chips",
		zap.Int("rolls", len(a.inventory.Rolls())),
		zap.Strings("denominations", shown),
		zap.Int("chips", a.inventory.Chips()),
		zap.Int("people", a.cfg.People),
		zap.String("buy_in", a.formatter.Format(a.cfg.BuyIn.Cents)),
	)

	result, err := a.dealer.Distribute(ctx, a.inventory.Rolls(), a.cfg.People, a.cfg.BuyIn.Cents)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return dealer.Result{}, fmt.Errorf("no distribution found within %s: %w", a.cfg.SearchTimeout, err)
		}
		return dealer.Result{}, err
	}

	a.logger.Info("distribution computed",
		zap.Stringer("status", result.Status),
		zap.Int("chips_per_person", result.Chips),
		zap.Int("calls", result.Calls),
	)
	return result, nil
}

// Render formats a result the way Run prints it, without the final newline.
func (a *App) Render(result dealer.Result) string {
	return presenter.Render(result.Counts, a.formatter)
}

// Run computes the distribution and writes it to w. Nothing is written when
// there is nothing to display.
func (a *App) Run(ctx context.Context, w io.Writer) error {
	result, err := a.Distribute(ctx)
	if err != nil {
		return err
	}

	out := a.Render(result)
	if out == "" {
		a.logger.Info("nothing to display", zap.Stringer("status", result.Status))
		return nil
	}

	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("write distribution: %w", err)
	}
	return nil
}
