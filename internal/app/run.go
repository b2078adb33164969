package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/age/internal/birthday"
	"github.com/specialistvlad/age/internal/ctxlog"
	"github.com/specialistvlad/age/internal/records"
	"github.com/specialistvlad/age/internal/render"
)

// Run loads the birthdate file and prints the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	res, err := records.Load(ctx, a.source, records.Options{Strict: a.config.Strict})
	if err != nil {
		if errors.Is(err, records.ErrUnreadable) {
			return err
		}
		return fmt.Errorf("failed to load birthdays: %w", err)
	}
	if len(res.Skipped) > 0 {
		a.logger.Info("Skipped malformed lines.", "count", len(res.Skipped))
	}

	today := a.clock.Today()
	a.logger.Debug("Evaluating ages.", "today", today.String(), "people", len(res.People))

	// Warnings cover everyone in the file, not just the people printed below.
	if a.config.Warn {
		if err := render.Warnings(a.outW, res.People, today, a.config.WarnDays); err != nil {
			return fmt.Errorf("failed to write warnings: %w", err)
		}
	}

	people := birthday.Filter(res.People, a.config.All)
	if a.config.Sort {
		birthday.SortByAnniversary(people)
	}

	if a.config.Long {
		err = render.Table(a.outW, people, today, a.config.Days)
	} else {
		err = render.Compact(a.outW, people, today, a.config.Days)
	}
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}
