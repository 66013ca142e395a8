package components

import (
	"context"
	"log/slog"
	"time"

	"ticket-booking/internal/domain/event"
	"ticket-booking/internal/pkg/clock"
	"ticket-booking/internal/pkg/config"
	"ticket-booking/internal/usecase/commands"
	"ticket-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

const startupTimeout = 30 * time.Second

var SeedModule = fx.Module("seed",
	fx.Invoke(registerSampleEvents),
)

func registerSampleEvents(
	lc fx.Lifecycle,
	cfg config.Config,
	cmds commands.EventCommands,
	catalog queries.EventQueries,
	clk clock.Clock,
	logger *slog.Logger,
) {
	if !cfg.Seed.SampleEvents {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			existing, err := catalog.ListAll(ctx)
			if err != nil {
				return err
			}
			if len(existing) > 0 {
				logger.Info("Catalog already populated; skipping sample events", "events", len(existing))
				return nil
			}
			created, err := cmds.ImportEvents(ctx, SampleEvents(clk.Now()))
			if err != nil {
				return err
			}
			logger.Info("Sample events initialized", "events", len(created))
			return nil
		},
	})
}

// SampleEvents is the demo catalog, dated relative to now.
func SampleEvents(now time.Time) []event.NewEventParams {
	day := 24 * time.Hour
	return []event.NewEventParams{
		{
			Name: "Rock Concert: The Legends", Venue: "Madison Square Garden",
			Date: now.Add(15 * day), PriceCents: 12000, TotalSeats: 5000, Category: "CONCERT",
			Description: "An unforgettable night with legendary rock bands performing their greatest hits.",
		},
		{
			Name: "NBA Finals Game 7", Venue: "Staples Center",
			Date: now.Add(30 * day), PriceCents: 25000, TotalSeats: 20000, Category: "SPORTS",
			Description: "Witness history in the making at the most anticipated basketball game of the year.",
		},
		{
			Name: "Shakespeare's Hamlet", Venue: "Broadway Theater",
			Date: now.Add(10 * day), PriceCents: 8500, TotalSeats: 800, Category: "THEATER",
			Description: "A modern adaptation of Shakespeare's classic tragedy performed by award-winning actors.",
		},
		{
			Name: "Tech Innovation Summit 2025", Venue: "Convention Center",
			Date: now.Add(45 * day), PriceCents: 50000, TotalSeats: 3000, Category: "CONFERENCE",
			Description: "Join industry leaders and innovators for three days of insights into the future of technology.",
		},
		{
			Name: "Summer Music Festival", Venue: "Central Park",
			Date: now.Add(60 * day), PriceCents: 7500, TotalSeats: 10000, Category: "FESTIVAL",
			Description: "A weekend of amazing music featuring 50+ artists across multiple stages.",
		},
		{
			Name: "Classical Symphony Night", Venue: "Carnegie Hall",
			Date: now.Add(20 * day), PriceCents: 9500, TotalSeats: 2500, Category: "CONCERT",
			Description: "Experience the beauty of classical music with a world-renowned symphony orchestra.",
		},
		{
			Name: "Comedy Night Live", Venue: "Comedy Club Downtown",
			Date: now.Add(7 * day), PriceCents: 4500, TotalSeats: 300, Category: "THEATER",
			Description: "Laugh out loud with top comedians performing their best routines.",
		},
		{
			Name: "FIFA World Cup Qualifier", Venue: "National Stadium",
			Date: now.Add(25 * day), PriceCents: 15000, TotalSeats: 60000, Category: "SPORTS",
			Description: "Don't miss this crucial World Cup qualifying match!",
		},
	}
}
