package client

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/flightlog/internal/calculator"
	"github.com/mmynk/flightlog/internal/models"
)

// Dashboard is the landing summary for the caller.
type Dashboard struct {
	// Profile is nil until the caller has chosen a display name.
	Profile    *models.UserProfile
	Today      string
	Month      string
	TodayHours float64
	MonthHours float64
}

// Dashboard loads the profile and today's and this month's hours in parallel.
func (c *Client) Dashboard(ctx context.Context) (*Dashboard, error) {
	return c.DashboardAt(ctx, time.Now())
}

// DashboardAt is Dashboard for the day containing now.
func (c *Client) DashboardAt(ctx context.Context, now time.Time) (*Dashboard, error) {
	d := &Dashboard{
		Today: calculator.DateString(now),
	}
	d.Month = calculator.MonthOf(d.Today)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.Profile(ctx)
		d.Profile = p
		return err
	})
	g.Go(func() error {
		h, err := c.DailyHours(ctx, d.Today)
		d.TodayHours = h
		return err
	})
	g.Go(func() error {
		h, err := c.MonthlyHours(ctx, d.Month)
		d.MonthHours = h
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return d, nil
}
