package cli

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/models"
)

// showDashboard renders the admin operations dashboard. The dashboard
// aggregate and the revenue analytics come from separate endpoints and are
// fetched concurrently; either failing fails the whole view, since a
// half-rendered dashboard is worse than an error line.
func (a *App) showDashboard(ctx context.Context) error {
	var (
		dash *models.Dashboard
		rev  models.Revenue
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dash, err = a.client.Dashboard(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rev, err = a.client.Revenue(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		a.printErr(api.UserMessage(err, "Could not load dashboard"))
		return err
	}

	a.printStats("Users", dash.UserStats)
	a.printStats("Events", dash.EventStats)
	a.printStats("Bookings", dash.BookingStats)
	a.printStats("Reviews", dash.ReviewStats)
	a.printStats("Revenue", rev)

	if len(dash.RecentBookings) > 0 {
		fmt.Fprintln(a.out, headerStyle.Render("Recent bookings"))
		a.printTable(bookingHeaders, bookingRows(dash.RecentBookings))
	}
	if len(dash.RecentReviews) > 0 {
		fmt.Fprintln(a.out, headerStyle.Render("Recent reviews"))
		a.printTable(reviewHeaders, reviewRows(dash.RecentReviews))
	}
	return nil
}

// printStats renders one open-ended stat group with stable key order. The
// service adds keys freely, so values are printed as-is.
func (a *App) printStats(title string, stats map[string]any) {
	if len(stats) == 0 {
		return
	}
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintln(a.out, headerStyle.Render(title))
	for _, k := range keys {
		fmt.Fprintf(a.out, "  %s: %v\n", k, stats[k])
	}
}
