package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/models"
	"github.com/aka-Harsh/eventbook/internal/common"
)

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: expected a numeric id, got %q", common.ErrValidation, arg)
	}
	return id, nil
}

func eventRows(events []models.Event) [][]string {
	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{
			strconv.FormatInt(e.ID, 10),
			e.Name,
			e.Type,
			e.Date + " " + e.Time,
			e.Location,
			fmt.Sprintf("%.2f", e.CurrentPrice),
			strconv.Itoa(e.AvailableTickets),
		})
	}
	return rows
}

var eventHeaders = []string{"ID", "NAME", "TYPE", "WHEN", "LOCATION", "PRICE", "LEFT"}

// showEvents renders the event catalog for the events tab.
func (a *App) showEvents(ctx context.Context) error {
	events, err := a.client.ListEvents(ctx)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not load events"))
		return err
	}
	a.printTable(eventHeaders, eventRows(events))
	return nil
}

// SearchEvents lists events matching a free-text query.
func (a *App) SearchEvents(ctx context.Context, query string) error {
	if !a.requireLogin() {
		return nil
	}
	if query == "" {
		a.printErr("Usage: search <query>")
		return common.ErrValidation
	}
	events, err := a.client.SearchEvents(ctx, query)
	if err != nil {
		a.printErr(api.UserMessage(err, "Search failed"))
		return err
	}
	a.printTable(eventHeaders, eventRows(events))
	return nil
}

// FilterEvents lists events of one type (CONCERT, SPORTS, ...).
func (a *App) FilterEvents(ctx context.Context, eventType string) error {
	if !a.requireLogin() {
		return nil
	}
	if eventType == "" {
		a.printErr("Usage: type <event-type>")
		return common.ErrValidation
	}
	events, err := a.client.EventsByType(ctx, eventType)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not load events"))
		return err
	}
	a.printTable(eventHeaders, eventRows(events))
	return nil
}

// ShowEvent renders one event in detail: description, availability, the
// review summary, and a handful of recommended events. Recommendation or
// summary failures degrade the view instead of replacing it.
func (a *App) ShowEvent(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		a.printErr("Usage: show <event-id>")
		return err
	}

	e, err := a.client.GetEvent(ctx, id)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not load event"))
		return err
	}

	fmt.Fprintln(a.out, titleStyle.Render(e.Name))
	fmt.Fprintln(a.out, e.Description)
	fmt.Fprintf(a.out, "%s %s at %s (%s)\n", e.Date, e.Time, e.Location, e.Type)
	fmt.Fprintf(a.out, "Price %.2f (base %.2f), %d of %d tickets left (%.0f%% sold)\n",
		e.CurrentPrice, e.BasePrice, e.AvailableTickets, e.TotalTickets, e.SoldPercentage)
	if e.Tags != "" {
		fmt.Fprintln(a.out, faintStyle.Render("tags: "+e.Tags))
	}

	if sum, err := a.client.ReviewSummary(ctx, id); err == nil && sum.TotalReviews > 0 {
		fmt.Fprintf(a.out, "Rated %.1f/5 from %d reviews\n", sum.AverageRating, sum.TotalReviews)
	}
	if recs, err := a.client.Recommendations(ctx, id); err == nil && len(recs) > 0 {
		fmt.Fprintln(a.out, headerStyle.Render("You may also like"))
		a.printTable(eventHeaders, eventRows(recs))
	}
	return nil
}

// BookEvent books tickets for the current user: "book <eventID> <tickets>".
// The ticket count must be a positive integer; the service settles pricing
// and availability.
func (a *App) BookEvent(ctx context.Context, args []string) error {
	if !a.requireLogin() {
		return nil
	}
	if len(args) != 2 {
		a.printErr("Usage: book <event-id> <tickets>")
		return common.ErrValidation
	}
	id, err := parseID(args[0])
	if err != nil {
		a.printErr("Usage: book <event-id> <tickets>")
		return err
	}
	tickets, err := strconv.Atoi(args[1])
	if err != nil || tickets <= 0 {
		a.printErr("Ticket count must be a positive number")
		return common.ErrValidation
	}

	b, err := a.client.CreateBooking(ctx, models.BookingRequest{
		UserID:           a.session.Current().ID,
		EventID:          id,
		TicketsRequested: tickets,
	})
	if err != nil {
		a.printErr(api.UserMessage(err, "Booking failed"))
		return err
	}

	a.printOK(fmt.Sprintf("Booked %d ticket(s), total %.2f. Reference: %s",
		b.TicketsBooked, b.TotalAmount, b.BookingReference))
	return nil
}

// promptEvent collects the fields of an event form. Existing values act as
// fallbacks so updates can keep fields by submitting empty input.
func (a *App) promptEvent(existing *models.Event) (models.EventRequest, error) {
	var base models.EventRequest
	if existing != nil {
		base = models.EventRequest{
			Name:         existing.Name,
			Description:  existing.Description,
			Type:         existing.Type,
			Tags:         existing.Tags,
			Date:         existing.Date,
			Time:         existing.Time,
			Location:     existing.Location,
			TotalTickets: existing.TotalTickets,
			BasePrice:    existing.BasePrice,
		}
	}

	var req models.EventRequest
	var err error
	if req.Name, err = GetOptionalText(a.reader, "Name", base.Name, a.out); err != nil {
		return req, err
	}
	if req.Description, err = GetOptionalText(a.reader, "Description", base.Description, a.out); err != nil {
		return req, err
	}
	if req.Type, err = GetOptionalText(a.reader, "Type (CONCERT, SPORTS, THEATER, ...)", base.Type, a.out); err != nil {
		return req, err
	}
	if req.Tags, err = GetOptionalText(a.reader, "Tags (comma separated)", base.Tags, a.out); err != nil {
		return req, err
	}
	if req.Date, err = GetOptionalText(a.reader, "Date (YYYY-MM-DD)", base.Date, a.out); err != nil {
		return req, err
	}
	if req.Time, err = GetOptionalText(a.reader, "Time (HH:MM)", base.Time, a.out); err != nil {
		return req, err
	}
	if req.Location, err = GetOptionalText(a.reader, "Location", base.Location, a.out); err != nil {
		return req, err
	}

	tickets, err := GetOptionalText(a.reader, "Total tickets", strconv.Itoa(base.TotalTickets), a.out)
	if err != nil {
		return req, err
	}
	if req.TotalTickets, err = strconv.Atoi(tickets); err != nil {
		return req, fmt.Errorf("%w: total tickets must be a number", common.ErrValidation)
	}

	price, err := GetOptionalText(a.reader, "Base price", fmt.Sprintf("%.2f", base.BasePrice), a.out)
	if err != nil {
		return req, err
	}
	if req.BasePrice, err = strconv.ParseFloat(price, 64); err != nil {
		return req, fmt.Errorf("%w: base price must be a number", common.ErrValidation)
	}
	return req, nil
}

func validateEvent(req models.EventRequest) string {
	switch {
	case req.Name == "":
		return "Event name is required"
	case req.Date == "" || req.Time == "":
		return "Date and time are required"
	case req.Location == "":
		return "Location is required"
	case req.TotalTickets <= 0:
		return "Total tickets must be positive"
	case req.BasePrice <= 0:
		return "Base price must be positive"
	}
	return ""
}

// CreateEvent walks an admin through the new-event form.
func (a *App) CreateEvent(ctx context.Context) error {
	if !a.requireAdmin() {
		return nil
	}
	req, err := a.promptEvent(nil)
	if err != nil {
		a.printErr(err.Error())
		return err
	}
	if msg := validateEvent(req); msg != "" {
		a.printErr(msg)
		return common.ErrValidation
	}

	e, err := a.client.CreateEvent(ctx, req)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not create event"))
		return err
	}
	a.printOK(fmt.Sprintf("Created event %d: %s", e.ID, e.Name))
	return nil
}

// UpdateEvent edits an existing event, offering its current values as
// defaults.
func (a *App) UpdateEvent(ctx context.Context, arg string) error {
	if !a.requireAdmin() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		a.printErr("Usage: update <event-id>")
		return err
	}

	existing, err := a.client.GetEvent(ctx, id)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not load event"))
		return err
	}
	req, err := a.promptEvent(existing)
	if err != nil {
		a.printErr(err.Error())
		return err
	}
	if msg := validateEvent(req); msg != "" {
		a.printErr(msg)
		return common.ErrValidation
	}

	e, err := a.client.UpdateEvent(ctx, id, req)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not update event"))
		return err
	}
	a.printOK(fmt.Sprintf("Updated event %d: %s", e.ID, e.Name))
	return nil
}

// DeleteEvent removes an event after a typed confirmation.
func (a *App) DeleteEvent(ctx context.Context, arg string) error {
	if !a.requireAdmin() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		a.printErr("Usage: delete <event-id>")
		return err
	}

	confirm, err := getSimpleText(a.reader, fmt.Sprintf("Delete event %d? (yes/no)", id), a.out)
	if err != nil {
		return err
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled.")
		return nil
	}

	if err := a.client.DeleteEvent(ctx, id); err != nil {
		a.printErr(api.UserMessage(err, "Could not delete event"))
		return err
	}
	a.printOK(fmt.Sprintf("Deleted event %d", id))
	return nil
}
