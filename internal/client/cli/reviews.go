package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/models"
	"github.com/aka-Harsh/eventbook/internal/common"
)

var reviewHeaders = []string{"ID", "EVENT", "RATING", "COMMENT", "BY"}

func reviewRows(reviews []models.Review) [][]string {
	rows := make([][]string, 0, len(reviews))
	for _, r := range reviews {
		event, by := "", ""
		if r.Event != nil {
			event = r.Event.Name
		}
		if r.User != nil {
			by = r.User.Name
		}
		rows = append(rows, []string{
			strconv.FormatInt(r.ID, 10),
			event,
			strconv.Itoa(r.Rating) + "/5",
			r.Comment,
			by,
		})
	}
	return rows
}

// showReviews renders the reviews tab: the user's own reviews, or all
// reviews for an administrator.
func (a *App) showReviews(ctx context.Context) error {
	var (
		reviews []models.Review
		err     error
	)
	if a.isAdmin() {
		reviews, err = a.client.ListReviews(ctx)
	} else {
		reviews, err = a.client.UserReviews(ctx, a.session.Current().ID)
	}
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not load reviews"))
		return err
	}
	a.printTable(reviewHeaders, reviewRows(reviews))
	return nil
}

// AddReview collects a rating and comment for an event and submits them.
// The rating must be 1..5; checked before anything is sent.
func (a *App) AddReview(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}
	eventID, err := parseID(arg)
	if err != nil {
		a.printErr("Usage: review <event-id>")
		return err
	}

	rating, err := GetInt(a.reader, "Rating (1-5)", a.out)
	if err != nil {
		a.printErr("Rating must be a number between 1 and 5")
		return common.ErrValidation
	}
	if rating < 1 || rating > 5 {
		a.printErr("Rating must be between 1 and 5")
		return common.ErrValidation
	}

	comment, err := GetMultiline(a.reader, "Comment", a.out)
	if err != nil {
		return err
	}

	r, err := a.client.CreateReview(ctx, models.ReviewRequest{
		UserID:  a.session.Current().ID,
		EventID: eventID,
		Rating:  rating,
		Comment: comment,
	})
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not submit review"))
		return err
	}
	a.printOK(fmt.Sprintf("Review %d submitted, %d/5", r.ID, r.Rating))
	return nil
}

// EventReviews lists one event's reviews together with its summary.
func (a *App) EventReviews(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}
	eventID, err := parseID(arg)
	if err != nil {
		a.printErr("Usage: event-reviews <event-id>")
		return err
	}

	reviews, err := a.client.EventReviews(ctx, eventID)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not load reviews"))
		return err
	}
	if sum, err := a.client.ReviewSummary(ctx, eventID); err == nil && sum.TotalReviews > 0 {
		fmt.Fprintf(a.out, "Average %.1f/5 over %d reviews\n", sum.AverageRating, sum.TotalReviews)
	}
	a.printTable(reviewHeaders, reviewRows(reviews))
	return nil
}
