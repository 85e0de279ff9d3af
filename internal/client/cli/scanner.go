package cli

import (
	"context"
	"fmt"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/models"
	"github.com/aka-Harsh/eventbook/internal/common"
)

// VerifyCode submits a scanned QR payload for entry verification. The
// payload is opaque; the service owns its format and the verdict.
func (a *App) VerifyCode(ctx context.Context, payload string) error {
	if !a.requireAdmin() {
		return nil
	}
	if payload == "" {
		a.printErr("Usage: verify <qr-payload>")
		return common.ErrValidation
	}

	v, err := a.client.VerifyQR(ctx, payload)
	if err != nil {
		a.printErr(api.UserMessage(err, "Verification failed"))
		return err
	}
	if !v.Valid {
		msg := v.Message
		if msg == "" {
			msg = "Invalid QR code"
		}
		a.printErr(msg)
		return nil
	}

	a.printOK("Valid ticket")
	if v.Booking != nil {
		a.printBooking(v.Booking)
	}
	return nil
}

// LookupReference finds a booking by its human-readable reference, the
// fallback when a QR code will not scan.
func (a *App) LookupReference(ctx context.Context, ref string) error {
	if !a.requireAdmin() {
		return nil
	}
	if ref == "" {
		a.printErr("Usage: lookup <booking-reference>")
		return common.ErrValidation
	}

	b, err := a.client.BookingByReference(ctx, ref)
	if err != nil {
		a.printErr(api.UserMessage(err, "Booking not found"))
		return err
	}
	a.printBooking(b)
	return nil
}

func (a *App) printBooking(b *models.Booking) {
	fmt.Fprintf(a.out, "Booking %d: %s, %d ticket(s), total %.2f\n",
		b.ID, b.Status, b.TicketsBooked, b.TotalAmount)
	if b.Event != nil {
		fmt.Fprintf(a.out, "Event: %s (%s %s, %s)\n", b.Event.Name, b.Event.Date, b.Event.Time, b.Event.Location)
	}
	if b.User != nil {
		fmt.Fprintf(a.out, "Holder: %s <%s>\n", b.User.Name, b.User.Email)
	}
	if b.BookingReference != "" {
		fmt.Fprintln(a.out, faintStyle.Render("reference: "+b.BookingReference))
	}
}
