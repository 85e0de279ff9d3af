package cli

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aka-Harsh/eventbook/internal/client/api"
	"github.com/aka-Harsh/eventbook/internal/client/models"
)

var bookingHeaders = []string{"ID", "EVENT", "TICKETS", "TOTAL", "STATUS", "REFERENCE"}

func bookingRows(bookings []models.Booking) [][]string {
	rows := make([][]string, 0, len(bookings))
	for _, b := range bookings {
		event := ""
		if b.Event != nil {
			event = b.Event.Name
		}
		rows = append(rows, []string{
			strconv.FormatInt(b.ID, 10),
			event,
			strconv.Itoa(b.TicketsBooked),
			fmt.Sprintf("%.2f", b.TotalAmount),
			string(b.Status),
			b.BookingReference,
		})
	}
	return rows
}

// showBookings renders the bookings tab: the user's own bookings, or every
// booking when an administrator is looking.
func (a *App) showBookings(ctx context.Context) error {
	var (
		bookings []models.Booking
		err      error
	)
	if a.isAdmin() {
		bookings, err = a.client.ListBookings(ctx)
	} else {
		bookings, err = a.client.UserBookings(ctx, a.session.Current().ID)
	}
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not load bookings"))
		return err
	}
	a.printTable(bookingHeaders, bookingRows(bookings))
	return nil
}

// CancelBooking cancels one booking by id. The service decides whether the
// booking can still be cancelled.
func (a *App) CancelBooking(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		a.printErr("Usage: cancel <booking-id>")
		return err
	}

	b, err := a.client.CancelBooking(ctx, id)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not cancel booking"))
		return err
	}
	a.printOK(fmt.Sprintf("Booking %d is now %s", b.ID, b.Status))
	return nil
}

// SaveQR fetches a booking's QR image and writes the decoded PNG into the
// data directory, printing the path and the booking reference. The image
// payload is opaque to the client; it only decodes the base64 wrapper.
func (a *App) SaveQR(ctx context.Context, arg string) error {
	if !a.requireLogin() {
		return nil
	}
	id, err := parseID(arg)
	if err != nil {
		a.printErr("Usage: qr <booking-id>")
		return err
	}

	img, err := a.client.BookingQR(ctx, id)
	if err != nil {
		a.printErr(api.UserMessage(err, "Could not fetch QR code"))
		return err
	}

	payload := img.QRCodeImage
	// The service may prefix the base64 body with a data URL header.
	if i := strings.Index(payload, ","); i >= 0 && strings.HasPrefix(payload, "data:") {
		payload = payload[i+1:]
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		a.printErr("QR image could not be decoded")
		return fmt.Errorf("decode qr image: %w", err)
	}

	path := filepath.Join(a.dataDir, fmt.Sprintf("qr-%s.png", img.BookingReference))
	if err := os.WriteFile(path, data, 0o600); err != nil {
		a.printErr("Could not save QR image")
		return fmt.Errorf("write qr image: %w", err)
	}

	a.printOK(fmt.Sprintf("Saved QR for booking %s to %s", img.BookingReference, path))
	return nil
}
