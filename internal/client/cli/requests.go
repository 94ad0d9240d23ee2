package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
)

// createRequest opens a trade request for the given book.
func (a *App) createRequest(ctx context.Context, bookID string) {
	message, err := getSimpleText(a.reader, "Message to the owner", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return
	}

	req, err := a.trades.CreateRequest(ctx, bookID, message)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create request: %s\n", err)
		return
	}
	fmt.Fprintf(a.out, "Request %s sent.\n", req.ID)
}

func (a *App) listReceived(ctx context.Context) {
	reqs, err := a.trades.ListReceived(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not fetch received requests: %s\n", err)
		return
	}
	a.printRequests(reqs)
}

func (a *App) listSent(ctx context.Context) {
	reqs, err := a.trades.ListSent(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not fetch sent requests: %s\n", err)
		return
	}
	a.printRequests(reqs)
}

// answerRequest accepts or declines a request on one of the user's books.
func (a *App) answerRequest(ctx context.Context, id string, status models.RequestStatus) {
	req, err := a.trades.UpdateRequestStatus(ctx, id, status)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update request: %s\n", err)
		return
	}
	fmt.Fprintf(a.out, "Request %s is now %s.\n", req.ID, req.Status)
}

func (a *App) cancelRequest(ctx context.Context, id string) {
	if err := a.trades.DeleteRequest(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not cancel request: %s\n", err)
		return
	}
	fmt.Fprintln(a.out, "Request cancelled.")
}

func (a *App) printRequests(reqs []models.TradeRequest) {
	if len(reqs) == 0 {
		fmt.Fprintln(a.out, "No requests.")
		return
	}
	for _, r := range reqs {
		title := r.BookTitle
		if title == "" {
			title = r.BookID
		}
		fmt.Fprintf(a.out, "%s  %s [%s] from %s: %s\n", r.ID, title, r.Status, r.RequesterName, r.Message)
	}
}
