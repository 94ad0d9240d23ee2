package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/stretchr/testify/require"
)

type fakeTradesAPI struct {
	received []models.TradeRequest
	sent     []models.TradeRequest

	createdBookID  string
	createdMessage string
	updatedStatus  models.RequestStatus
	deletedID      string
}

func (f *fakeTradesAPI) CreateRequest(ctx context.Context, bookID, message string) (*models.TradeRequest, error) {
	f.createdBookID = bookID
	f.createdMessage = message
	return &models.TradeRequest{ID: "r1", BookID: bookID, Message: message, Status: models.StatusPending}, nil
}

func (f *fakeTradesAPI) ListReceived(ctx context.Context) ([]models.TradeRequest, error) {
	return f.received, nil
}

func (f *fakeTradesAPI) ListSent(ctx context.Context) ([]models.TradeRequest, error) {
	return f.sent, nil
}

func (f *fakeTradesAPI) UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TradeRequest, error) {
	f.updatedStatus = status
	return &models.TradeRequest{ID: id, Status: status}, nil
}

func (f *fakeTradesAPI) DeleteRequest(ctx context.Context, id string) error {
	f.deletedID = id
	return nil
}

func newTradesApp(tr *fakeTradesAPI) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		trades: tr,
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &out,
	}, &out
}

func TestCreateRequest_SendsMessage(t *testing.T) {
	tr := &fakeTradesAPI{}
	app, out := newTradesApp(tr)
	stubInput(t, []string{"interested in a swap"}, "")

	app.createRequest(context.Background(), "b1")

	require.Equal(t, "b1", tr.createdBookID)
	require.Equal(t, "interested in a swap", tr.createdMessage)
	require.Contains(t, out.String(), "Request r1 sent.")
}

func TestListReceived_PrintsRequests(t *testing.T) {
	tr := &fakeTradesAPI{received: []models.TradeRequest{
		{ID: "r1", BookTitle: "Dune", Status: models.StatusPending, RequesterName: "Bob", Message: "swap?"},
	}}
	app, out := newTradesApp(tr)

	app.listReceived(context.Background())

	require.Contains(t, out.String(), "Dune")
	require.Contains(t, out.String(), "pending")
	require.Contains(t, out.String(), "Bob")
}

func TestListSent_Empty(t *testing.T) {
	app, out := newTradesApp(&fakeTradesAPI{})

	app.listSent(context.Background())

	require.Contains(t, out.String(), "No requests.")
}

func TestAnswerRequest_Accept(t *testing.T) {
	tr := &fakeTradesAPI{}
	app, out := newTradesApp(tr)

	app.answerRequest(context.Background(), "r1", models.StatusAccepted)

	require.Equal(t, models.StatusAccepted, tr.updatedStatus)
	require.Contains(t, out.String(), "Request r1 is now accepted.")
}

func TestCancelRequest_Deletes(t *testing.T) {
	tr := &fakeTradesAPI{}
	app, out := newTradesApp(tr)

	app.cancelRequest(context.Background(), "r1")

	require.Equal(t, "r1", tr.deletedID)
	require.Contains(t, out.String(), "Request cancelled.")
}
