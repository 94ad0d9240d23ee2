package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/common"
	"github.com/stretchr/testify/require"
)

type fakeBooksAPI struct {
	listRet []models.Book
	listErr error
	getErr  error

	created *api.BookParams
}

func (f *fakeBooksAPI) ListBooks(ctx context.Context) ([]models.Book, error) {
	return f.listRet, f.listErr
}

func (f *fakeBooksAPI) GetBook(ctx context.Context, id string) (*models.Book, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return &models.Book{ID: id, Title: "T", Author: "A"}, nil
}

func (f *fakeBooksAPI) SearchBooks(ctx context.Context, title, condition string) ([]models.Book, error) {
	return f.listRet, f.listErr
}

func (f *fakeBooksAPI) CreateBook(ctx context.Context, p api.BookParams) (*models.Book, error) {
	f.created = &p
	return &models.Book{ID: "b-new", Title: p.Title}, nil
}

func (f *fakeBooksAPI) UpdateBook(ctx context.Context, id string, p api.BookParams) (*models.Book, error) {
	return &models.Book{ID: id, Title: p.Title}, nil
}

func (f *fakeBooksAPI) DeleteBook(ctx context.Context, id string) error { return nil }

func (f *fakeBooksAPI) ListMyBooks(ctx context.Context) ([]models.Book, error) {
	return f.listRet, f.listErr
}

type fakeCatalog struct {
	cached     []models.Book
	replaceErr error
}

func (f *fakeCatalog) ReplaceAll(ctx context.Context, books []models.Book) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.cached = books
	return nil
}

func (f *fakeCatalog) GetAll(ctx context.Context) ([]models.Book, error) {
	return f.cached, nil
}

func newBooksApp(b *fakeBooksAPI, c *fakeCatalog, input string) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	return &App{
		books:   b,
		catalog: c,
		reader:  bufio.NewReader(strings.NewReader(input)),
		out:     &out,
	}, &out
}

func TestListBooks_Success_PrintsAndRefreshesCache(t *testing.T) {
	b := &fakeBooksAPI{listRet: []models.Book{{ID: "b1", Title: "Dune", Author: "Herbert", Condition: "good"}}}
	c := &fakeCatalog{}
	app, out := newBooksApp(b, c, "")

	app.listBooks(context.Background())

	require.Contains(t, out.String(), "Dune")
	require.Len(t, c.cached, 1)
}

func TestListBooks_ServerDown_FallsBackToCache(t *testing.T) {
	b := &fakeBooksAPI{listErr: api.ErrUnavailable}
	c := &fakeCatalog{cached: []models.Book{{ID: "b1", Title: "Cached", Author: "X"}}}
	app, out := newBooksApp(b, c, "")

	app.listBooks(context.Background())

	require.Contains(t, out.String(), "cached listing")
	require.Contains(t, out.String(), "Cached")
}

func TestListBooks_ServerDown_EmptyCache_PrintsError(t *testing.T) {
	b := &fakeBooksAPI{listErr: api.ErrUnavailable}
	c := &fakeCatalog{}
	app, out := newBooksApp(b, c, "")

	app.listBooks(context.Background())

	require.Contains(t, out.String(), "Could not fetch books")
}

func TestShowBook_NotFound(t *testing.T) {
	b := &fakeBooksAPI{getErr: fmt.Errorf("api error 404: %w", common.ErrorNotFound)}
	app, out := newBooksApp(b, &fakeCatalog{}, "")

	app.showBook(context.Background(), "nope")

	require.Contains(t, out.String(), "Book nope not found.")
}

func TestAddBook_RequiredFieldValidation(t *testing.T) {
	b := &fakeBooksAPI{}
	app, out := newBooksApp(b, &fakeCatalog{}, "")
	stubInput(t, []string{"", "Author", "good", "", ""}, "")

	app.addBook(context.Background())

	require.Nil(t, b.created, "no network call on validation failure")
	require.Contains(t, out.String(), "required")
}

func TestAddBook_Success(t *testing.T) {
	b := &fakeBooksAPI{}
	app, out := newBooksApp(b, &fakeCatalog{}, "")
	stubInput(t, []string{"Dune", "Herbert", "good", "classic", ""}, "")

	app.addBook(context.Background())

	require.NotNil(t, b.created)
	require.Equal(t, "Dune", b.created.Title)
	require.Nil(t, b.created.Image)
	require.Contains(t, out.String(), "Created \"Dune\"")
}
