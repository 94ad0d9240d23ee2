package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/common"
)

// listBooks prints all listings. On success the snapshot is cached; when
// the server is unreachable the last cached snapshot is shown instead.
func (a *App) listBooks(ctx context.Context) {
	books, err := a.books.ListBooks(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			cached, cerr := a.catalog.GetAll(ctx)
			if cerr == nil && len(cached) > 0 {
				fmt.Fprintln(a.out, "Server unavailable, showing cached listing:")
				a.printBooks(cached)
				return
			}
		}
		fmt.Fprintf(a.out, "Could not fetch books: %s\n", err)
		return
	}

	if err := a.catalog.ReplaceAll(ctx, books); err != nil {
		fmt.Fprintf(a.out, "warning: failed to refresh local cache: %s\n", err)
	}
	a.printBooks(books)
}

func (a *App) showBook(ctx context.Context, id string) {
	book, err := a.books.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fmt.Fprintf(a.out, "Book %s not found.\n", id)
			return
		}
		fmt.Fprintf(a.out, "Could not fetch book: %s\n", err)
		return
	}
	fmt.Fprintf(a.out, "%s by %s [%s]\n", book.Title, book.Author, book.Condition)
	if book.Description != "" {
		fmt.Fprintln(a.out, book.Description)
	}
	if book.OwnerName != "" {
		fmt.Fprintf(a.out, "Owner: %s\n", book.OwnerName)
	}
}

func (a *App) searchBooks(ctx context.Context) {
	title, err := getSimpleText(a.reader, "Title contains (empty for any)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return
	}
	condition, err := getSimpleText(a.reader, "Condition (empty for any)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return
	}

	books, err := a.books.SearchBooks(ctx, title, condition)
	if err != nil {
		fmt.Fprintf(a.out, "Search failed: %s\n", err)
		return
	}
	a.printBooks(books)
}

func (a *App) listMyBooks(ctx context.Context) {
	books, err := a.books.ListMyBooks(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not fetch your books: %s\n", err)
		return
	}
	a.printBooks(books)
}

// addBook collects listing fields and an optional cover image and creates
// the listing. Required fields are checked before any network call.
func (a *App) addBook(ctx context.Context) {
	params, cleanup, ok := a.readBookParams()
	if !ok {
		return
	}
	defer cleanup()

	book, err := a.books.CreateBook(ctx, params)
	if err != nil {
		fmt.Fprintf(a.out, "Could not create book: %s\n", err)
		return
	}
	fmt.Fprintf(a.out, "Created %q (id %s)\n", book.Title, book.ID)
}

func (a *App) updateBook(ctx context.Context, id string) {
	params, cleanup, ok := a.readBookParams()
	if !ok {
		return
	}
	defer cleanup()

	book, err := a.books.UpdateBook(ctx, id, params)
	if err != nil {
		fmt.Fprintf(a.out, "Could not update book: %s\n", err)
		return
	}
	fmt.Fprintf(a.out, "Updated %q\n", book.Title)
}

func (a *App) deleteBook(ctx context.Context, id string) {
	if err := a.books.DeleteBook(ctx, id); err != nil {
		fmt.Fprintf(a.out, "Could not delete book: %s\n", err)
		return
	}
	fmt.Fprintln(a.out, "Deleted.")
}

// readBookParams prompts for the listing fields. The returned cleanup
// closes the image file, if one was opened. ok=false means validation
// failed or input was aborted.
func (a *App) readBookParams() (api.BookParams, func(), bool) {
	var p api.BookParams
	cleanup := func() {}

	fields := []struct {
		prompt   string
		dest     *string
		required bool
	}{
		{"Title", &p.Title, true},
		{"Author", &p.Author, true},
		{"Condition (new/good/fair/poor)", &p.Condition, true},
		{"Description", &p.Description, false},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			fmt.Fprintf(a.out, "error: %s\n", err)
			return p, cleanup, false
		}
		if f.required && v == "" {
			fmt.Fprintf(a.out, "%s is required.\n", f.prompt)
			return p, cleanup, false
		}
		*f.dest = v
	}

	imagePath, err := getSimpleText(a.reader, "Cover image path (empty to skip)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %s\n", err)
		return p, cleanup, false
	}
	if imagePath != "" {
		file, err := os.Open(imagePath)
		if err != nil {
			fmt.Fprintf(a.out, "Could not open image: %s\n", err)
			return p, cleanup, false
		}
		p.Image = file
		p.ImageFilename = filepath.Base(imagePath)
		cleanup = func() { _ = file.Close() }
	}

	return p, cleanup, true
}

func (a *App) printBooks(books []models.Book) {
	if len(books) == 0 {
		fmt.Fprintln(a.out, "No books found.")
		return
	}
	for _, b := range books {
		fmt.Fprintf(a.out, "%s  %s by %s [%s]\n", b.ID, b.Title, b.Author, b.Condition)
	}
}
