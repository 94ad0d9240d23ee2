package cli

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/bookswap/internal/client/api"
	"github.com/dmitrijs2005/bookswap/internal/client/config"
	"github.com/dmitrijs2005/bookswap/internal/client/models"
	"github.com/dmitrijs2005/bookswap/internal/client/repositories/catalog"
	"github.com/dmitrijs2005/bookswap/internal/client/session"
	"github.com/dmitrijs2005/bookswap/internal/client/storage"
	"github.com/dmitrijs2005/bookswap/internal/logging"

	_ "modernc.org/sqlite"
)

// SessionService is the slice of the session manager the CLI consumes.
type SessionService interface {
	Resolve(ctx context.Context)
	Login(ctx context.Context, email, password string) session.Result
	Register(ctx context.Context, name, email, password string) session.Result
	Logout(ctx context.Context)
	User() *models.User
	State() session.State
	OnChange(fn func(session.State))
}

// BooksAPI is the book surface of the REST client.
type BooksAPI interface {
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id string) (*models.Book, error)
	SearchBooks(ctx context.Context, title, condition string) ([]models.Book, error)
	CreateBook(ctx context.Context, p api.BookParams) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, p api.BookParams) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error
	ListMyBooks(ctx context.Context) ([]models.Book, error)
}

// TradesAPI is the trade-request surface of the REST client.
type TradesAPI interface {
	CreateRequest(ctx context.Context, bookID, message string) (*models.TradeRequest, error)
	ListReceived(ctx context.Context) ([]models.TradeRequest, error)
	ListSent(ctx context.Context) ([]models.TradeRequest, error)
	UpdateRequestStatus(ctx context.Context, id string, status models.RequestStatus) (*models.TradeRequest, error)
	DeleteRequest(ctx context.Context, id string) error
}

type App struct {
	config  *config.Config
	session SessionService
	books   BooksAPI
	trades  TradesAPI
	catalog catalog.Repository
	repos   *storage.Repositories
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp wires the full client: local database, REST client with its hook
// pipeline, and the session manager sitting between them.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	repos, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, err
	}

	apiClient := api.New(c.APIBaseURL, api.WithLogger(log))
	mgr := session.NewManager(apiClient, repos.Credentials, log)

	// Hook order matters: the request id goes on first, then the bearer
	// header. The 401 observer invalidates the session before the failing
	// call's error reaches its caller.
	apiClient.Use(api.RequestID())
	apiClient.Use(api.BearerAuth(mgr))
	apiClient.Observe(api.OnUnauthorized(func() {
		mgr.Invalidate(context.Background())
	}))

	return &App{
		config:  c,
		session: mgr,
		books:   apiClient,
		trades:  apiClient,
		catalog: repos.Catalog,
		repos:   repos,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}, nil
}

// Run resolves any stored session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.User() != nil
}
