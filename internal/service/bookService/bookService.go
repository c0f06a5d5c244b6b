package bookService

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"books_scraper/config"
	"books_scraper/data/cache"
	"books_scraper/internal/catalog"
	"books_scraper/internal/model"
	"books_scraper/utils"
)

type BooksParser interface {
	ParseCatalogue(ctx context.Context) ([]model.Book, model.ScrapeReport, error)
}

type Repository interface {
	IsEmpty(ctx context.Context) (bool, error)
	InsertBooks(ctx context.Context, books []model.Book) error
	GetAllBooks(ctx context.Context) ([]model.Book, error)
}

type Cache interface {
	GetBooksPage(ctx context.Context, key string) (model.BooksPage, error)
	SetBooksPage(ctx context.Context, key string, page model.BooksPage) error
}

// BookService owns the session catalog: scraped (or loaded from the DB)
// once at startup, read-only afterwards.
type BookService struct {
	cfg        *config.Config
	repo       Repository
	cache      Cache
	parser     BooksParser
	catalog    *catalog.Catalog
	lastReport model.ScrapeReport
}

func New(cfg *config.Config, repo Repository, cache Cache, parser BooksParser) *BookService {
	return &BookService{
		cfg:    cfg,
		repo:   repo,
		cache:  cache,
		parser: parser,
	}
}

// Init fills the catalog. The scrape runs only when the books table is
// empty; otherwise the previous scrape is loaded from the DB. A scrape
// failure is returned as-is so the caller can abort startup.
func (s *BookService) Init(ctx context.Context) error {
	op := "BookService.Init"
	rqID := utils.GetRequestIDFromCtx(ctx)

	empty, err := s.repo.IsEmpty(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if !empty {
		books, err := s.repo.GetAllBooks(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		s.catalog = catalog.New(books)
		slog.Info("catalog loaded from DB", slog.String("op", op), slog.String("rqID", rqID), slog.Int("books", len(books)))
		return nil
	}

	books, report, err := s.parser.ParseCatalogue(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(books) == 0 {
		return ErrNoBooksScraped
	}

	if err := s.repo.InsertBooks(ctx, books); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.catalog = catalog.New(books)
	s.lastReport = report

	slog.Info(
		"catalog scraped and persisted",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("books", report.BooksParsed),
		slog.Int("skipped", report.ListingsSkipped),
	)
	return nil
}

// ScrapeReport is zero when the catalog came from the DB instead of a
// fresh scrape.
func (s *BookService) ScrapeReport() model.ScrapeReport {
	return s.lastReport
}

// QueryBooks applies search, filter bounds, sort order and pagination to
// the catalog. Results are cached per normalized query.
func (s *BookService) QueryBooks(ctx context.Context, query model.BookQuery) (model.BooksPage, error) {
	op := "BookService.QueryBooks"
	rqID := utils.GetRequestIDFromCtx(ctx)

	if s.catalog == nil {
		return model.BooksPage{}, ErrCatalogNotReady
	}

	query = s.normalizeQuery(query)
	cacheKey := query.CacheKey()

	cached, err := s.cache.GetBooksPage(ctx, cacheKey)
	if err == nil {
		slog.Debug("books page served from cache", slog.String("op", op), slog.String("rqID", rqID), slog.String("key", cacheKey))
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("cache lookup failed", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	books := s.catalog.Books()
	books = catalog.Search(books, query.Search)
	books = catalog.Filter(books, query.Bounds)
	books = catalog.SortBooks(books, query.OrderBy)

	total := len(books)
	pageBooks, totalPages := catalog.Paginate(books, query.Page, query.PageSize)

	page := model.BooksPage{
		Books:      pageBooks,
		Page:       query.Page,
		PageSize:   query.PageSize,
		TotalBooks: total,
		TotalPages: totalPages,
	}

	if err := s.cache.SetBooksPage(ctx, cacheKey, page); err != nil {
		slog.Warn("failed to cache books page", slog.String("op", op), slog.String("rqID", rqID), slog.String("err", err.Error()))
	}

	return page, nil
}

func (s *BookService) normalizeQuery(query model.BookQuery) model.BookQuery {
	if query.Page < 1 {
		query.Page = 1
	}

	switch query.PageSize {
	case 25, 50, 100:
	default:
		query.PageSize = s.cfg.DefaultPageSize
	}

	return query
}
