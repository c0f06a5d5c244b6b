package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"books_scraper/config"
	"books_scraper/data/session"
	"books_scraper/internal/converter/viewConverter"
	"books_scraper/internal/model"
	"books_scraper/internal/service/bookService"
	"books_scraper/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

//go:embed templates/*.html
var templatesFS embed.FS

const sessionCookieName = "sid"

type BookService interface {
	QueryBooks(ctx context.Context, query model.BookQuery) (model.BooksPage, error)
	ScrapeReport() model.ScrapeReport
}

type Session interface {
	GetLastQuery(ctx context.Context, sessionID string) (model.BookQuery, error)
	SetLastQuery(ctx context.Context, sessionID string, query model.BookQuery) error
}

type Controller struct {
	cfg         *config.Config
	bookService BookService
	session     Session
	validate    *validator.Validate
	tmpl        *template.Template
}

func NewController(cfg *config.Config, bookService BookService, session Session) *Controller {
	tmpl := template.Must(template.ParseFS(templatesFS, "templates/*.html"))

	return &Controller{
		cfg:         cfg,
		bookService: bookService,
		session:     session,
		validate:    validator.New(),
		tmpl:        tmpl,
	}
}

// filterParams is what the validator checks after the raw query string
// survived strconv.
type filterParams struct {
	MinPrice  *float64 `validate:"omitempty,gte=0"`
	MaxPrice  *float64 `validate:"omitempty,gte=0"`
	MinRating *int     `validate:"omitempty,gte=1,lte=5"`
}

// Index renders the filterable catalog table. Invalid filter input keeps
// the prior view (restored from the session) and shows an error notice.
func (ctrl *Controller) Index(w http.ResponseWriter, r *http.Request) {
	op := "Controller.Index"
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)
	sid := ctrl.sessionID(w, r)

	errorMsg := ""
	query, err := ctrl.parseBookQuery(r.URL.Query())
	if err != nil {
		slog.Warn(
			"invalid filter input",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("err", err.Error()),
			slog.String("rawQuery", r.URL.RawQuery),
		)
		errorMsg = invalidFilterMsg
		query = ctrl.priorQuery(ctx, sid)
	}

	booksPage, err := ctrl.bookService.QueryBooks(ctx, query)
	if err != nil {
		if errors.Is(err, bookService.ErrCatalogNotReady) {
			http.Error(w, catalogNotReadyMsg, http.StatusServiceUnavailable)
			return
		}
		slog.Error("got error from bookService.QueryBooks", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		http.Error(w, internalErrMsg, http.StatusInternalServerError)
		return
	}

	if errorMsg == "" {
		go ctrl.session.SetLastQuery(context.WithoutCancel(ctx), sid, query)
	}

	view := viewConverter.BooksPageResponse(booksPage, formView(query), errorMsg, ctrl.bookService.ScrapeReport())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ctrl.tmpl.ExecuteTemplate(w, "index.html", view); err != nil {
		slog.Error("failed to render index", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
	}
}

// ListBooks is the JSON surface over the same query params.
func (ctrl *Controller) ListBooks(w http.ResponseWriter, r *http.Request) {
	op := "Controller.ListBooks"
	ctx := r.Context()
	rqID := utils.GetRequestIDFromCtx(ctx)

	query, err := ctrl.parseBookQuery(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_FILTER", err.Error())
		return
	}

	booksPage, err := ctrl.bookService.QueryBooks(ctx, query)
	if err != nil {
		if errors.Is(err, bookService.ErrCatalogNotReady) {
			respondError(w, http.StatusServiceUnavailable, "CATALOG_NOT_READY", catalogNotReadyMsg)
			return
		}
		slog.Error("got error from bookService.QueryBooks", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		respondError(w, http.StatusInternalServerError, "INTERNAL_ERROR", internalErrMsg)
		return
	}

	respondJSON(w, http.StatusOK, listResponse{
		Data: booksPage.Books,
		Meta: listMeta{
			Page:       booksPage.Page,
			PageSize:   booksPage.PageSize,
			Total:      booksPage.TotalBooks,
			TotalPages: booksPage.TotalPages,
		},
	})
}

func (ctrl *Controller) parseBookQuery(values url.Values) (model.BookQuery, error) {
	query := model.BookQuery{
		Search:   strings.TrimSpace(values.Get("q")),
		Page:     1,
		PageSize: ctrl.cfg.DefaultPageSize,
	}

	params := filterParams{}

	if raw := strings.TrimSpace(values.Get("min_price")); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.BookQuery{}, fmt.Errorf("min_price must be a number")
		}
		params.MinPrice = &val
	}

	if raw := strings.TrimSpace(values.Get("max_price")); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return model.BookQuery{}, fmt.Errorf("max_price must be a number")
		}
		params.MaxPrice = &val
	}

	if raw := strings.TrimSpace(values.Get("min_rating")); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil {
			return model.BookQuery{}, fmt.Errorf("min_rating must be an integer")
		}
		params.MinRating = &val
	}

	if err := ctrl.validate.Struct(params); err != nil {
		return model.BookQuery{}, fmt.Errorf("filter bounds out of range: %w", err)
	}

	query.Bounds = model.FilterBounds{
		MinPrice:  params.MinPrice,
		MaxPrice:  params.MaxPrice,
		MinRating: params.MinRating,
	}

	switch order := model.SortOrder(values.Get("sort")); order {
	case model.SortNone, model.SortRatingAsc, model.SortRatingDesc, model.SortPriceAsc, model.SortPriceDesc:
		query.OrderBy = order
	default:
		return model.BookQuery{}, fmt.Errorf("unknown sort order: %s", values.Get("sort"))
	}

	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return model.BookQuery{}, fmt.Errorf("page must be a positive integer")
		}
		query.Page = page
	}

	if raw := values.Get("page_size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return model.BookQuery{}, fmt.Errorf("page_size must be an integer")
		}
		switch size {
		case 25, 50, 100:
			query.PageSize = size
		default:
			return model.BookQuery{}, fmt.Errorf("page_size must be 25, 50 or 100")
		}
	}

	return query, nil
}

// priorQuery restores the last good query for the session, falling back
// to the defaults when there is none.
func (ctrl *Controller) priorQuery(ctx context.Context, sid string) model.BookQuery {
	op := "Controller.priorQuery"
	rqID := utils.GetRequestIDFromCtx(ctx)

	prior, err := ctrl.session.GetLastQuery(ctx, sid)
	if err != nil {
		if !errors.Is(err, session.ErrNotFound) {
			slog.Error("got error from session.GetLastQuery", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		}
		return model.BookQuery{Page: 1, PageSize: ctrl.cfg.DefaultPageSize}
	}
	return prior
}

func (ctrl *Controller) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	sid := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
	})
	return sid
}

func formView(query model.BookQuery) viewConverter.FormView {
	form := viewConverter.FormView{
		Search:   query.Search,
		OrderBy:  string(query.OrderBy),
		PageSize: query.PageSize,
	}

	if query.Bounds.MinPrice != nil {
		form.MinPrice = strconv.FormatFloat(*query.Bounds.MinPrice, 'f', -1, 64)
	}
	if query.Bounds.MaxPrice != nil {
		form.MaxPrice = strconv.FormatFloat(*query.Bounds.MaxPrice, 'f', -1, 64)
	}
	if query.Bounds.MinRating != nil {
		form.MinRating = strconv.Itoa(*query.Bounds.MinRating)
	}

	return form
}
