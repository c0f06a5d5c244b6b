package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"books_scraper/config"
	"books_scraper/data/session"
	"books_scraper/internal/model"

	"github.com/stretchr/testify/assert"
)

type fakeBookService struct {
	mu        sync.Mutex
	lastQuery model.BookQuery
	page      model.BooksPage
	err       error
	report    model.ScrapeReport
}

func (f *fakeBookService) QueryBooks(_ context.Context, query model.BookQuery) (model.BooksPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQuery = query
	return f.page, f.err
}

func (f *fakeBookService) ScrapeReport() model.ScrapeReport {
	return f.report
}

func (f *fakeBookService) gotQuery() model.BookQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastQuery
}

type fakeSession struct {
	mu       sync.Mutex
	prior    model.BookQuery
	priorErr error
}

func (f *fakeSession) GetLastQuery(_ context.Context, _ string) (model.BookQuery, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.prior, f.priorErr
}

func (f *fakeSession) SetLastQuery(_ context.Context, _ string, query model.BookQuery) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prior = query
	return nil
}

func testConfig() *config.Config {
	return &config.Config{DefaultPageSize: 25}
}

func testPage() model.BooksPage {
	return model.BooksPage{
		Books: []model.Book{
			{Title: "Tipping the Velvet", Price: 25.50, Rating: 4, Description: "a historical novel"},
		},
		Page:       1,
		PageSize:   25,
		TotalBooks: 1,
		TotalPages: 1,
	}
}

func Test_ListBooks_Success(t *testing.T) {
	svc := &fakeBookService{page: testPage()}
	ctrl := NewController(testConfig(), svc, &fakeSession{priorErr: session.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/books?min_price=20&min_rating=3", nil)
	rec := httptest.NewRecorder()

	ctrl.ListBooks(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp listResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, len(resp.Data))
	assert.Equal(t, "Tipping the Velvet", resp.Data[0].Title)
	assert.Equal(t, 1, resp.Meta.Total)
	assert.Equal(t, 25, resp.Meta.PageSize)

	got := svc.gotQuery()
	assert.NotNil(t, got.Bounds.MinPrice)
	assert.Equal(t, 20.0, *got.Bounds.MinPrice)
	assert.NotNil(t, got.Bounds.MinRating)
	assert.Equal(t, 3, *got.Bounds.MinRating)
}

func Test_ListBooks_NonNumericPriceRejected(t *testing.T) {
	ctrl := NewController(testConfig(), &fakeBookService{page: testPage()}, &fakeSession{priorErr: session.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/books?min_price=cheap", nil)
	rec := httptest.NewRecorder()

	ctrl.ListBooks(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_FILTER", resp.Code)
}

func Test_ListBooks_RatingOutOfRangeRejected(t *testing.T) {
	ctrl := NewController(testConfig(), &fakeBookService{page: testPage()}, &fakeSession{priorErr: session.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/books?min_rating=6", nil)
	rec := httptest.NewRecorder()

	ctrl.ListBooks(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_ListBooks_UnknownSortRejected(t *testing.T) {
	ctrl := NewController(testConfig(), &fakeBookService{page: testPage()}, &fakeSession{priorErr: session.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/books?sort=title_desc", nil)
	rec := httptest.NewRecorder()

	ctrl.ListBooks(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_Index_RendersTable(t *testing.T) {
	ctrl := NewController(testConfig(), &fakeBookService{page: testPage()}, &fakeSession{priorErr: session.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	ctrl.Index(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Tipping the Velvet")
	assert.Contains(t, rec.Body.String(), "£25.50")
	assert.Contains(t, rec.Body.String(), "Page 1 of 1")
	assert.NotContains(t, rec.Body.String(), invalidFilterMsg)
}

func Test_Index_InvalidFilterKeepsPriorView(t *testing.T) {
	minRating := 5
	prior := model.BookQuery{
		Bounds:   model.FilterBounds{MinRating: &minRating},
		Page:     1,
		PageSize: 25,
	}
	svc := &fakeBookService{page: testPage()}
	ctrl := NewController(testConfig(), svc, &fakeSession{prior: prior})

	req := httptest.NewRequest(http.MethodGet, "/?min_price=abc", nil)
	rec := httptest.NewRecorder()

	ctrl.Index(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), invalidFilterMsg)

	got := svc.gotQuery()
	assert.NotNil(t, got.Bounds.MinRating)
	assert.Equal(t, 5, *got.Bounds.MinRating)
	assert.Nil(t, got.Bounds.MinPrice)
}

func Test_Index_SetsSessionCookie(t *testing.T) {
	ctrl := NewController(testConfig(), &fakeBookService{page: testPage()}, &fakeSession{priorErr: session.ErrNotFound})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	ctrl.Index(rec, req)

	cookies := rec.Result().Cookies()
	found := false
	for _, c := range cookies {
		if c.Name == sessionCookieName && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func Test_parseBookQuery(t *testing.T) {
	ctrl := NewController(testConfig(), &fakeBookService{}, &fakeSession{})

	query, err := ctrl.parseBookQuery(url.Values{
		"q":          {"velvet"},
		"min_price":  {"10"},
		"max_price":  {"30.5"},
		"min_rating": {"2"},
		"sort":       {"price_desc"},
		"page":       {"2"},
		"page_size":  {"50"},
	})

	assert.NoError(t, err)
	assert.Equal(t, "velvet", query.Search)
	assert.Equal(t, 10.0, *query.Bounds.MinPrice)
	assert.Equal(t, 30.5, *query.Bounds.MaxPrice)
	assert.Equal(t, 2, *query.Bounds.MinRating)
	assert.Equal(t, model.SortPriceDesc, query.OrderBy)
	assert.Equal(t, 2, query.Page)
	assert.Equal(t, 50, query.PageSize)

	_, err = ctrl.parseBookQuery(url.Values{"min_price": {"-3"}})
	assert.Error(t, err)

	_, err = ctrl.parseBookQuery(url.Values{"page_size": {"33"}})
	assert.Error(t, err)

	_, err = ctrl.parseBookQuery(url.Values{"page": {"0"}})
	assert.Error(t, err)

	query, err = ctrl.parseBookQuery(url.Values{})
	assert.NoError(t, err)
	assert.Nil(t, query.Bounds.MinPrice)
	assert.Nil(t, query.Bounds.MaxPrice)
	assert.Nil(t, query.Bounds.MinRating)
	assert.Equal(t, 1, query.Page)
	assert.Equal(t, 25, query.PageSize)
}
