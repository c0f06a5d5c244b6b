package model

import "fmt"

// Book is one parsed listing from books.toscrape.com. Every stored book
// has a non-empty title, price >= 0 and rating in [1,5].
type Book struct {
	Title       string  `db:"title" json:"title"`
	Price       float64 `db:"price" json:"price"`
	Rating      int     `db:"rating" json:"rating"`
	Description string  `db:"description" json:"description"`
}

const (
	MinRating = 1
	MaxRating = 5
)

// FilterBounds are the user-supplied predicates. A nil bound imposes no
// constraint; comparisons are inclusive.
type FilterBounds struct {
	MinPrice  *float64 `json:"minPrice,omitempty"`
	MaxPrice  *float64 `json:"maxPrice,omitempty"`
	MinRating *int     `json:"minRating,omitempty"`
}

type SortOrder string

const (
	SortNone       SortOrder = ""
	SortRatingAsc  SortOrder = "rating_asc"
	SortRatingDesc SortOrder = "rating_desc"
	SortPriceAsc   SortOrder = "price_asc"
	SortPriceDesc  SortOrder = "price_desc"
)

type BookQuery struct {
	Search   string       `json:"search"`
	Bounds   FilterBounds `json:"bounds"`
	OrderBy  SortOrder    `json:"orderBy"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

// CacheKey builds a stable redis key for the query.
func (q BookQuery) CacheKey() string {
	minPrice, maxPrice, minRating := "-", "-", "-"
	if q.Bounds.MinPrice != nil {
		minPrice = fmt.Sprintf("%.2f", *q.Bounds.MinPrice)
	}
	if q.Bounds.MaxPrice != nil {
		maxPrice = fmt.Sprintf("%.2f", *q.Bounds.MaxPrice)
	}
	if q.Bounds.MinRating != nil {
		minRating = fmt.Sprintf("%d", *q.Bounds.MinRating)
	}
	return fmt.Sprintf("booksPage:q=%s:minp=%s:maxp=%s:minr=%s:sort=%s:page=%d:size=%d",
		q.Search, minPrice, maxPrice, minRating, q.OrderBy, q.Page, q.PageSize)
}

type BooksPage struct {
	Books      []Book `json:"books"`
	Page       int    `json:"page"`
	PageSize   int    `json:"pageSize"`
	TotalBooks int    `json:"totalBooks"`
	TotalPages int    `json:"totalPages"`
}

// ScrapeReport aggregates what one full catalogue pass did.
type ScrapeReport struct {
	PagesVisited    int
	BooksParsed     int
	ListingsSkipped int
}
