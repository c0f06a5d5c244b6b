package catalog

import (
	"sort"
	"strings"

	"books_scraper/internal/model"
)

// Catalog is the session-scoped, ordered collection of parsed books.
// It is built once after the scrape (or the DB load) and never mutated.
type Catalog struct {
	books []model.Book
}

func New(books []model.Book) *Catalog {
	copied := make([]model.Book, len(books))
	copy(copied, books)
	return &Catalog{books: copied}
}

// Books returns a copy so callers can't mutate the catalog.
func (c *Catalog) Books() []model.Book {
	copied := make([]model.Book, len(c.books))
	copy(copied, c.books)
	return copied
}

func (c *Catalog) Size() int {
	return len(c.books)
}

// Filter keeps the books satisfying every supplied bound, preserving
// input order. A nil bound imposes no constraint; price and rating
// comparisons are inclusive. An inverted price range matches nothing.
func Filter(books []model.Book, bounds model.FilterBounds) []model.Book {
	filtered := make([]model.Book, 0, len(books))
	for _, book := range books {
		if bounds.MinPrice != nil && book.Price < *bounds.MinPrice {
			continue
		}
		if bounds.MaxPrice != nil && book.Price > *bounds.MaxPrice {
			continue
		}
		if bounds.MinRating != nil && book.Rating < *bounds.MinRating {
			continue
		}
		filtered = append(filtered, book)
	}
	return filtered
}

// Search keeps the books whose title or description contains q,
// case-insensitively. An empty q keeps everything.
func Search(books []model.Book, q string) []model.Book {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return books
	}

	matched := make([]model.Book, 0, len(books))
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Title), q) ||
			strings.Contains(strings.ToLower(book.Description), q) {
			matched = append(matched, book)
		}
	}
	return matched
}

// SortBooks returns a sorted copy; the input slice stays untouched.
// Equal keys keep their document order.
func SortBooks(books []model.Book, order model.SortOrder) []model.Book {
	sorted := make([]model.Book, len(books))
	copy(sorted, books)

	switch order {
	case model.SortRatingAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating < sorted[j].Rating })
	case model.SortRatingDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rating > sorted[j].Rating })
	case model.SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case model.SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	}

	return sorted
}

// Paginate cuts one page out of books. Pages are 1-based; a page past
// the end comes back empty. totalPages is at least 1 so the UI always
// has a "Page X of Y" to show.
func Paginate(books []model.Book, page, pageSize int) (pageBooks []model.Book, totalPages int) {
	if pageSize <= 0 {
		return nil, 1
	}

	totalPages = (len(books) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	from := (page - 1) * pageSize
	if from < 0 || from >= len(books) {
		return []model.Book{}, totalPages
	}

	to := from + pageSize
	if to > len(books) {
		to = len(books)
	}

	return books[from:to], totalPages
}
