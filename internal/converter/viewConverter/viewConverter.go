package viewConverter

import (
	"fmt"
	"strings"

	"books_scraper/internal/model"
)

const maxDescriptionLen = 180

type BookRow struct {
	Title       string
	Price       string
	Stars       string
	Rating      int
	Description string
}

type FormView struct {
	Search    string
	MinPrice  string
	MaxPrice  string
	MinRating string
	OrderBy   string
	PageSize  int
}

type PageView struct {
	Rows          []BookRow
	Page          int
	TotalPages    int
	TotalBooks    int
	PageLabel     string
	HasPrev       bool
	HasNext       bool
	PrevPage      int
	NextPage      int
	Form          FormView
	ErrorMsg      string
	SkippedNotice string
}

func BooksPageResponse(page model.BooksPage, form FormView, errorMsg string, report model.ScrapeReport) PageView {
	rows := make([]BookRow, 0, len(page.Books))
	for _, book := range page.Books {
		rows = append(rows, BookRow{
			Title:       book.Title,
			Price:       FormatPrice(book.Price),
			Stars:       Stars(book.Rating),
			Rating:      book.Rating,
			Description: truncate(book.Description, maxDescriptionLen),
		})
	}

	view := PageView{
		Rows:       rows,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		TotalBooks: page.TotalBooks,
		PageLabel:  fmt.Sprintf("Page %d of %d", page.Page, page.TotalPages),
		HasPrev:    page.Page > 1,
		HasNext:    page.Page < page.TotalPages,
		PrevPage:   page.Page - 1,
		NextPage:   page.Page + 1,
		Form:       form,
		ErrorMsg:   errorMsg,
	}

	if report.ListingsSkipped > 0 {
		view.SkippedNotice = fmt.Sprintf("%d listings were skipped during the scrape", report.ListingsSkipped)
	}

	return view
}

func FormatPrice(price float64) string {
	return fmt.Sprintf("£%.2f", price)
}

func Stars(rating int) string {
	if rating < model.MinRating || rating > model.MaxRating {
		return ""
	}
	return strings.Repeat("★", rating) + strings.Repeat("☆", model.MaxRating-rating)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimSpace(string(runes[:max])) + "…"
}
