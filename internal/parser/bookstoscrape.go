package parser

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"books_scraper/config"
	"books_scraper/internal/model"
	"books_scraper/utils"

	"github.com/gocolly/colly/v2"
)

const noDescriptionFallback = "No description available"

var ratingWords = map[string]int{
	"One":   1,
	"Two":   2,
	"Three": 3,
	"Four":  4,
	"Five":  5,
}

type BooksToScrapeParser struct {
	cfg *config.Config
}

func NewBooksToScrapeParser(cfg *config.Config) *BooksToScrapeParser {
	return &BooksToScrapeParser{cfg: cfg}
}

func (p *BooksToScrapeParser) getCollector() (*colly.Collector, error) {
	op := "BooksToScrapeParser.getCollector"
	c := colly.NewCollector()

	if p.cfg.BooksToScrape.ProxyUrl != "" {
		err := c.SetProxy(p.cfg.BooksToScrape.ProxyUrl)
		if err != nil {
			slog.Error(
				"Failed to set proxy",
				slog.String("op", op),
				slog.String("err", err.Error()),
			)
			return nil, err
		}
	}

	return c, nil
}

// listing is one article.product_pod before the detail page is visited.
type listing struct {
	book      model.Book
	detailRef string
}

// ParseCatalogue walks every catalogue page and returns the books in
// document order. A failed page fetch aborts the whole pass; a malformed
// listing is skipped and only counted in the report.
func (p *BooksToScrapeParser) ParseCatalogue(ctx context.Context) ([]model.Book, model.ScrapeReport, error) {
	op := "BooksToScrapeParser.ParseCatalogue"
	rqID := utils.GetRequestIDFromCtx(ctx)

	var (
		books  []model.Book
		report model.ScrapeReport
	)

	for page := 1; page <= p.cfg.BooksToScrape.Pages; page++ {
		listings, skipped, err := p.parseListingPage(ctx, page)
		if err != nil {
			return nil, report, fmt.Errorf("%s: page %d: %w", op, page, err)
		}

		report.PagesVisited++
		report.ListingsSkipped += skipped

		for _, l := range listings {
			book := l.book
			if p.cfg.BooksToScrape.FetchDescriptions {
				book.Description = p.fetchDescription(ctx, l.detailRef)
			} else {
				book.Description = noDescriptionFallback
			}
			books = append(books, book)
		}
	}

	report.BooksParsed = len(books)

	if report.ListingsSkipped > 0 {
		slog.Warn(
			"some listings were skipped",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.Int("skipped", report.ListingsSkipped),
		)
	}

	slog.Info(
		"catalogue parsed",
		slog.String("op", op),
		slog.String("rqID", rqID),
		slog.Int("pages", report.PagesVisited),
		slog.Int("books", report.BooksParsed),
		slog.Int("skipped", report.ListingsSkipped),
	)

	return books, report, nil
}

func (p *BooksToScrapeParser) parseListingPage(ctx context.Context, page int) (listings []listing, skipped int, err error) {
	op := "BooksToScrapeParser.parseListingPage"
	rqID := utils.GetRequestIDFromCtx(ctx)

	c, err := p.getCollector()
	if err != nil {
		return nil, 0, err
	}

	c.OnHTML("article.product_pod", func(e *colly.HTMLElement) {
		title := strings.TrimSpace(e.ChildAttr("h3 > a", "title"))
		priceText := e.ChildText("p.price_color")
		ratingClass := e.ChildAttr("p.star-rating", "class")
		detailRef := e.ChildAttr("h3 > a", "href")

		price, priceOk := parsePrice(priceText)
		rating, ratingOk := parseRating(ratingClass)

		if title == "" || !priceOk || !ratingOk {
			skipped++
			slog.Debug(
				"skipping malformed listing",
				slog.String("op", op),
				slog.String("rqID", rqID),
				slog.String("title", title),
				slog.String("price", priceText),
				slog.String("ratingClass", ratingClass),
			)
			return
		}

		listings = append(listings, listing{
			book:      model.Book{Title: title, Price: price, Rating: rating},
			detailRef: detailRef,
		})
	})

	c.OnRequest(func(r *colly.Request) {
		slog.Info("Visiting", slog.String("op", op), slog.String("rqID", rqID), slog.String("url", r.URL.String()))
	})

	pageURL := p.cfg.BooksToScrape.BaseUrl + fmt.Sprintf(p.cfg.BooksToScrape.CataloguePage, page)

	err = c.Visit(pageURL)
	if err != nil {
		slog.Error(
			"Error while visiting url",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", pageURL),
			slog.String("err", err.Error()),
		)
		return nil, 0, err
	}

	return listings, skipped, nil
}

// fetchDescription is best-effort: any failure falls back to the
// placeholder the site itself uses for books without a description.
func (p *BooksToScrapeParser) fetchDescription(ctx context.Context, detailRef string) string {
	op := "BooksToScrapeParser.fetchDescription"
	rqID := utils.GetRequestIDFromCtx(ctx)

	description := noDescriptionFallback

	c, err := p.getCollector()
	if err != nil {
		return description
	}

	c.OnHTML("#product_description + p", func(e *colly.HTMLElement) {
		if text := strings.TrimSpace(e.Text); text != "" {
			description = text
		}
	})

	detailURL := p.cfg.BooksToScrape.BaseUrl + "/catalogue/" + strings.TrimPrefix(detailRef, "/")
	err = c.Visit(detailURL)
	if err != nil {
		slog.Warn(
			"failed to fetch book description",
			slog.String("op", op),
			slog.String("rqID", rqID),
			slog.String("url", detailURL),
			slog.String("err", err.Error()),
		)
	}

	return description
}

// parsePrice turns "£51.77" into 51.77. The site sometimes serves the
// pound sign with a broken encoding, so everything before the first
// digit is dropped.
func parsePrice(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	idx := strings.IndexFunc(text, func(r rune) bool { return r >= '0' && r <= '9' })
	if idx < 0 {
		return 0, false
	}

	price, err := strconv.ParseFloat(text[idx:], 64)
	if err != nil || price < 0 {
		return 0, false
	}
	return price, true
}

// parseRating maps the second class of p.star-rating ("star-rating Three")
// to its numeric value.
func parseRating(classAttr string) (int, bool) {
	for _, class := range strings.Fields(classAttr) {
		if rating, ok := ratingWords[class]; ok {
			return rating, true
		}
	}
	return 0, false
}
