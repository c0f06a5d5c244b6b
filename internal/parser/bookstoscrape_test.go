package parser

import (
	"context"
	"testing"

	"books_scraper/config"
	"books_scraper/internal/model"

	"github.com/h2non/gock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type booksToScrapeParserSuite struct {
	suite.Suite

	cfg    *config.Config
	parser *BooksToScrapeParser
}

func TestBooksToScrapeParserSuite(t *testing.T) {
	suite.Run(t, new(booksToScrapeParserSuite))
}

func (s *booksToScrapeParserSuite) SetupSuite() {
	s.cfg = &config.Config{
		BooksToScrape: config.BooksToScrape{
			BaseUrl:           "http://test.com",
			CataloguePage:     "/catalogue/page-%d.html",
			Pages:             1,
			FetchDescriptions: false,
		},
	}
}

func (s *booksToScrapeParserSuite) SetupTest() {
	s.parser = NewBooksToScrapeParser(s.cfg)
}

func (s *booksToScrapeParserSuite) Test_ParseCatalogue_Success() {
	defer gock.Off()

	expected := []model.Book{
		{Title: "A Light in the Attic", Price: 10.00, Rating: 2, Description: "No description available"},
		{Title: "Tipping the Velvet", Price: 25.50, Rating: 4, Description: "No description available"},
		{Title: "Soumission", Price: 99.99, Rating: 5, Description: "No description available"},
	}

	gock.New(s.cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-1.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(cataloguePageOneResponse)

	books, report, err := s.parser.ParseCatalogue(context.Background())

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), expected, books)
	assert.Equal(s.T(), model.ScrapeReport{PagesVisited: 1, BooksParsed: 3, ListingsSkipped: 0}, report)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *booksToScrapeParserSuite) Test_ParseCatalogue_SkipsListingWithoutPrice() {
	defer gock.Off()

	expected := []model.Book{
		{Title: "Sharp Objects", Price: 47.82, Rating: 3, Description: "No description available"},
		{Title: "The Requiem Red", Price: 22.65, Rating: 5, Description: "No description available"},
	}

	gock.New(s.cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-1.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(cataloguePageMissingPriceResponse)

	books, report, err := s.parser.ParseCatalogue(context.Background())

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), expected, books)
	assert.Equal(s.T(), 1, report.ListingsSkipped)
	assert.Equal(s.T(), 2, report.BooksParsed)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *booksToScrapeParserSuite) Test_ParseCatalogue_SkipsListingWithUnknownRating() {
	defer gock.Off()

	gock.New(s.cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-1.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(cataloguePageBadRatingResponse)

	books, report, err := s.parser.ParseCatalogue(context.Background())

	assert.Nil(s.T(), err)
	assert.Empty(s.T(), books)
	assert.Equal(s.T(), 1, report.ListingsSkipped)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *booksToScrapeParserSuite) Test_ParseCatalogue_MultiplePagesKeepDocumentOrder() {
	defer gock.Off()

	cfg := &config.Config{
		BooksToScrape: config.BooksToScrape{
			BaseUrl:           "http://test.com",
			CataloguePage:     "/catalogue/page-%d.html",
			Pages:             2,
			FetchDescriptions: false,
		},
	}
	parser := NewBooksToScrapeParser(cfg)

	gock.New(cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-1.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(cataloguePageOneResponse)

	gock.New(cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-2.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(cataloguePageMissingPriceResponse)

	books, report, err := parser.ParseCatalogue(context.Background())

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 5, len(books))
	assert.Equal(s.T(), "A Light in the Attic", books[0].Title)
	assert.Equal(s.T(), "Tipping the Velvet", books[1].Title)
	assert.Equal(s.T(), "Soumission", books[2].Title)
	assert.Equal(s.T(), "Sharp Objects", books[3].Title)
	assert.Equal(s.T(), "The Requiem Red", books[4].Title)
	assert.Equal(s.T(), model.ScrapeReport{PagesVisited: 2, BooksParsed: 5, ListingsSkipped: 1}, report)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *booksToScrapeParserSuite) Test_ParseCatalogue_PageNotFoundErr() {
	defer gock.Off()

	gock.New(s.cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-1.html").
		Reply(404).
		SetHeader("Content-Type", "text/html; charset=utf-8")

	books, _, err := s.parser.ParseCatalogue(context.Background())

	assert.NotNil(s.T(), err)
	assert.Nil(s.T(), books)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *booksToScrapeParserSuite) Test_ParseCatalogue_EmptyPage() {
	defer gock.Off()

	gock.New(s.cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-1.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(emptyCataloguePageResponse)

	books, report, err := s.parser.ParseCatalogue(context.Background())

	assert.Nil(s.T(), err)
	assert.Empty(s.T(), books)
	assert.Equal(s.T(), 0, report.BooksParsed)
	assert.Equal(s.T(), true, gock.IsDone())
}

func (s *booksToScrapeParserSuite) Test_ParseCatalogue_FetchesDescriptions() {
	defer gock.Off()

	cfg := &config.Config{
		BooksToScrape: config.BooksToScrape{
			BaseUrl:           "http://test.com",
			CataloguePage:     "/catalogue/page-%d.html",
			Pages:             1,
			FetchDescriptions: true,
		},
	}
	parser := NewBooksToScrapeParser(cfg)

	gock.New(cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/page-1.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(cataloguePageMissingPriceResponse)

	gock.New(cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/sharp-objects_997/index.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(detailPageResponse)

	gock.New(cfg.BooksToScrape.BaseUrl).
		Get("/catalogue/the-requiem-red_995/index.html").
		Reply(200).
		SetHeader("Content-Type", "text/html; charset=utf-8").
		BodyString(detailPageNoDescriptionResponse)

	books, _, err := parser.ParseCatalogue(context.Background())

	assert.Nil(s.T(), err)
	assert.Equal(s.T(), 2, len(books))
	assert.Contains(s.T(), books[0].Description, "A Light in the Attic")
	assert.Equal(s.T(), "No description available", books[1].Description)
	assert.Equal(s.T(), true, gock.IsDone())
}

func Test_parsePrice(t *testing.T) {
	price, ok := parsePrice("£51.77")
	assert.True(t, ok)
	assert.Equal(t, 51.77, price)

	price, ok = parsePrice("Â£22.60")
	assert.True(t, ok)
	assert.Equal(t, 22.60, price)

	_, ok = parsePrice("free")
	assert.False(t, ok)

	_, ok = parsePrice("")
	assert.False(t, ok)
}

func Test_parseRating(t *testing.T) {
	rating, ok := parseRating("star-rating Three")
	assert.True(t, ok)
	assert.Equal(t, 3, rating)

	rating, ok = parseRating("star-rating Five")
	assert.True(t, ok)
	assert.Equal(t, 5, rating)

	_, ok = parseRating("star-rating")
	assert.False(t, ok)

	_, ok = parseRating("star-rating Zero")
	assert.False(t, ok)
}
