package commands

import (
	"log/slog"
	"os"
	"time"

	"books_scraper/config"
	"books_scraper/internal/catalog"
	"books_scraper/internal/converter/viewConverter"
	"books_scraper/internal/model"
	"books_scraper/internal/parser"
	"books_scraper/utils"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	runSearch    *string
	runMinPrice  *float64
	runMaxPrice  *float64
	runMinRating *int
	runSort      *string
	runLimit     *int
)

func init() {
	runSearch = runCmd.Flags().String("search", "", "Keep only books whose title or description contains this text.")
	runMinPrice = runCmd.Flags().Float64("min-price", 0, "Keep only books priced at or above this value.")
	runMaxPrice = runCmd.Flags().Float64("max-price", 0, "Keep only books priced at or below this value.")
	runMinRating = runCmd.Flags().Int("min-rating", 0, "Keep only books rated at or above this value (1-5).")
	runSort = runCmd.Flags().String("sort", "", "Sort order: rating_asc, rating_desc, price_asc or price_desc.")
	runLimit = runCmd.Flags().Int("limit", 0, "Print at most this many rows (0 prints everything).")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [--search <text>] [--min-price <n>] [--max-price <n>] [--min-rating <1-5>] [--sort <order>] [--limit <n>]",
	Short: "Scrapes the whole catalogue and prints the filtered result to stdout.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.MustLoad()
		ctx := utils.CreateCtxWithRqID(cmd.Context())

		booksParser := parser.NewBooksToScrapeParser(cfg)

		t1 := time.Now()
		books, report, err := booksParser.ParseCatalogue(ctx)
		if err != nil {
			slog.Error("scrape failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		slog.Info("scraping time", slog.Float64("seconds", time.Since(t1).Seconds()))

		bounds := model.FilterBounds{}
		if cmd.Flags().Changed("min-price") {
			bounds.MinPrice = runMinPrice
		}
		if cmd.Flags().Changed("max-price") {
			bounds.MaxPrice = runMaxPrice
		}
		if cmd.Flags().Changed("min-rating") {
			bounds.MinRating = runMinRating
		}

		books = catalog.Search(books, *runSearch)
		books = catalog.Filter(books, bounds)
		books = catalog.SortBooks(books, model.SortOrder(*runSort))

		if *runLimit > 0 && len(books) > *runLimit {
			books = books[:*runLimit]
		}

		t := table.NewWriter()
		t.SetStyle(table.StyleRounded)
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Title", "Price", "Rating", "Description"})

		for i, book := range books {
			t.AppendRow(table.Row{
				i + 1,
				book.Title,
				viewConverter.FormatPrice(book.Price),
				viewConverter.Stars(book.Rating),
				book.Description,
			})
		}
		t.Render()

		slog.Info(
			"scrape summary",
			slog.Int("pages", report.PagesVisited),
			slog.Int("books", report.BooksParsed),
			slog.Int("skipped", report.ListingsSkipped),
			slog.Int("printed", len(books)),
		)
	},
}
