package main

import (
	"context"

	"books_scraper/cmd/scrape/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
