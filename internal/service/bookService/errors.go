package bookService

import "errors"

var (
	ErrCatalogNotReady = errors.New("catalog not ready")
	ErrNoBooksScraped  = errors.New("no books scraped")
)
