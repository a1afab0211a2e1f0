package collector

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// GiftNiftyScraper extracts an index-like value from a public quote page.
// It is a quick pre-open indicator, not a reliable feed: page selectors
// change, so the first plausible numeric group in the text wins.
type GiftNiftyScraper struct {
	URL    string
	Client *HTTPClient
}

var indexNumberRe = regexp.MustCompile(`\b\d{2,3}\d*\.\d+|\b\d{4,6}\b`)

// FetchValue returns the scraped index level, or an error when the page is
// unavailable or no index-like value can be found.
func (s *GiftNiftyScraper) FetchValue(ctx context.Context) (float64, error) {
	body, err := s.Client.Get(ctx, s.URL)
	if err != nil {
		return 0, fmt.Errorf("fetch gift nifty page: %w", err)
	}
	v, ok := parseIndexValue(string(body))
	if !ok {
		return 0, errors.New("no index-like value found on page")
	}
	return v, nil
}

// parseIndexValue picks the first number above 1000 out of the page text,
// a simple filter that rejects prices, percentages and dates.
func parseIndexValue(text string) (float64, bool) {
	text = strings.ReplaceAll(text, ",", "")
	for _, m := range indexNumberRe.FindAllString(text, -1) {
		v, err := strconv.ParseFloat(m, 64)
		if err != nil {
			continue
		}
		if v > 1000 {
			return v, true
		}
	}
	return 0, false
}
