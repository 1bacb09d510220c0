package tradebook

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
)

// brapi.dev serves quotes for B3 tickers. A response looks like:
//
//	{
//	    "results": [
//	        {
//	            "symbol": "PETR4",
//	            "regularMarketPrice": 38.42,
//	            ...
//	        }
//	    ]
//	}
const brapiBaseURL = "https://brapi.dev/api"

// Brapi is a QuoteProvider backed by the brapi.dev quote API, with responses
// cached on disk for the day.
type Brapi struct {
	client *http.Client
	base   string
	token  string
}

// NewBrapi returns a Brapi provider. The token is optional for the free tier.
func NewBrapi(token string) *Brapi {
	return &Brapi{client: daily(), base: brapiBaseURL, token: token}
}

// Quote returns the current unit price of a B3 ticker.
func (b *Brapi) Quote(symbol string) (Money, error) {
	addr := fmt.Sprintf("%s/quote/%s", b.base, url.PathEscape(symbol))
	if b.token != "" {
		addr += "?token=" + url.QueryEscape(b.token)
	}

	var jobj any
	if err := jwget(b.client, addr, &jobj); err != nil {
		return Money{}, fmt.Errorf("error in wget %q: %w", symbol, err)
	}

	path := "$.results[0].regularMarketPrice"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q %w", symbol, path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}

	val, ok := jval.(float64)
	if !ok {
		return Money{}, fmt.Errorf("error parsing quote for %q: %q not a number: %v", symbol, path, jval)
	}
	return M(val), nil
}

var _ QuoteProvider = (*Brapi)(nil)
