package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// FeedEntry is one transaction the fake aggregator reports.
type FeedEntry struct {
	ID          string `json:"id"`
	BookingDate string `json:"booking_date"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Currency    string `json:"currency"`
}

// Providers is an HTTP server standing in for both the bank aggregator
// (GET /connections/{id}/transactions) and the market data provider
// (GET /quotes/{symbol}).
type Providers struct {
	mu      sync.Mutex
	server  *httptest.Server
	feeds   map[string][]FeedEntry
	quotes  map[string]string
	feedErr int
}

// NewProviders starts the fake provider server.
func NewProviders() *Providers {
	p := &Providers{
		feeds:  make(map[string][]FeedEntry),
		quotes: make(map[string]string),
	}
	p.server = httptest.NewServer(http.HandlerFunc(p.handle))
	return p
}

// URL returns the base URL for both provider configs.
func (p *Providers) URL() string {
	return p.server.URL
}

// SetFeed registers the feed entries returned for a connection ID.
func (p *Providers) SetFeed(connectionID string, entries []FeedEntry) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feeds[connectionID] = entries
}

// SetFeedError makes every feed request fail with the given status.
func (p *Providers) SetFeedError(status int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feedErr = status
}

// SetQuote registers the price returned for a symbol.
func (p *Providers) SetQuote(symbol, price string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.quotes[symbol] = price
}

// Reset clears all registered feeds and quotes.
func (p *Providers) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.feeds = make(map[string][]FeedEntry)
	p.quotes = make(map[string]string)
	p.feedErr = 0
}

func (p *Providers) handle(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(parts) == 3 && parts[0] == "connections" && parts[2] == "transactions":
		if p.feedErr != 0 {
			w.WriteHeader(p.feedErr)
			return
		}
		entries := p.feeds[parts[1]]
		if entries == nil {
			entries = []FeedEntry{}
		}
		writeJSON(w, map[string]any{"transactions": entries})
	case len(parts) == 2 && parts[0] == "quotes":
		price, ok := p.quotes[parts[1]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSON(w, map[string]any{
			"symbol":   parts[1],
			"price":    price,
			"currency": "USD",
			"as_of":    time.Now().UTC().Format(time.RFC3339),
		})
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
