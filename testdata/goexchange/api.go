// Package goexchange declares the canonical exchange surface as a Go
// interface.
package goexchange

import "context"

type Market struct {
	ID     string
	Title  string
	Active bool
}

type OrderBook struct {
	Bids [][]float64
	Asks [][]float64
}

type Trade struct {
	ID    string
	Price float64
	Size  float64
}

// Exchange is the canonical surface, declared in Go instead of TypeScript.
type Exchange interface {
	// FetchMarkets returns all active markets.
	FetchMarkets(ctx context.Context, keyword *string) ([]Market, error)

	// FetchOrderBook returns the order book for an outcome.
	FetchOrderBook(ctx context.Context, outcomeID string) (OrderBook, error)

	// FetchTrades returns recent trades for an outcome.
	FetchTrades(ctx context.Context, outcomeID string) ([]Trade, error)

	// LoadMarkets loads and caches the market map.
	LoadMarkets(ctx context.Context, reload bool) (map[string]Market, error)

	// Close releases held resources.
	Close(ctx context.Context) error
}
