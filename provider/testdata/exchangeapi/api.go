// Package exchangeapi holds a small Go rendition of the exchange surface for
// exercising the Go front end.
package exchangeapi

import "context"

type Market struct {
	MarketID string
	Title    string
}

type OrderBook struct {
	Bids [][2]float64
	Asks [][2]float64
}

// Exchange is the canonical surface expressed as a Go interface.
type Exchange interface {
	// FetchMarkets returns the active markets.
	FetchMarkets(ctx context.Context, keyword *string) ([]Market, error)

	// FetchOrderBook returns the current book for an outcome.
	FetchOrderBook(ctx context.Context, outcomeID string) (OrderBook, error)

	LoadMarkets(ctx context.Context, reload bool) (map[string]Market, error)

	CallAPI(ctx context.Context, operationID string, params map[string]any) (any, error)

	Close(ctx context.Context) error

	// unexported methods stay internal to the implementation.
	resolveOutcome(marketID string) (string, error)
}
