// Package apidef holds the canonical API definition: the embedded exchange
// declaration plus the hand-maintained tables that steer generation (named
// schema mapping, exclusions, client skip-list, and response policies).
//
// Everything here is reviewed by hand. The generator never invents a policy
// or a component schema; it fails when a table entry is missing.
package apidef

import (
	_ "embed"

	"github.com/pmxt-dev/pmxtgen/openapi"
	"github.com/pmxt-dev/pmxtgen/tsclient"
)

//go:embed exchange.d.ts
var DeclarationSource []byte

// TypeName is the declaration the generator extracts members from.
const TypeName = "BaseExchange"

// Document metadata for the generated schema artifact.
const (
	DocTitle       = "PMXT REST API"
	DocDescription = "Unified prediction market trading API. One endpoint per exchange method; arguments travel positionally in the request body."
	DocVersion     = "1.0.0"
)

// Exclusions removes members from generation entirely. getExecutionPrice is
// computed locally from an order book and is not a server operation.
var Exclusions = map[string]bool{
	"getExecutionPrice": true,
}

// ClientSkip lists members that appear in the schema document but whose
// client wrappers are maintained by hand. The watch methods manage callback
// registration and socket lifecycle, and callApi is a passthrough with no
// fixed response shape.
var ClientSkip = map[string]bool{
	"callApi":               true,
	"watchPrices":           true,
	"watchUserPositions":    true,
	"watchUserTransactions": true,
}

// NamedSchemas maps declaration type names to component schema ids. A name
// missing from this table renders as an open object.
var NamedSchemas = map[string]string{
	"UnifiedMarket":          "Market",
	"UnifiedEvent":           "Event",
	"ExchangeCredentials":    "Credentials",
	"MarketOutcome":          "MarketOutcome",
	"PriceCandle":            "PriceCandle",
	"OrderBook":              "OrderBook",
	"OrderLevel":             "OrderLevel",
	"Trade":                  "Trade",
	"UserTrade":              "UserTrade",
	"Order":                  "Order",
	"Position":               "Position",
	"Balance":                "Balance",
	"ExecutionPriceResult":   "ExecutionPriceResult",
	"PaginatedMarketsResult": "PaginatedMarketsResult",
	"MarketFetchParams":      "MarketFetchParams",
	"EventFetchParams":       "EventFetchParams",
	"MatchOptions":           "MatchOptions",
	"PaginationParams":       "PaginationParams",
	"CandleParams":           "CandleParams",
	"TradeHistoryParams":     "TradeHistoryParams",
	"CreateOrderParams":      "CreateOrderParams",
	"OrderSide":              "OrderSide",
}

// Policies is the response-handling table for the generated client. Every
// member outside ClientSkip must have an entry.
var Policies = map[string]tsclient.Policy{
	"has":                       {ReturnType: "Record<string, boolean>", Pattern: tsclient.PatternRecord, Converter: "Boolean"},
	"loadMarkets":               {ReturnType: "Record<string, UnifiedMarket>", Pattern: tsclient.PatternRecord, Converter: "convertMarket"},
	"fetchMarkets":              {ReturnType: "UnifiedMarket[]", Pattern: tsclient.PatternArray, Converter: "convertMarket"},
	"fetchEvents":               {ReturnType: "UnifiedEvent[]", Pattern: tsclient.PatternArray, Converter: "convertEvent"},
	"fetchMarket":               {ReturnType: "UnifiedMarket", Pattern: tsclient.PatternSingle, Converter: "convertMarket"},
	"fetchEvent":                {ReturnType: "UnifiedEvent", Pattern: tsclient.PatternSingle, Converter: "convertEvent"},
	"fetchMarketsPaginated":     {ReturnType: "PaginatedMarketsResult", Pattern: tsclient.PatternPaginated, Converter: "convertMarket"},
	"fetchOHLCV":                {ReturnType: "PriceCandle[]", Pattern: tsclient.PatternArray, Converter: "convertCandle"},
	"fetchOrderBook":            {ReturnType: "OrderBook", Pattern: tsclient.PatternSingle, Converter: "convertOrderBook"},
	"fetchTrades":               {ReturnType: "Trade[]", Pattern: tsclient.PatternArray, Converter: "convertTrade"},
	"watchOrderBook":            {ReturnType: "OrderBook", Pattern: tsclient.PatternSingle, Converter: "convertOrderBook"},
	"watchTrades":               {ReturnType: "Trade[]", Pattern: tsclient.PatternArray, Converter: "convertTrade"},
	"createOrder":               {ReturnType: "Order", Pattern: tsclient.PatternSingle, Converter: "convertOrder"},
	"cancelOrder":               {ReturnType: "Order", Pattern: tsclient.PatternSingle, Converter: "convertOrder"},
	"fetchOrder":                {ReturnType: "Order", Pattern: tsclient.PatternSingle, Converter: "convertOrder"},
	"fetchOpenOrders":           {ReturnType: "Order[]", Pattern: tsclient.PatternArray, Converter: "convertOrder"},
	"fetchClosedOrders":         {ReturnType: "Order[]", Pattern: tsclient.PatternArray, Converter: "convertOrder"},
	"fetchAllOrders":            {ReturnType: "Order[]", Pattern: tsclient.PatternArray, Converter: "convertOrder"},
	"fetchMyTrades":             {ReturnType: "UserTrade[]", Pattern: tsclient.PatternArray, Converter: "convertUserTrade"},
	"fetchPositions":            {ReturnType: "Position[]", Pattern: tsclient.PatternArray, Converter: "convertPosition"},
	"fetchBalance":              {ReturnType: "Balance[]", Pattern: tsclient.PatternArray, Converter: "convertBalance"},
	"getExecutionPriceDetailed": {ReturnType: "ExecutionPriceResult", Pattern: tsclient.PatternSingle, Converter: "convertExecutionResult"},
	"close":                     {Pattern: tsclient.PatternVoid},
}

// HealthPath and Health are the fixed health-check entry, carried into the
// document verbatim. It is the only non-derived path.
const HealthPath = "/health"

func HealthItem() *openapi.PathItem {
	return &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:     "Health Check",
			OperationID: "healthCheck",
			Responses: map[string]*openapi.Response{
				"200": {
					Description: "Service is healthy",
					Content: map[string]*openapi.MediaType{
						"application/json": {Schema: &openapi.Schema{
							Type: "object",
							Properties: map[string]*openapi.Schema{
								"status": {Type: "string", Enum: []string{"ok"}},
							},
							Required: []string{"status"},
						}},
					},
				},
			},
		},
	}
}
