package apidef

import "github.com/pmxt-dev/pmxtgen/openapi"

// Components returns the hand-written component schemas. The declaration
// references these by name through NamedSchemas; the translator emits $ref
// nodes and never derives their bodies.
//
// Field names follow the wire format (camelCase), not the SDK bindings.
func Components() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"Market": {
			Type:        "object",
			Description: "A unified market representation across exchanges.",
			Properties: map[string]*openapi.Schema{
				"marketId":       {Type: "string", Description: "The unique identifier for this market"},
				"title":          {Type: "string", Description: "Market title"},
				"outcomes":       {Type: "array", Items: &openapi.Schema{Ref: "#/components/schemas/MarketOutcome"}, Description: "All tradeable outcomes"},
				"volume24h":      {Type: "number", Description: "24-hour trading volume (USD)"},
				"liquidity":      {Type: "number", Description: "Current liquidity (USD)"},
				"url":            {Type: "string", Description: "Direct URL to the market"},
				"description":    {Type: "string", Description: "Market description"},
				"resolutionDate": {Type: "string", Description: "Expected resolution date (ISO 8601)"},
				"volume":         {Type: "number", Description: "Total volume (USD)"},
				"openInterest":   {Type: "number", Description: "Open interest (USD)"},
				"image":          {Type: "string", Description: "Market image URL"},
				"category":       {Type: "string", Description: "Market category"},
				"tags":           {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "Market tags"},
			},
			Required: []string{"marketId", "title", "outcomes", "volume24h", "liquidity", "url"},
		},

		"MarketOutcome": {
			Type:        "object",
			Description: "A single tradeable outcome within a market.",
			Properties: map[string]*openapi.Schema{
				"outcomeId":      {Type: "string", Description: "Outcome ID for trading operations (Polymarket: CLOB token id, Kalshi: market ticker)"},
				"label":          {Type: "string", Description: "Human-readable label (e.g. Trump, Yes)"},
				"price":          {Type: "number", Description: "Current price (0.0 to 1.0, representing probability)"},
				"priceChange24h": {Type: "number", Description: "24-hour price change"},
				"metadata":       {Type: "object", AdditionalProperties: true, Description: "Exchange-specific metadata"},
				"marketId":       {Type: "string", Description: "The market this outcome belongs to"},
			},
			Required: []string{"outcomeId", "label", "price"},
		},

		"Event": {
			Type:        "object",
			Description: "A grouped collection of related markets.",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Description: "Event ID"},
				"title":       {Type: "string", Description: "Event title"},
				"description": {Type: "string", Description: "Event description"},
				"slug":        {Type: "string", Description: "Event slug"},
				"markets":     {Type: "array", Items: &openapi.Schema{Ref: "#/components/schemas/Market"}, Description: "Related markets in this event"},
				"url":         {Type: "string", Description: "Event URL"},
				"image":       {Type: "string", Description: "Event image URL"},
				"category":    {Type: "string", Description: "Event category"},
				"tags":        {Type: "array", Items: &openapi.Schema{Type: "string"}, Description: "Event tags"},
			},
			Required: []string{"id", "title", "description", "slug", "markets", "url"},
		},

		"PriceCandle": {
			Type:        "object",
			Description: "OHLCV price candle.",
			Properties: map[string]*openapi.Schema{
				"timestamp": {Type: "integer", Description: "Unix timestamp (milliseconds)"},
				"open":      {Type: "number", Description: "Opening price (0.0 to 1.0)"},
				"high":      {Type: "number", Description: "Highest price (0.0 to 1.0)"},
				"low":       {Type: "number", Description: "Lowest price (0.0 to 1.0)"},
				"close":     {Type: "number", Description: "Closing price (0.0 to 1.0)"},
				"volume":    {Type: "number", Description: "Trading volume"},
			},
			Required: []string{"timestamp", "open", "high", "low", "close"},
		},

		"OrderBook": {
			Type:        "object",
			Description: "Current order book for an outcome.",
			Properties: map[string]*openapi.Schema{
				"bids":      {Type: "array", Items: &openapi.Schema{Ref: "#/components/schemas/OrderLevel"}, Description: "Bid orders (sorted high to low)"},
				"asks":      {Type: "array", Items: &openapi.Schema{Ref: "#/components/schemas/OrderLevel"}, Description: "Ask orders (sorted low to high)"},
				"timestamp": {Type: "integer", Description: "Unix timestamp (milliseconds)"},
			},
			Required: []string{"bids", "asks"},
		},

		"OrderLevel": {
			Type:        "object",
			Description: "A single price level in the order book.",
			Properties: map[string]*openapi.Schema{
				"price": {Type: "number", Description: "Price (0.0 to 1.0)"},
				"size":  {Type: "number", Description: "Number of contracts"},
			},
			Required: []string{"price", "size"},
		},

		"Trade": {
			Type:        "object",
			Description: "A historical trade.",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Description: "Trade ID"},
				"timestamp": {Type: "integer", Description: "Unix timestamp (milliseconds)"},
				"price":     {Type: "number", Description: "Trade price (0.0 to 1.0)"},
				"amount":    {Type: "number", Description: "Trade amount (contracts)"},
				"side":      {Type: "string", Enum: []string{"buy", "sell", "unknown"}, Description: "Trade side"},
			},
			Required: []string{"id", "timestamp", "price", "amount", "side"},
		},

		"UserTrade": {
			Type:        "object",
			Description: "A trade made by the authenticated user.",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Description: "Trade ID"},
				"timestamp": {Type: "integer", Description: "Unix timestamp (milliseconds)"},
				"price":     {Type: "number", Description: "Trade price (0.0 to 1.0)"},
				"amount":    {Type: "number", Description: "Trade amount (contracts)"},
				"side":      {Type: "string", Enum: []string{"buy", "sell", "unknown"}, Description: "Trade side"},
				"orderId":   {Type: "string", Description: "The order that generated this fill"},
			},
			Required: []string{"id", "timestamp", "price", "amount", "side"},
		},

		"Order": {
			Type:        "object",
			Description: "An order (open, filled, or cancelled).",
			Properties: map[string]*openapi.Schema{
				"id":        {Type: "string", Description: "Order ID"},
				"marketId":  {Type: "string", Description: "Market ID"},
				"outcomeId": {Type: "string", Description: "Outcome ID"},
				"side":      {Ref: "#/components/schemas/OrderSide"},
				"type":      {Type: "string", Enum: []string{"market", "limit"}, Description: "Order type"},
				"amount":    {Type: "number", Description: "Order amount (contracts)"},
				"status":    {Type: "string", Description: "Order status (pending, open, filled, cancelled, rejected)"},
				"filled":    {Type: "number", Description: "Amount filled"},
				"remaining": {Type: "number", Description: "Amount remaining"},
				"timestamp": {Type: "integer", Description: "Unix timestamp (milliseconds)"},
				"price":     {Type: "number", Description: "Limit price (for limit orders)"},
				"fee":       {Type: "number", Description: "Trading fee"},
			},
			Required: []string{"id", "marketId", "outcomeId", "side", "type", "amount", "status", "filled", "remaining", "timestamp"},
		},

		"Position": {
			Type:        "object",
			Description: "A current position in a market.",
			Properties: map[string]*openapi.Schema{
				"marketId":      {Type: "string", Description: "Market ID"},
				"outcomeId":     {Type: "string", Description: "Outcome ID"},
				"outcomeLabel":  {Type: "string", Description: "Outcome label"},
				"size":          {Type: "number", Description: "Position size (positive for long, negative for short)"},
				"entryPrice":    {Type: "number", Description: "Average entry price"},
				"currentPrice":  {Type: "number", Description: "Current market price"},
				"unrealizedPnl": {Type: "number", Description: "Unrealized profit/loss"},
				"realizedPnl":   {Type: "number", Description: "Realized profit/loss"},
			},
			Required: []string{"marketId", "outcomeId", "outcomeLabel", "size", "entryPrice", "currentPrice", "unrealizedPnl"},
		},

		"Balance": {
			Type:        "object",
			Description: "Account balance.",
			Properties: map[string]*openapi.Schema{
				"currency":  {Type: "string", Description: "Currency (e.g. USDC)"},
				"total":     {Type: "number", Description: "Total balance"},
				"available": {Type: "number", Description: "Available for trading"},
				"locked":    {Type: "number", Description: "Locked in open orders"},
			},
			Required: []string{"currency", "total", "available", "locked"},
		},

		"ExecutionPriceResult": {
			Type:        "object",
			Description: "Result of an execution price calculation.",
			Properties: map[string]*openapi.Schema{
				"price":        {Type: "number", Description: "The volume-weighted average price"},
				"filledAmount": {Type: "number", Description: "The actual amount that can be filled"},
				"fullyFilled":  {Type: "boolean", Description: "Whether the full requested amount can be filled"},
			},
			Required: []string{"price", "filledAmount", "fullyFilled"},
		},

		"PaginatedMarketsResult": {
			Type:        "object",
			Description: "Result of a paginated markets fetch.",
			Properties: map[string]*openapi.Schema{
				"data":       {Type: "array", Items: &openapi.Schema{Ref: "#/components/schemas/Market"}, Description: "Markets in this page"},
				"total":      {Type: "integer", Description: "Total number of markets in the snapshot"},
				"nextCursor": {Type: "string", Description: "Opaque cursor for the next call; absent on the last page"},
			},
			Required: []string{"data", "total"},
		},

		"OrderSide": {
			Type:        "string",
			Enum:        []string{"buy", "sell"},
			Description: "Order side",
		},

		"MarketFetchParams": {
			Type:        "object",
			Description: "Keyword search and pagination parameters for fetchMarkets.",
			Properties: map[string]*openapi.Schema{
				"keyword": {Type: "string", Description: "Case-insensitive keyword filter"},
				"limit":   {Type: "integer", Description: "Maximum number of markets to return"},
				"sort":    {Type: "string", Enum: []string{"volume", "liquidity", "newest"}, Description: "Sort order"},
			},
		},

		"EventFetchParams": {
			Type:        "object",
			Description: "Keyword search and pagination parameters for fetchEvents.",
			Properties: map[string]*openapi.Schema{
				"keyword": {Type: "string", Description: "Case-insensitive keyword filter"},
				"limit":   {Type: "integer", Description: "Maximum number of events to return"},
				"sort":    {Type: "string", Enum: []string{"volume", "liquidity", "newest"}, Description: "Sort order"},
			},
		},

		"MatchOptions": {
			Type:        "object",
			Description: "Fields to search when matching a single market or event.",
			Properties: map[string]*openapi.Schema{
				"searchIn": {
					Type:        "array",
					Items:       &openapi.Schema{Type: "string", Enum: []string{"title", "description", "category", "tags", "outcomes"}},
					Description: "Fields to search in (default: title)",
				},
			},
		},

		"PaginationParams": {
			Type:        "object",
			Description: "Cursor-based pagination parameters.",
			Properties: map[string]*openapi.Schema{
				"limit":  {Type: "integer", Description: "Page size"},
				"cursor": {Type: "string", Description: "Opaque cursor from the previous page"},
			},
		},

		"CandleParams": {
			Type:        "object",
			Description: "Resolution and range parameters for fetchOHLCV.",
			Properties: map[string]*openapi.Schema{
				"interval": {Type: "string", Enum: []string{"1m", "5m", "15m", "1h", "6h", "1d"}, Description: "Candle interval"},
				"limit":    {Type: "integer", Description: "Maximum number of candles to return"},
				"since":    {Type: "integer", Description: "Start of the range (Unix ms)"},
				"until":    {Type: "integer", Description: "End of the range (Unix ms)"},
			},
		},

		"TradeHistoryParams": {
			Type:        "object",
			Description: "Limit and since-timestamp filters for fetchTrades.",
			Properties: map[string]*openapi.Schema{
				"limit": {Type: "integer", Description: "Maximum number of trades to return"},
				"since": {Type: "integer", Description: "Only return trades after this timestamp (Unix ms)"},
			},
		},

		"CreateOrderParams": {
			Type:        "object",
			Description: "Parameters for createOrder.",
			Properties: map[string]*openapi.Schema{
				"marketId":  {Type: "string", Description: "Market ID"},
				"outcomeId": {Type: "string", Description: "Outcome ID"},
				"side":      {Ref: "#/components/schemas/OrderSide"},
				"type":      {Type: "string", Enum: []string{"market", "limit"}, Description: "Order type"},
				"amount":    {Type: "number", Description: "Order amount (contracts)"},
				"price":     {Type: "number", Description: "Limit price, required for limit orders"},
			},
			Required: []string{"marketId", "outcomeId", "side", "type", "amount"},
		},

		"Credentials": {
			Type:        "object",
			Description: "Exchange credentials. Which fields apply depends on the exchange.",
			Properties: map[string]*openapi.Schema{
				"apiKey":        {Type: "string", Description: "API key (Kalshi)"},
				"secret":        {Type: "string", Description: "API secret"},
				"privateKey":    {Type: "string", Description: "Signing key (Polymarket wallet key or Kalshi RSA key)"},
				"funderAddress": {Type: "string", Description: "Funder wallet address (Polymarket)"},
			},
		},
	}
}
