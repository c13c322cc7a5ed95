package tickers

// sampleTickers is a sample of NIFTY large-cap constituents, listed without
// the exchange suffix.
var sampleTickers = []string{
	"RELIANCE",
	"TCS",
	"HDFCBANK",
	"ICICIBANK",
	"INFY",
	"HINDUNILVR",
	"ITC",
	"SBIN",
	"BHARTIARTL",
	"KOTAKBANK",
	"LT",
	"AXISBANK",
	"ASIANPAINT",
	"MARUTI",
	"TITAN",
	"BAJFINANCE",
	"HCLTECH",
	"SUNPHARMA",
	"TATAMOTORS",
	"TATASTEEL",
	"WIPRO",
	"ULTRACEMCO",
	"NTPC",
	"POWERGRID",
	"NESTLEIND",
	"TECHM",
	"BAJAJFINSV",
	"ONGC",
	"JSWSTEEL",
	"COALINDIA",
	"HDFCLIFE",
	"GRASIM",
	"ADANIENT",
	"ADANIPORTS",
	"CIPLA",
	"DRREDDY",
	"EICHERMOT",
	"BRITANNIA",
	"DIVISLAB",
	"HEROMOTOCO",
	"HINDALCO",
	"INDUSINDBK",
	"APOLLOHOSP",
	"BAJAJ-AUTO",
	"BPCL",
	"SBILIFE",
	"TATACONSUM",
	"UPL",
	"M&M",
	"LTIM",
}
