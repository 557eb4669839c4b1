// Package search provides web-search implementations of ferret.Searcher.
//
// Tavily is the only provider at present. It requires an API key:
//
//	searcher := search.NewTavily(os.Getenv("TAVILY_API_KEY"))
//	results, err := searcher.Search(ctx, "how do tides work", 8)
package search
