package ferret

// SearchResult is a single item returned by a Searcher. Upstream providers
// do not guarantee every field; absent fields are left empty and the
// workflow substitutes placeholders when deriving sources.
type SearchResult struct {
	Title         string `json:"title,omitempty"`
	URL           string `json:"url,omitempty"`
	PublishedDate string `json:"published_date,omitempty"`
	Snippet       string `json:"snippet,omitempty"`
}

// Source is a citation record derived from a SearchResult. Unlike
// SearchResult, every field is always populated: missing upstream data is
// replaced by an explicit "Unknown" placeholder.
type Source struct {
	Title         string `json:"title"`
	URL           string `json:"url"`
	PublishedDate string `json:"published_date"`
}
