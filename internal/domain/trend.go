package domain

// TrendInterest maps a search keyword to its average interest index,
// typically on a 0-100 scale, as fetched by the external trends collector.
type TrendInterest map[string]float64

// KeywordMap associates a product with the search keyword used to look up
// its interest signal. Products without a mapping get no trend credit.
type KeywordMap map[string]string
