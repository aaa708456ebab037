package extract

import "github.com/jonjonssons/sacore-ai/internal/search"

// strategy is one step of a priority-ordered extraction chain. The first
// strategy to produce a plausible value wins and the rest never run.
type strategy struct {
	name string
	fn   func(item *search.Result) string
}

// runChain evaluates strategies in order, returning the winning value and
// the name of the strategy that produced it. An empty value with an empty
// strategy name means every step missed, which is not an error.
func runChain(item *search.Result, chain []strategy) (string, string) {
	for _, s := range chain {
		if value := s.fn(item); value != "" {
			return value, s.name
		}
	}
	return "", ""
}
