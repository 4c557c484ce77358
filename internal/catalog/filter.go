package catalog

import (
	"strings"

	"swipeshop/internal/model"
)

// denyList holds product names excluded from every listing, independent of
// database state. Matching is case-insensitive exact match on the trimmed name.
var denyList = map[string]struct{}{
	"ripped jeans":    {},
	"counterfeit bag": {},
	"test product":    {},
}

// Filter applies the shared listing rules used by both the shopper feed and
// the seller dashboard: drop deny-listed names, then deduplicate by
// case-insensitive trimmed name with the first occurrence winning. The input
// slice is not modified.
func Filter(products []model.Product) []model.Product {
	out := make([]model.Product, 0, len(products))
	seen := make(map[string]struct{}, len(products))

	for _, p := range products {
		key := strings.ToLower(strings.TrimSpace(p.Name))
		if _, denied := denyList[key]; denied {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}

// Denied reports whether a product name is on the deny-list.
func Denied(name string) bool {
	_, ok := denyList[strings.ToLower(strings.TrimSpace(name))]
	return ok
}
