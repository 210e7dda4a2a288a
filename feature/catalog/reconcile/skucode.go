package reconcile

import "strings"

// Match records one token resolved against the variant index.
type Match struct {
	Token string
	Entry Entry
}

// Resolution is the outcome of parsing one SKU code.
type Resolution struct {
	// Matches are the resolved tokens in code order. Two tokens resolving to
	// variants of the same property both appear; the join-row upsert makes
	// that idempotent, but it usually signals a data-quality problem.
	Matches []Match
	// Unmatched are tokens inside the variant-token sequence that the index
	// does not recognize.
	Unmatched []string
}

// ResolveCode parses a SKU code into variant matches.
//
// The code is split on the delimiter and scanned left to right for the first
// token the index recognizes; everything from that position onward is the
// variant-token sequence, and the tokens before it are the product-name
// prefix, which is discarded without being compared to the product's name.
// Unrecognized tokens inside the sequence are collected as unmatched, never
// fatal. A code with no recognizable token at all yields an empty resolution,
// so the SKU still gets created without associations.
func ResolveCode(code, delimiter string, idx *VariantIndex) Resolution {
	resolution := Resolution{}

	tokens := strings.Split(code, delimiter)

	start := -1
	for pos, token := range tokens {
		if _, ok := idx.Lookup(token); ok {
			start = pos
			break
		}
	}
	if start < 0 {
		return resolution
	}

	for _, token := range tokens[start:] {
		entry, ok := idx.Lookup(token)
		if !ok {
			resolution.Unmatched = append(resolution.Unmatched, token)
			continue
		}
		resolution.Matches = append(resolution.Matches, Match{Token: token, Entry: entry})
	}

	return resolution
}
