package frames

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Parse expands range tokens into an ascending, unique index list.
// Tokens are "N" or "A-B" (inclusive, A <= B); overlapping and
// duplicate tokens union cleanly. An empty token list yields an empty
// result.
func Parse(tokens []string) ([]int, error) {
	seen := make(map[int]struct{})
	for _, tok := range tokens {
		lo, hi, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		for i := lo; i <= hi; i++ {
			seen[i] = struct{}{}
		}
	}
	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	sort.Ints(out)
	return out, nil
}

// Serialize groups an ascending unique index list into the minimal
// token list: singleton runs become "N", longer runs "A-B". The input
// must be sorted ascending with no duplicates, which is what Parse and
// the packing engine produce. Empty input yields an empty (non-nil)
// token list.
func Serialize(indices []int) []string {
	out := []string{}
	for i := 0; i < len(indices); {
		j := i
		for j+1 < len(indices) && indices[j+1] == indices[j]+1 {
			j++
		}
		if i == j {
			out = append(out, strconv.Itoa(indices[i]))
		} else {
			out = append(out, strconv.Itoa(indices[i])+"-"+strconv.Itoa(indices[j]))
		}
		i = j + 1
	}
	return out
}

// Run returns the contiguous index list [start, start+count). The
// engine uses it to serialize freshly allocated runs.
func Run(start, count int) []int {
	out := make([]int, count)
	for i := range out {
		out[i] = start + i
	}
	return out
}

func parseToken(tok string) (lo, hi int, err error) {
	a, b, spanned := strings.Cut(tok, "-")
	lo, err = parseIndex(tok, a)
	if err != nil {
		return 0, 0, err
	}
	if !spanned {
		return lo, lo, nil
	}
	hi, err = parseIndex(tok, b)
	if err != nil {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvertedRange, tok)
	}
	return lo, hi, nil
}

// parseIndex parses one side of a token, rejecting anything strconv
// would tolerate that the grammar does not (signs, empty strings).
func parseIndex(tok, s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedToken, tok)
	}
	return n, nil
}
