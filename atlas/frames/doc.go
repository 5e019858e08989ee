// Package frames implements the compact range-string encoding used by
// index records to describe the tile slots a graphic owns.
//
// A frame list is a list of tokens, each either a single index "N" or
// an inclusive span "A-B" with A <= B. Parse expands and unions tokens
// into an ascending unique index list; Serialize groups maximal
// consecutive runs back into the minimal token list. Serialize(Parse(x))
// is the canonical form of any valid input.
package frames
