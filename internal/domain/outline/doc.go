// Package outline decomposes raw explanation text into a structured
// domain.Outline. Parse splits text into typed sections using structural
// cues (ordinal markers, copula phrasing, blank-line breaks, illustrative
// markers); Tokenize extracts key terms and canonicalized numbered steps
// from the parsed sections. Both are pure functions and safe for
// concurrent use across independent requests.
package outline
