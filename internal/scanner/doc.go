// Package scanner turns source text into tokens, one call to Scan at a time.
//
// Trivia is handled in two tiers. While scanning, only a packed summary
// (width, has comment, has newline) is recorded. The trivia objects are
// built later, on demand, by re-scanning the recorded span.
package scanner
