// Package sanitizer normalizes free-text form values before they are mapped
// onto entity payloads.
//
// All functions are idempotent and never fail. Input that cannot be
// normalized is returned trimmed rather than dropped, so nothing the user
// typed is silently lost.
//
// Normalization includes:
//   - Text: collapse internal whitespace, trim leading/trailing spaces
//   - Emails: trim and lowercase
//   - Phone numbers: E.164 (+55...) when the number is plausible for Brazil
//     or carries its own country code
//   - Slices: drop duplicates and empty values after normalization
package sanitizer
