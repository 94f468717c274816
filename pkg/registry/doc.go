// Package registry defines the package registry URL type used across Wilder.
//
// Key functionality:
//   - Normalize: validate a user-supplied URL and canonicalize it to a [URL]
//   - DefaultURL: the built-in fallback registry
//
// A non-zero [URL] is only ever produced by [Normalize], so it is absolute, uses the http
// or https scheme, carries a valid port if any, and ends with a trailing slash.
package registry
