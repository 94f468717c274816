package registry

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	iopkg "github.com/devantler-tech/wilder/pkg/io"
)

// defaultRegistry is the registry used whenever no registry has been configured.
const defaultRegistry = "http://nexus.uclv.edu.cu/repository/npm/"

// DefaultURL is the normalized form of the built-in registry.
//
//nolint:gochecknoglobals // normalized once at init from a constant
var DefaultURL = mustNormalize(defaultRegistry)

// ErrInvalidURL is returned when a registry URL is not an absolute http(s) URL.
var ErrInvalidURL = errors.New(
	"invalid registry URL: must be an absolute http:// or https:// URL (e.g. https://registry.npmjs.org/)",
)

// maxPort is the largest TCP port number.
const maxPort = 65535

//nolint:gochecknoglobals // static lookup table
var defaultPorts = map[string]uint64{
	"http":  80,
	"https": 443,
}

// URL is a normalized registry URL. The zero value holds no URL; any other value was
// produced by Normalize.
type URL struct {
	value string
}

// String returns the URL as a plain string.
func (u URL) String() string {
	return u.value
}

// IsZero reports whether u holds no URL.
func (u URL) IsZero() bool {
	return u.value == ""
}

// Normalize validates input as an absolute http or https URL and returns it with a trailing slash.
// Scheme and host are lower-cased, a default or empty port is dropped, and path, query and
// fragment are preserved. Normalize is idempotent.
func Normalize(input string) (URL, error) {
	trimmed, ok := iopkg.TrimNonEmpty(input)
	if !ok {
		return URL{}, fmt.Errorf("%w: empty value", ErrInvalidURL)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return URL{}, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}

	if !parsed.IsAbs() || parsed.Opaque != "" || parsed.Host == "" {
		return URL{}, fmt.Errorf("%w: %q is not an absolute URL", ErrInvalidURL, trimmed)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return URL{}, fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, parsed.Scheme)
	}

	if parsed.Hostname() == "" {
		return URL{}, fmt.Errorf("%w: %q has no host", ErrInvalidURL, trimmed)
	}

	parsed.Host, err = canonicalHost(parsed.Scheme, strings.ToLower(parsed.Host))
	if err != nil {
		return URL{}, err
	}

	if parsed.Path == "" {
		parsed.Path = "/"
	}

	normalized := parsed.String()
	if !strings.HasSuffix(normalized, "/") {
		normalized += "/"
	}

	return URL{value: normalized}, nil
}

// canonicalHost checks the port of host and rewrites it in canonical form: an empty or
// default port is removed and leading zeros are dropped.
func canonicalHost(scheme, host string) (string, error) {
	colon := strings.LastIndexByte(host, ':')
	if colon < 0 || strings.HasSuffix(host, "]") {
		return host, nil
	}

	name, port := host[:colon], host[colon+1:]
	if port == "" {
		return name, nil
	}

	number, err := strconv.ParseUint(port, 10, 32)
	if err != nil || number == 0 || number > maxPort {
		return "", fmt.Errorf("%w: port %q must be between 1 and %d", ErrInvalidURL, port, maxPort)
	}

	if number == defaultPorts[scheme] {
		return name, nil
	}

	return name + ":" + strconv.FormatUint(number, 10), nil
}

func mustNormalize(raw string) URL {
	normalized, err := Normalize(raw)
	if err != nil {
		panic(err)
	}

	return normalized
}
