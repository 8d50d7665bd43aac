// Cadence - Music Discovery and Smart Queue Sequencing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cadence

package config

import (
	"fmt"
	"net/url"
)

// validateHTTPURL checks that a catalog base URL is absolute http(s) with a
// host and no query string. A path prefix such as /youtube/v3 is allowed.
func validateHTTPURL(rawURL, fieldName string) error {
	u, err := url.Parse(rawURL)
	switch {
	case err != nil:
		return fmt.Errorf("%s: invalid URL: %w", fieldName, err)
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%s: scheme must be http or https, got %q", fieldName, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%s: host is required", fieldName)
	case u.RawQuery != "" || u.Fragment != "":
		return fmt.Errorf("%s: must not contain a query or fragment", fieldName)
	}
	return nil
}
