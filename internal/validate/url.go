// Package validate checks raw URL input before a download is admitted.
// Validation is two-phase: a pure format check (scheme and host), then a
// best-effort site-support lookup. When the site registry is unavailable
// or fails, the validator is permissive and defers the real check to the
// download engine.
package validate

import (
	"net/url"
	"strings"
)

// ReasonCode identifies why an input was rejected
type ReasonCode string

const (
	ReasonEmpty           ReasonCode = "EMPTY"
	ReasonMalformed       ReasonCode = "MALFORMED"
	ReasonUnsupportedSite ReasonCode = "UNSUPPORTED_SITE"
)

// Result is the outcome of validating one input
type Result struct {
	Accepted bool
	Code     ReasonCode
	Message  string // user-presentable rejection message
}

// SiteRegistry answers whether the engine supports a site. Lookups are
// best-effort: any error means the registry could not decide.
type SiteRegistry interface {
	IsSupported(rawURL string) (bool, error)
}

// AllowedSchemes lists the URL schemes accepted for download
var AllowedSchemes = []string{"http", "https"}

// URLValidator validates URLs for download eligibility
type URLValidator struct {
	registry SiteRegistry // optional
}

// NewURLValidator creates a validator. The registry may be nil, in which
// case the site-support phase is skipped.
func NewURLValidator(registry SiteRegistry) *URLValidator {
	return &URLValidator{registry: registry}
}

// Validate checks a raw input URL. It is pure and safe to call from any
// goroutine.
func (v *URLValidator) Validate(raw string) Result {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Result{
			Code:    ReasonEmpty,
			Message: "Please enter a URL.",
		}
	}

	parsed, err := url.Parse(raw)
	if err != nil || !schemeAllowed(parsed.Scheme) || parsed.Host == "" {
		return Result{
			Code:    ReasonMalformed,
			Message: "The URL is not valid. Please check it and try again.",
		}
	}

	if v.registry != nil {
		supported, err := v.registry.IsSupported(raw)
		// Registry failures are permissive: the engine performs the
		// authoritative check when the download runs.
		if err == nil && !supported {
			return Result{
				Code:    ReasonUnsupportedSite,
				Message: "This site is not supported.",
			}
		}
	}

	return Result{Accepted: true}
}

func schemeAllowed(scheme string) bool {
	for _, allowed := range AllowedSchemes {
		if scheme == allowed {
			return true
		}
	}
	return false
}
