// Package tenant maps request hostnames to business tenants. Resolution is
// a pure string transform: no lookups, no side effects.
package tenant

import (
	"strings"

	"menu-platform-backend/internal/config"
)

// Resolver derives tenant identifiers from hostnames. Built once from
// config at startup and safe for concurrent use.
type Resolver struct {
	rootDomain        string
	debugSlug         string
	debugDomain       string
	previewHostSuffix string
}

// NewResolver creates a Resolver from application config.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		rootDomain:        strings.ToLower(cfg.RootDomain),
		debugSlug:         cfg.DebugSlug,
		debugDomain:       cfg.DebugDomain,
		previewHostSuffix: strings.ToLower(cfg.PreviewHostSuffix),
	}
}

// ResolveSlug returns the tenant slug for a hostname, or "" when the
// hostname addresses the root (landing) context.
//
//	demo.platix.app  -> "demo"
//	www.platix.app   -> ""
//	platix.app       -> ""
//	localhost        -> configured debug slug
func (r *Resolver) ResolveSlug(hostname string) string {
	host := normalizeHost(hostname)

	if r.isDevHost(host) {
		return r.debugSlug
	}

	if host == r.rootDomain || host == "www."+r.rootDomain {
		return ""
	}

	// First dot-delimited label is the slug; needs at least slug.domain.tld.
	parts := strings.Split(host, ".")
	if len(parts) < 3 {
		return ""
	}

	slug := parts[0]
	if slug == "" || slug == "www" {
		return ""
	}
	return slug
}

// ResolveDomain returns the custom-domain identifier for a hostname: the
// hostname itself with any leading www stripped, or the configured debug
// domain on development hosts. The root domain and its subdomains are never
// custom domains and resolve to "".
func (r *Resolver) ResolveDomain(hostname string) string {
	host := normalizeHost(hostname)

	if r.isDevHost(host) {
		return r.debugDomain
	}

	if host == r.rootDomain || strings.HasSuffix(host, "."+r.rootDomain) {
		return ""
	}

	return strings.TrimPrefix(host, "www.")
}

// isDevHost reports whether the hostname is a local or preview deployment,
// where subdomain-based resolution cannot work.
func (r *Resolver) isDevHost(host string) bool {
	if host == "localhost" {
		return true
	}
	return r.previewHostSuffix != "" && strings.HasSuffix(host, r.previewHostSuffix)
}

func normalizeHost(hostname string) string {
	host := strings.ToLower(strings.TrimSpace(hostname))
	// Hostnames arrive from Host headers; a port may still be attached.
	if i := strings.LastIndex(host, ":"); i > 0 && allDigits(host[i+1:]) {
		host = host[:i]
	}
	return strings.TrimSuffix(host, ".")
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
