// Package fetch - portal.go provides job-portal detection and per-portal
// listing selectors with generic fallbacks.
package fetch

import (
	"net/url"
	"strings"
)

// Portal represents a known job board.
type Portal string

const (
	// PortalLinkedIn is linkedin.com/jobs
	PortalLinkedIn Portal = "linkedin"
	// PortalIndeed is indeed.com and country variants
	PortalIndeed Portal = "indeed"
	// PortalNaukri is naukri.com
	PortalNaukri Portal = "naukri"
	// PortalInternshala is internshala.com
	PortalInternshala Portal = "internshala"
	// PortalUnknown is an unrecognized board
	PortalUnknown Portal = "unknown"
)

// DetectPortal identifies the job board from a URL.
func DetectPortal(urlStr string) Portal {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PortalUnknown
	}

	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "linkedin.com"):
		return PortalLinkedIn
	case strings.Contains(host, "indeed."):
		return PortalIndeed
	case strings.Contains(host, "naukri.com"):
		return PortalNaukri
	case strings.Contains(host, "internshala.com"):
		return PortalInternshala
	default:
		return PortalUnknown
	}
}

// ListingSelectors holds the CSS selectors used to pull listing cards and
// their fields from a portal's search-results page. Selectors are tried in
// order; the first that yields nodes wins.
type ListingSelectors struct {
	Card     []string
	Title    []string
	Company  []string
	Location []string
	Link     []string
}

// PortalContentSelectors returns the selectors that locate the main text of
// a portal's job detail page, most specific first.
func PortalContentSelectors(portal Portal) []string {
	switch portal {
	case PortalLinkedIn:
		return []string{".show-more-less-html__markup", ".description__text"}
	case PortalIndeed:
		return []string{"#jobDescriptionText", ".jobsearch-jobDescriptionText"}
	case PortalNaukri:
		return []string{".job-desc", ".dang-inner-html"}
	case PortalInternshala:
		return []string{".internship_details", ".text-container"}
	default:
		return []string{"main", "article", ".job-description", ".description"}
	}
}

// PortalListingSelectors returns the selector set for a portal, with generic
// fallbacks for unknown boards.
func PortalListingSelectors(portal Portal) ListingSelectors {
	switch portal {
	case PortalLinkedIn:
		return ListingSelectors{
			Card:     []string{".jobs-search__results-list li", ".base-card"},
			Title:    []string{".base-search-card__title", "h3"},
			Company:  []string{".base-search-card__subtitle", "h4"},
			Location: []string{".job-search-card__location"},
			Link:     []string{"a.base-card__full-link", "a"},
		}
	case PortalIndeed:
		return ListingSelectors{
			Card:     []string{".job_seen_beacon", ".result"},
			Title:    []string{".jobTitle span", ".jobTitle", "h2"},
			Company:  []string{"[data-testid='company-name']", ".companyName"},
			Location: []string{"[data-testid='text-location']", ".companyLocation"},
			Link:     []string{"a.jcs-JobTitle", "h2 a", "a"},
		}
	case PortalNaukri:
		return ListingSelectors{
			Card:     []string{".srp-jobtuple-wrapper", ".jobTuple"},
			Title:    []string{"a.title", ".title"},
			Company:  []string{"a.comp-name", ".comp-name", ".companyInfo"},
			Location: []string{".locWdth", ".location"},
			Link:     []string{"a.title", "a"},
		}
	case PortalInternshala:
		return ListingSelectors{
			Card:     []string{".individual_internship", ".internship_meta"},
			Title:    []string{".job-internship-name", ".profile"},
			Company:  []string{".company-name", ".company_name"},
			Location: []string{".locations", ".location_link"},
			Link:     []string{"a.job-title-href", "a"},
		}
	default:
		return ListingSelectors{
			Card:     []string{".job-card", ".job-listing", "article", "li.job"},
			Title:    []string{".job-title", "h2", "h3"},
			Company:  []string{".company", ".company-name"},
			Location: []string{".location", ".job-location"},
			Link:     []string{"a"},
		}
	}
}
