package ingestion

import (
	"context"
	"fmt"
	"log"

	"github.com/jonathan/resume-insight/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
)

// IngestFromURL fetches a page, extracts its main text, cleans it, and
// returns cleaned text with metadata. Portal detection picks the content
// selectors. If useBrowser is true, falls back to headless rendering when
// the static HTML yields too little text.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool, verbose bool) (string, *Metadata, error) {
	portal := fetch.DetectPortal(urlStr)
	if verbose {
		log.Printf("[VERBOSE] URL: %s", urlStr)
		log.Printf("[VERBOSE] Detected portal: %s", portal)
	}

	result, err := fetch.URL(ctx, urlStr, nil)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Fetched HTML: %d bytes", len(result.HTML))
	}

	selectors := fetch.PortalContentSelectors(portal)
	textContent, err := fetch.ExtractMainText(result.HTML, selectors)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}
	if verbose {
		log.Printf("[VERBOSE] Extracted text: %d chars", len(textContent))
	}

	if useBrowser && fetch.ShouldUseBrowser(textContent) {
		if verbose {
			log.Printf("[VERBOSE] Content too short (%d chars < %d), falling back to browser rendering...",
				len(textContent), fetch.MinContentLength)
		}

		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr, fetch.DefaultTimeout, verbose)
		if browserErr != nil {
			if verbose {
				log.Printf("[VERBOSE] Browser rendering failed: %v, using HTTP content", browserErr)
			}
		} else {
			browserText, extractErr := fetch.ExtractMainText(browserHTML, selectors)
			if extractErr == nil && len(browserText) > len(textContent) {
				textContent = browserText
			}
		}
	}

	cleanedText := CleanText(textContent)
	metadata := NewMetadata(cleanedText, urlStr)

	return cleanedText, metadata, nil
}
