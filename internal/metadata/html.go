package metadata

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// maxBodyBytes caps how much of a page is read while looking for meta tags.
const maxBodyBytes = 1 << 20

// HTMLExtractor fetches a page and pulls the title tag plus Open Graph meta
// tags. Every request runs under the configured timeout so a hung host can
// never stall URL creation.
type HTMLExtractor struct {
	client *http.Client
	logger *zap.Logger
}

// NewHTMLExtractor creates a live extractor. A nil client falls back to
// http.DefaultClient.
func NewHTMLExtractor(client *http.Client, logger *zap.Logger) *HTMLExtractor {
	if client == nil {
		client = http.DefaultClient
	}

	return &HTMLExtractor{client: client, logger: logger}
}

func (e *HTMLExtractor) Extract(ctx context.Context, rawURL string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "text/html")

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, rawURL)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		// html.Parse is extremely tolerant; an error here means the body
		// was unreadable, not merely malformed.
		return nil, err
	}

	meta := &Metadata{}
	walkHTML(doc, meta)

	e.logger.Debug("extracted metadata",
		zap.String("url", rawURL),
		zap.String("title", meta.Title),
	)

	return meta, nil
}

func walkHTML(n *html.Node, meta *Metadata) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if meta.Title == "" && n.FirstChild != nil {
				meta.Title = strings.TrimSpace(n.FirstChild.Data)
			}
		case "meta":
			applyMetaTag(n, meta)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walkHTML(c, meta)
	}
}

func applyMetaTag(n *html.Node, meta *Metadata) {
	var key, content string

	for _, attr := range n.Attr {
		switch attr.Key {
		case "property", "name":
			key = attr.Val
		case "content":
			content = attr.Val
		}
	}

	if content == "" {
		return
	}

	switch key {
	case "og:title":
		// og:title wins over the title tag
		meta.Title = content
	case "og:description", "description":
		if meta.Description == "" {
			meta.Description = content
		}
	case "og:image":
		if meta.Image == "" {
			meta.Image = content
		}
	}
}

// Compile-time check.
var _ Extractor = (*HTMLExtractor)(nil)
