package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const defaultMatchCount = 5

// SearchKnowledge runs a RAG query against the knowledge base and
// returns up to matchCount results ranked by similarity. A matchCount
// of zero or less uses the server default of 5.
func (c *Client) SearchKnowledge(ctx context.Context, query string, matchCount int) ([]SearchResult, error) {
	if query == "" {
		return nil, errors.New("search query must not be empty")
	}

	if matchCount <= 0 {
		matchCount = defaultMatchCount
	}

	var out struct {
		Results []SearchResult `json:"results"`
	}

	_, err := c.execute(ctx, http.MethodPost, "/rag/query", func(r *resty.Request) {
		r.SetBody(map[string]any{
			"query":       query,
			"match_count": matchCount,
		})
		r.SetResult(&out)
	})
	if err != nil {
		return nil, err
	}

	return out.Results, nil
}

// ListKnowledgeItems returns every source in the knowledge base.
func (c *Client) ListKnowledgeItems(ctx context.Context) ([]KnowledgeItem, error) {
	var out struct {
		Items []KnowledgeItem `json:"items"`
	}

	_, err := c.execute(ctx, http.MethodGet, "/knowledge-items", func(r *resty.Request) {
		r.SetResult(&out)
	})
	if err != nil {
		return nil, err
	}

	return out.Items, nil
}

// DeleteKnowledgeItem removes a source and all documents crawled or
// uploaded under it.
func (c *Client) DeleteKnowledgeItem(ctx context.Context, sourceID string) error {
	if sourceID == "" {
		return errors.New("source ID must not be empty")
	}

	_, err := c.execute(ctx, http.MethodDelete, "/knowledge-items/"+sourceID, nil)

	return err
}

// UploadDocument uploads a document into the knowledge base as a
// multipart form. The Content-Type header is set by the transport so
// the multipart boundary it generated is preserved; processing happens
// asynchronously on the server.
func (c *Client) UploadDocument(ctx context.Context, filename string, content io.Reader, tags []string) (*UploadResult, error) {
	if filename == "" {
		return nil, errors.New("filename must not be empty")
	}

	if content == nil {
		return nil, errors.New("content must not be nil")
	}

	// The server expects tags as a JSON array in a form field.
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}

	var result UploadResult

	_, err = c.execute(ctx, http.MethodPost, "/documents/upload", func(r *resty.Request) {
		r.SetFileReader("file", filename, content)
		r.SetFormData(map[string]string{"tags": string(tagsJSON)})
		r.SetResult(&result)
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
