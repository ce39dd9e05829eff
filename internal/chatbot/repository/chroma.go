package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ChromaClient is a minimal HTTP client for the Chroma collection API.
// It covers only what the chatbot needs: resolving a collection by name,
// similarity query, and exact/filtered get.
type ChromaClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewChromaClient creates a client against baseURL (e.g. http://localhost:8000).
func NewChromaClient(baseURL string) *ChromaClient {
	return &ChromaClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type collectionInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Collection resolves a collection name to its id.
func (c *ChromaClient) Collection(ctx context.Context, name string) (string, error) {
	reqURL := c.baseURL + "/api/v1/collections/" + name
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("chroma request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chroma collection %q: status %d", name, resp.StatusCode)
	}
	var info collectionInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return "", fmt.Errorf("decode collection: %w", err)
	}
	return info.ID, nil
}

// Heartbeat checks that the store answers at all.
func (c *ChromaClient) Heartbeat(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/heartbeat", nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chroma heartbeat: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chroma heartbeat: status %d", resp.StatusCode)
	}
	return nil
}

type queryRequest struct {
	QueryEmbeddings [][]float32    `json:"query_embeddings"`
	NResults        int            `json:"n_results"`
	Where           map[string]any `json:"where,omitempty"`
	Include         []string       `json:"include"`
}

// QueryResult mirrors Chroma's parallel-array response for one query.
type QueryResult struct {
	IDs       [][]string         `json:"ids"`
	Documents [][]string         `json:"documents"`
	Metadatas [][]map[string]any `json:"metadatas"`
	Distances [][]float64        `json:"distances"`
}

// Query runs a nearest-neighbor search over the collection.
func (c *ChromaClient) Query(ctx context.Context, collectionID string, embedding []float32, nResults int, where map[string]any, include []string) (*QueryResult, error) {
	body := queryRequest{
		QueryEmbeddings: [][]float32{embedding},
		NResults:        nResults,
		Where:           where,
		Include:         include,
	}
	var out QueryResult
	if err := c.post(ctx, "/api/v1/collections/"+collectionID+"/query", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type getRequest struct {
	IDs     []string       `json:"ids,omitempty"`
	Where   map[string]any `json:"where,omitempty"`
	Include []string       `json:"include"`
}

// GetResult mirrors Chroma's flat-array response for a get.
type GetResult struct {
	IDs       []string         `json:"ids"`
	Documents []string         `json:"documents"`
	Metadatas []map[string]any `json:"metadatas"`
}

// Get fetches chunks by exact ids or by metadata filter.
func (c *ChromaClient) Get(ctx context.Context, collectionID string, ids []string, where map[string]any, include []string) (*GetResult, error) {
	body := getRequest{
		IDs:     ids,
		Where:   where,
		Include: include,
	}
	var out GetResult
	if err := c.post(ctx, "/api/v1/collections/"+collectionID+"/get", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *ChromaClient) post(ctx context.Context, path string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("chroma request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chroma %s: status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
