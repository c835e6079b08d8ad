// Package docintel calls the external AI document-analysis service that
// infers furniture lists and floor/room-type matrices from uploaded files.
// The flow mirrors the service's file API: upload the document, poll until it
// is processed, then prompt for a structured JSON answer.
package docintel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"furnishing-portal-backend/internal/config"
	apperrors "furnishing-portal-backend/internal/errors"
)

// FurnitureItem is one {label, count} pair extracted from a floor plan.
type FurnitureItem struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// FloorCount is one floor cell of an extracted room-type matrix.
type FloorCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RoomTypeRow is one row of an extracted room-type × floor matrix.
type RoomTypeRow struct {
	Name   string       `json:"name"`
	Total  int          `json:"total"`
	Floors []FloorCount `json:"floors"`
}

type furnitureResponse struct {
	Furniture []FurnitureItem `json:"furniture"`
}

type roomMatrixResponse struct {
	Room []RoomTypeRow `json:"room"`
}

// remoteFile is the service's handle for an uploaded document.
type remoteFile struct {
	Name     string `json:"name"`
	URI      string `json:"uri"`
	MimeType string `json:"mimeType"`
	State    string `json:"state"`
}

const (
	stateProcessing = "PROCESSING"
	stateActive     = "ACTIVE"
)

// Client talks to the document intelligence service. Analysis is slow:
// uploaded files may take seconds to minutes to become usable, so both parse
// calls block through an upload → poll → prompt cycle.
type Client struct {
	baseURL        string
	apiKey         string
	furnitureModel string
	floorModel     string
	pollInterval   time.Duration
	prompts        *config.Prompts
	httpClient     *http.Client
}

// NewClient creates a document intelligence client from configuration.
func NewClient(cfg *config.Config, prompts *config.Prompts) *Client {
	interval := time.Duration(cfg.DocIntelPollSeconds) * time.Second
	if interval <= 0 {
		interval = 10 * time.Second
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.DocIntelBaseURL, "/"),
		apiKey:         cfg.DocIntelAPIKey,
		furnitureModel: cfg.DocIntelFurnitureModel,
		floorModel:     cfg.DocIntelFloorModel,
		pollInterval:   interval,
		prompts:        prompts,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// ParseFurniture analyzes a room floor-plan PDF and returns the furniture
// identified in it. Malformed or missing JSON in the reply is a hard error.
func (c *Client) ParseFurniture(ctx context.Context, fileURL, fileName string) ([]FurnitureItem, error) {
	text, err := c.analyze(ctx, c.furnitureModel, fileURL, fileName, "application/pdf", c.prompts.Furniture)
	if err != nil {
		return nil, err
	}

	var parsed furnitureResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNoJSONInResponse, err)
	}
	if parsed.Furniture == nil {
		return nil, apperrors.ErrInvalidFurnitureShape
	}
	return parsed.Furniture, nil
}

// ParseFloorMapping analyzes a room-mix image and returns the room-type ×
// floor matrix it describes. The image MIME type is derived from the URL
// extension.
func (c *Client) ParseFloorMapping(ctx context.Context, fileURL, fileName string) ([]RoomTypeRow, error) {
	mimeType := "image/" + extension(fileURL)
	text, err := c.analyze(ctx, c.floorModel, fileURL, fileName, mimeType, c.prompts.FloorMapping)
	if err != nil {
		return nil, err
	}

	var parsed roomMatrixResponse
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrNoJSONInResponse, err)
	}
	if parsed.Room == nil {
		return nil, apperrors.ErrInvalidRoomMatrixShape
	}
	return parsed.Room, nil
}

// analyze runs the full upload → poll → prompt cycle and returns the JSON
// object extracted from the model's reply.
func (c *Client) analyze(ctx context.Context, model, fileURL, fileName, mimeType, prompt string) (string, error) {
	if c.apiKey == "" {
		return "", apperrors.ErrDocIntelAPIKeyNotSet
	}

	data, err := c.fetchSource(ctx, fileURL)
	if err != nil {
		return "", err
	}

	file, err := c.uploadFile(ctx, data, mimeType, fileName)
	if err != nil {
		return "", err
	}

	file, err = c.waitForActive(ctx, file)
	if err != nil {
		return "", err
	}

	reply, err := c.generate(ctx, model, file, prompt)
	if err != nil {
		return "", err
	}

	return extractJSON(reply)
}

// fetchSource downloads the document bytes from the stored public URL.
func (c *Client) fetchSource(ctx context.Context, fileURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build source request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("document intelligence", fmt.Sprintf("fetch file from %s: %v", fileURL, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalError("document intelligence", fmt.Sprintf("fetch file from %s: status %d", fileURL, resp.StatusCode))
	}
	return io.ReadAll(resp.Body)
}

// uploadFile pushes raw bytes to the service's file API.
func (c *Client) uploadFile(ctx context.Context, data []byte, mimeType, displayName string) (*remoteFile, error) {
	uploadURL := fmt.Sprintf("%s/upload/v1beta/files?key=%s", c.baseURL, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", mimeType)
	req.Header.Set("X-Goog-Upload-Protocol", "raw")
	req.Header.Set("X-Goog-File-Name", displayName)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("document intelligence", fmt.Sprintf("upload file: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apperrors.NewExternalError("document intelligence", fmt.Sprintf("upload file: status %d: %s", resp.StatusCode, string(body)))
	}

	var wrapper struct {
		File remoteFile `json:"file"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&wrapper); err != nil {
		return nil, fmt.Errorf("decode upload response: %w", err)
	}
	return &wrapper.File, nil
}

// waitForActive polls the file state until processing finishes. Files that
// end in any state other than ACTIVE are a hard failure.
func (c *Client) waitForActive(ctx context.Context, file *remoteFile) (*remoteFile, error) {
	current := file
	for current.State == stateProcessing {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.pollInterval):
		}

		refreshed, err := c.getFile(ctx, current.Name)
		if err != nil {
			return nil, err
		}
		current = refreshed
	}
	if current.State != stateActive {
		return nil, fmt.Errorf("%w: file %s is %s", apperrors.ErrFileProcessingFailed, current.Name, current.State)
	}
	return current, nil
}

func (c *Client) getFile(ctx context.Context, name string) (*remoteFile, error) {
	getURL := fmt.Sprintf("%s/v1beta/%s?key=%s", c.baseURL, name, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, getURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build file status request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewExternalError("document intelligence", fmt.Sprintf("get file %s: %v", name, err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.NewExternalError("document intelligence", fmt.Sprintf("get file %s: status %d", name, resp.StatusCode))
	}

	var file remoteFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, fmt.Errorf("decode file status: %w", err)
	}
	return &file, nil
}

// generate prompts the model with the uploaded file and returns the raw
// reply text.
func (c *Client) generate(ctx context.Context, model string, file *remoteFile, prompt string) (string, error) {
	payload := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"file_data": map[string]string{"mime_type": file.MimeType, "file_uri": file.URI}},
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"responseMimeType": "application/json",
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal generate request: %w", err)
	}

	genURL := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, genURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.NewExternalError("document intelligence", fmt.Sprintf("generate: %v", err))
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", apperrors.NewExternalError("document intelligence", fmt.Sprintf("generate: status %d: %s", resp.StatusCode, string(respBody)))
	}

	var reply struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if len(reply.Candidates) == 0 || len(reply.Candidates[0].Content.Parts) == 0 {
		return "", apperrors.ErrNoJSONInResponse
	}
	return reply.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSON pulls the outermost JSON object out of a model reply, which
// may wrap it in prose or code fences.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", apperrors.ErrNoJSONInResponse
	}
	return text[start : end+1], nil
}

func extension(fileURL string) string {
	if cut := strings.IndexAny(fileURL, "?#"); cut != -1 {
		fileURL = fileURL[:cut]
	}
	idx := strings.LastIndex(fileURL, ".")
	if idx == -1 || idx == len(fileURL)-1 {
		return "png"
	}
	return strings.ToLower(fileURL[idx+1:])
}
