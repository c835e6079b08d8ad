package docintel_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"furnishing-portal-backend/internal/config"
	"furnishing-portal-backend/internal/docintel"
	apperrors "furnishing-portal-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	mu            *httptest.Server
	fileState     string
	pollResponses []string
	pollCalls     int
	replyText     string
	uploadedMime  string
	generateBody  map[string]interface{}
}

func newFakeService(t *testing.T, replyText string) *fakeService {
	f := &fakeService{fileState: "ACTIVE", replyText: replyText}

	mux := http.NewServeMux()
	mux.HandleFunc("/source/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("%PDF-1.4 fake document"))
	})
	mux.HandleFunc("/upload/v1beta/files", func(w http.ResponseWriter, r *http.Request) {
		f.uploadedMime = r.Header.Get("Content-Type")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"file": map[string]string{
				"name":     "files/abc123",
				"uri":      f.mu.URL + "/files/abc123",
				"mimeType": r.Header.Get("Content-Type"),
				"state":    f.fileState,
			},
		})
	})
	mux.HandleFunc("/v1beta/files/abc123", func(w http.ResponseWriter, r *http.Request) {
		state := "ACTIVE"
		if f.pollCalls < len(f.pollResponses) {
			state = f.pollResponses[f.pollCalls]
		}
		f.pollCalls++
		json.NewEncoder(w).Encode(map[string]string{
			"name":     "files/abc123",
			"uri":      f.mu.URL + "/files/abc123",
			"mimeType": "application/pdf",
			"state":    state,
		})
	})
	mux.HandleFunc("/v1beta/models/", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&f.generateBody)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": f.replyText}},
				}},
			},
		})
	})

	f.mu = httptest.NewServer(mux)
	t.Cleanup(f.mu.Close)
	return f
}

func (f *fakeService) client() *docintel.Client {
	cfg := &config.Config{
		DocIntelBaseURL:        f.mu.URL,
		DocIntelAPIKey:         "test-key",
		DocIntelFurnitureModel: "model-a",
		DocIntelFloorModel:     "model-b",
		DocIntelPollSeconds:    1,
	}
	prompts := &config.Prompts{
		Furniture:    "list the furniture",
		FloorMapping: "list the room mix",
	}
	return docintel.NewClient(cfg, prompts)
}

func TestParseFurniture_Success(t *testing.T) {
	f := newFakeService(t, `{"furniture": [{"type": "Sofa", "count": 2}, {"type": "Desk", "count": 1}]}`)
	client := f.client()

	items, err := client.ParseFurniture(context.Background(), f.mu.URL+"/source/plan.pdf", "plan.pdf")

	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Sofa", items[0].Type)
	assert.Equal(t, 2, items[0].Count)
	assert.Equal(t, "application/pdf", f.uploadedMime)
}

func TestParseFurniture_ExtractsJSONFromProse(t *testing.T) {
	f := newFakeService(t, "Here is the result:\n```json\n{\"furniture\": [{\"type\": \"Bed\", \"count\": 1}]}\n```")
	client := f.client()

	items, err := client.ParseFurniture(context.Background(), f.mu.URL+"/source/plan.pdf", "plan.pdf")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Bed", items[0].Type)
}

func TestParseFurniture_EmptyListIsValid(t *testing.T) {
	f := newFakeService(t, `{"furniture": []}`)
	client := f.client()

	items, err := client.ParseFurniture(context.Background(), f.mu.URL+"/source/plan.pdf", "plan.pdf")

	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestParseFurniture_MissingArrayIsHardError(t *testing.T) {
	f := newFakeService(t, `{"something_else": true}`)
	client := f.client()

	_, err := client.ParseFurniture(context.Background(), f.mu.URL+"/source/plan.pdf", "plan.pdf")

	assert.ErrorIs(t, err, apperrors.ErrInvalidFurnitureShape)
}

func TestParseFurniture_NoJSONInReply(t *testing.T) {
	f := newFakeService(t, "I could not find any furniture in this document.")
	client := f.client()

	_, err := client.ParseFurniture(context.Background(), f.mu.URL+"/source/plan.pdf", "plan.pdf")

	assert.ErrorIs(t, err, apperrors.ErrNoJSONInResponse)
}

func TestParseFurniture_NoAPIKey(t *testing.T) {
	client := docintel.NewClient(&config.Config{DocIntelBaseURL: "http://localhost"}, &config.Prompts{})

	_, err := client.ParseFurniture(context.Background(), "http://localhost/x.pdf", "x.pdf")

	assert.ErrorIs(t, err, apperrors.ErrDocIntelAPIKeyNotSet)
}

func TestParseFurniture_PollsUntilActive(t *testing.T) {
	f := newFakeService(t, `{"furniture": []}`)
	f.fileState = "PROCESSING"
	f.pollResponses = []string{"PROCESSING", "ACTIVE"}
	client := f.client()

	_, err := client.ParseFurniture(context.Background(), f.mu.URL+"/source/plan.pdf", "plan.pdf")

	require.NoError(t, err)
	assert.Equal(t, 2, f.pollCalls)
}

func TestParseFurniture_FailedProcessingIsHardError(t *testing.T) {
	f := newFakeService(t, `{"furniture": []}`)
	f.fileState = "PROCESSING"
	f.pollResponses = []string{"FAILED"}
	client := f.client()

	_, err := client.ParseFurniture(context.Background(), f.mu.URL+"/source/plan.pdf", "plan.pdf")

	assert.ErrorIs(t, err, apperrors.ErrFileProcessingFailed)
}

func TestParseFloorMapping_Success(t *testing.T) {
	f := newFakeService(t, `{"room": [{"name": "Double Room", "total": 8, "floors": [{"name": "2F", "count": 3}, {"name": "3F", "count": 5}]}]}`)
	client := f.client()

	rows, err := client.ParseFloorMapping(context.Background(), f.mu.URL+"/source/mix.png", "mix.png")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Double Room", rows[0].Name)
	assert.Equal(t, 8, rows[0].Total)
	require.Len(t, rows[0].Floors, 2)
	assert.Equal(t, "image/png", f.uploadedMime)
}

func TestParseFloorMapping_QueryStringDoesNotLeakIntoMimeType(t *testing.T) {
	f := newFakeService(t, `{"room": []}`)
	client := f.client()

	_, err := client.ParseFloorMapping(context.Background(), f.mu.URL+"/source/mix.png?token=abc", "mix.png")

	require.NoError(t, err)
	assert.Equal(t, "image/png", f.uploadedMime)
}

func TestParseFloorMapping_MissingArrayIsHardError(t *testing.T) {
	f := newFakeService(t, `{"furniture": []}`)
	client := f.client()

	_, err := client.ParseFloorMapping(context.Background(), f.mu.URL+"/source/mix.png", "mix.png")

	assert.ErrorIs(t, err, apperrors.ErrInvalidRoomMatrixShape)
}

func TestParseFloorMapping_RequestsJSONOutput(t *testing.T) {
	f := newFakeService(t, `{"room": []}`)
	client := f.client()

	_, err := client.ParseFloorMapping(context.Background(), f.mu.URL+"/source/mix.jpg", "mix.jpg")

	require.NoError(t, err)
	genConfig, ok := f.generateBody["generationConfig"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "application/json", genConfig["responseMimeType"])
}

func TestParseFurniture_SourceFetchFailure(t *testing.T) {
	f := newFakeService(t, `{"furniture": []}`)
	client := f.client()

	_, err := client.ParseFurniture(context.Background(), f.mu.URL+"/missing/plan.pdf", "plan.pdf")

	require.Error(t, err)
	assert.True(t, apperrors.IsExternal(err) || strings.Contains(err.Error(), "fetch"))
}
