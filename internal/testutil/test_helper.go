// Package testutil provides testing utilities and helpers.
package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"linksight/internal/catalog"
	"linksight/internal/domain"
)

// NewTestRouter creates a new Gin router for testing.
func NewTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// HTTPTestHelper provides utilities for HTTP testing.
type HTTPTestHelper struct {
	handler http.Handler
	t       *testing.T
}

// NewHTTPTestHelper creates a new HTTP test helper.
func NewHTTPTestHelper(t *testing.T, handler http.Handler) *HTTPTestHelper {
	return &HTTPTestHelper{
		handler: handler,
		t:       t,
	}
}

// Request performs an HTTP request and returns the response.
func (h *HTTPTestHelper) Request(method, url string, headers map[string]string) *httptest.ResponseRecorder {
	req, err := http.NewRequestWithContext(context.Background(), method, url, nil)
	if err != nil {
		h.t.Fatalf("Failed to create request: %v", err)
	}

	for key, value := range headers {
		req.Header.Set(key, value)
	}

	recorder := httptest.NewRecorder()
	h.handler.ServeHTTP(recorder, req)
	return recorder
}

// GET performs a GET request.
func (h *HTTPTestHelper) GET(url string, headers map[string]string) *httptest.ResponseRecorder {
	return h.Request(http.MethodGet, url, headers)
}

// Upload posts content as a multipart form file under field.
func (h *HTTPTestHelper) Upload(url, field, filename string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if field != "" {
		part, err := writer.CreateFormFile(field, filename)
		if err != nil {
			h.t.Fatalf("Failed to create form file: %v", err)
		}
		if _, err := part.Write(content); err != nil {
			h.t.Fatalf("Failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		h.t.Fatalf("Failed to close multipart writer: %v", err)
	}

	req, err := http.NewRequestWithContext(context.Background(), http.MethodPost, url, &body)
	if err != nil {
		h.t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	recorder := httptest.NewRecorder()
	h.handler.ServeHTTP(recorder, req)
	return recorder
}

// DecodeJSON unmarshals the response body into a map.
func (h *HTTPTestHelper) DecodeJSON(recorder *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		h.t.Fatalf("Failed to unmarshal response: %v\nBody: %s", err, recorder.Body.String())
	}
	return body
}

// AssertJSON asserts that the response body matches the expected JSON.
func (h *HTTPTestHelper) AssertJSON(recorder *httptest.ResponseRecorder, expected interface{}) {
	actual := h.DecodeJSON(recorder)

	expectedBytes, err := json.Marshal(expected)
	if err != nil {
		h.t.Fatalf("Failed to marshal expected response: %v", err)
	}
	var expectedMap map[string]interface{}
	if err := json.Unmarshal(expectedBytes, &expectedMap); err != nil {
		h.t.Fatalf("Failed to unmarshal expected response: %v", err)
	}

	if !jsonEqual(actual, expectedMap) {
		h.t.Errorf("Response body mismatch.\nExpected: %s\nActual: %s",
			string(expectedBytes), recorder.Body.String())
	}
}

// AssertStatus asserts that the response has the expected status code.
func (h *HTTPTestHelper) AssertStatus(recorder *httptest.ResponseRecorder, expectedStatus int) {
	h.t.Helper()
	if recorder.Code != expectedStatus {
		h.t.Errorf("Status code mismatch. Expected: %d, Actual: %d", expectedStatus, recorder.Code)
	}
}

// AssertHeader asserts that the response has the expected header value.
func (h *HTTPTestHelper) AssertHeader(recorder *httptest.ResponseRecorder, header, expectedValue string) {
	h.t.Helper()
	actualValue := recorder.Header().Get(header)
	if actualValue != expectedValue {
		h.t.Errorf("Header %s mismatch. Expected: %s, Actual: %s", header, expectedValue, actualValue)
	}
}

// MockDataset creates a dataset for testing.
func MockDataset(id, name string) *domain.Dataset {
	return &domain.Dataset{
		ID:          id,
		Name:        name,
		Description: fmt.Sprintf("%s description", name),
		IconURL:     fmt.Sprintf("/static/img/%s.png", id),
	}
}

// NewTestCatalog builds an in-memory catalog, failing the test on error.
func NewTestCatalog(t *testing.T, datasets ...*domain.Dataset) *catalog.MemoryRepository {
	t.Helper()
	repo, err := catalog.NewMemoryRepository(datasets...)
	if err != nil {
		t.Fatalf("Failed to build catalog: %v", err)
	}
	return repo
}

// jsonEqual compares two JSON objects for equality.
func jsonEqual(a, b map[string]interface{}) bool {
	aBytes, _ := json.Marshal(a)
	bBytes, _ := json.Marshal(b)
	return bytes.Equal(aBytes, bBytes)
}
