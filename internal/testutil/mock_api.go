// Package testutil provides testing utilities for the Bonusly client.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
)

// PageRequest records the pagination parameters of one collection
// fetch.
type PageRequest struct {
	Skip  int
	Limit int
}

// MockAPI is a configurable mock Bonusly server. Every response it
// produces is wrapped in the standard success/failure envelope unless
// a raw handler or status override is installed.
type MockAPI struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]http.HandlerFunc

	// Tracking
	requestCount      int
	lastRequestHeader http.Header
	pageRequests      map[string][]PageRequest
}

// NewMockAPI creates a new mock Bonusly server.
func NewMockAPI() *MockAPI {
	mock := &MockAPI{
		handlers:     make(map[string]http.HandlerFunc),
		pageRequests: make(map[string][]PageRequest),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.lastRequestHeader = r.Header.Clone()
		mock.mu.Unlock()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		WriteFailure(w, "not found")
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockAPI) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockAPI) Close() {
	m.server.Close()
}

// Reset clears all tracking state.
func (m *MockAPI) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.lastRequestHeader = nil
	m.pageRequests = make(map[string][]PageRequest)
}

// SetHandler installs a raw handler for a path.
func (m *MockAPI) SetHandler(path string, handler http.HandlerFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResult configures a path to answer with a success envelope
// wrapping result.
func (m *MockAPI) SetResult(path string, result any) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		WriteSuccess(w, result)
	})
}

// SetFailure configures a path to answer 200 with a failure envelope.
func (m *MockAPI) SetFailure(path string, message string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		WriteFailure(w, message)
	})
}

// SetStatus configures a path to answer with a bare HTTP status and
// body, bypassing the envelope.
func (m *MockAPI) SetStatus(path string, code int, body string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(code)
		if body != "" {
			w.Write([]byte(body))
		}
	})
}

// SetCollection configures a paginated collection endpoint with total
// items produced by makeItem. The handler honors skip/limit, records
// every page request, and answers an empty page past the end.
func (m *MockAPI) SetCollection(path string, total int, makeItem func(i int) any) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
		if err != nil || limit < 1 {
			WriteFailure(w, fmt.Sprintf("invalid limit %q", r.URL.Query().Get("limit")))
			return
		}

		m.mu.Lock()
		m.pageRequests[path] = append(m.pageRequests[path], PageRequest{Skip: skip, Limit: limit})
		m.mu.Unlock()

		items := make([]any, 0, limit)
		for i := skip; i < total && i < skip+limit; i++ {
			items = append(items, makeItem(i))
		}
		WriteSuccess(w, items)
	})
}

// PageRequests returns the recorded page requests for a collection
// path, in order.
func (m *MockAPI) PageRequests(path string) []PageRequest {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]PageRequest(nil), m.pageRequests[path]...)
}

// RequestCount returns the number of requests made to the server.
func (m *MockAPI) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// LastRequestHeader returns the headers of the most recent request.
func (m *MockAPI) LastRequestHeader() http.Header {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastRequestHeader
}

// WriteSuccess writes a success envelope wrapping result.
func WriteSuccess(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string]any{
		"success": true,
		"result":  result,
	})
}

// WriteFailure writes a failure envelope with a message.
func WriteFailure(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}
