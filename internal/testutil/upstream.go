package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

// FakeCommerceAPI is an httptest-backed stand-in for the commerce API.
// Tests seed raw response documents, point the upstream client at URL()
// and assert on the requests recorded here.
type FakeCommerceAPI struct {
	t      *testing.T
	server *httptest.Server

	mu            sync.Mutex
	orders        []map[string]interface{}
	users         []map[string]interface{}
	brands        []map[string]interface{}
	categories    []map[string]interface{}
	failures      map[string]string
	requests      []RecordedRequest
	requireBearer string
}

type RecordedRequest struct {
	Method string
	Path   string
	Body   map[string]interface{}
}

func NewFakeCommerceAPI(t *testing.T) *FakeCommerceAPI {
	f := &FakeCommerceAPI{t: t, failures: make(map[string]string)}
	f.server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.server.Close)
	return f
}

func (f *FakeCommerceAPI) URL() string { return f.server.URL }

// SeedOrders sets the documents served by /api/order/list.
func (f *FakeCommerceAPI) SeedOrders(orders ...map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = orders
}

// SeedUsers sets the documents served by /api/user/users.
func (f *FakeCommerceAPI) SeedUsers(users ...map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users = users
}

// SeedBrands sets the documents served by /api/brand.
func (f *FakeCommerceAPI) SeedBrands(brands ...map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brands = brands
}

// SeedCategories sets the documents served by /api/category.
func (f *FakeCommerceAPI) SeedCategories(categories ...map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.categories = categories
}

// FailPath makes one endpoint answer success:false with the given message.
func (f *FakeCommerceAPI) FailPath(path, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failures[path] = message
}

// RequireBearer makes every endpoint reject requests without this token.
func (f *FakeCommerceAPI) RequireBearer(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requireBearer = token
}

// Requests returns a copy of everything the fake has received.
func (f *FakeCommerceAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]RecordedRequest, len(f.requests))
	copy(out, f.requests)
	return out
}

// RequestCount counts received requests for one path.
func (f *FakeCommerceAPI) RequestCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.requests {
		if r.Path == path {
			n++
		}
	}
	return n
}

func (f *FakeCommerceAPI) handle(w http.ResponseWriter, r *http.Request) {
	var body map[string]interface{}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	f.mu.Lock()
	f.requests = append(f.requests, RecordedRequest{Method: r.Method, Path: r.URL.Path, Body: body})
	failure, failed := f.failures[r.URL.Path]
	orders := f.orders
	users := f.users
	brands := f.brands
	categories := f.categories
	bearer := f.requireBearer
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if bearer != "" && r.Header.Get("Authorization") != "Bearer "+bearer {
		writeJSON(w, map[string]interface{}{"success": false, "message": "Not authorized"})
		return
	}

	if failed {
		writeJSON(w, map[string]interface{}{"success": false, "message": failure})
		return
	}

	switch r.URL.Path {
	case "/api/order/list":
		writeJSON(w, map[string]interface{}{"success": true, "orders": nonNil(orders)})
	case "/api/user/users":
		writeJSON(w, map[string]interface{}{"success": true, "users": nonNil(users)})
	case "/api/brand":
		if r.Method == http.MethodGet {
			writeJSON(w, map[string]interface{}{"success": true, "brands": nonNil(brands)})
			return
		}
		writeJSON(w, map[string]interface{}{"success": true})
	case "/api/category":
		if r.Method == http.MethodGet {
			writeJSON(w, map[string]interface{}{"success": true, "categories": nonNil(categories)})
			return
		}
		writeJSON(w, map[string]interface{}{"success": true})
	case "/api/user/profile":
		writeJSON(w, map[string]interface{}{"success": true, "user": map[string]interface{}{
			"_id": "admin-1", "name": "Admin", "email": "admin@example.com", "role": "admin",
		}})
	default:
		// Mutations and catalog writes acknowledge without state.
		writeJSON(w, map[string]interface{}{"success": true})
	}
}

func nonNil(docs []map[string]interface{}) []map[string]interface{} {
	if docs == nil {
		return []map[string]interface{}{}
	}
	return docs
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	_ = json.NewEncoder(w).Encode(data)
}
