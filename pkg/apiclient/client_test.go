package apiclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNotifier struct {
	mu        sync.Mutex
	successes []string
	errors    []string
}

func (m *mockNotifier) Success(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.successes = append(m.successes, message)
}

func (m *mockNotifier) Error(message string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors = append(m.errors, message)
}

func (m *mockNotifier) counts() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.successes), len(m.errors)
}

type payload struct {
	Value string `json:"value"`
}

func TestRequest_GetSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Equal(t, "/items/42", r.URL.Path)
		w.Write([]byte(`{"value": "ok"}`))
	}))
	defer srv.Close()

	notifier := &mockNotifier{}
	c := New(srv.URL, 0, notifier)

	out, err := Request[payload](context.Background(), c, Options{
		Endpoint:   "/items",
		PathParams: "/42",
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Value)

	// GET outcomes are silent either way.
	successes, errs := notifier.counts()
	assert.Zero(t, successes)
	assert.Zero(t, errs)
}

// TestRequest_GetFailureIsSilent pins the GET/mutating asymmetry: a failed
// GET rejects without any notification side effect.
func TestRequest_GetFailureIsSilent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	notifier := &mockNotifier{}
	c := New(srv.URL, 0, notifier)

	_, err := Request[payload](context.Background(), c, Options{Endpoint: "/items"})
	require.Error(t, err)

	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)

	successes, errs := notifier.counts()
	assert.Zero(t, successes)
	assert.Zero(t, errs)
}

func TestRequest_PostFailureNotifiesOnce(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer srv.Close()

	notifier := &mockNotifier{}
	c := New(srv.URL, 0, notifier)

	_, err := Request[payload](context.Background(), c, Options{
		Endpoint: "/items",
		Method:   http.MethodPost,
		Body:     payload{Value: "x"},
	})
	require.Error(t, err)

	successes, errs := notifier.counts()
	assert.Zero(t, successes)
	assert.Equal(t, 1, errs)
}

func TestRequest_PostSuccessNotifies(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"value": "created"}`))
	}))
	defer srv.Close()

	notifier := &mockNotifier{}
	c := New(srv.URL, 0, notifier)

	out, err := Request[payload](context.Background(), c, Options{
		Endpoint: "/items",
		Method:   http.MethodPost,
		Body:     payload{Value: "x"},
	})
	require.NoError(t, err)
	assert.Equal(t, "created", out.Value)

	successes, errs := notifier.counts()
	assert.Equal(t, 1, successes)
	assert.Zero(t, errs)
}

func TestRequest_DecodeError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := New(srv.URL, 0, nil)

	_, err := Request[payload](context.Background(), c, Options{Endpoint: "/items"})
	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
}

// TestNew_TimeoutConfigured verifies the constructor honors the configured
// timeout: a backend slower than the budget surfaces as a NetworkError.
func TestNew_TimeoutConfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"value": "late"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, 20*time.Millisecond, nil)

	_, err := Request[payload](context.Background(), c, Options{Endpoint: "/items"})
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}

func TestNew_ZeroTimeoutFallsBackToDefault(t *testing.T) {
	c := New("http://localhost", 0, nil)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
}

// TestRequest_UnencodableBodyIsNetworkError pins the taxonomy: DecodeError
// is reserved for malformed response bodies, so a request body that cannot
// be encoded fails request construction instead.
func TestRequest_UnencodableBodyIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the backend")
	}))
	defer srv.Close()

	c := New(srv.URL, 0, nil)

	_, err := Request[payload](context.Background(), c, Options{
		Endpoint: "/items",
		Method:   http.MethodPost,
		Body:     make(chan int),
	})
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}

func TestRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // refuse connections

	c := New(srv.URL, 0, nil)

	_, err := Request[payload](context.Background(), c, Options{Endpoint: "/items"})
	var netErr *NetworkError
	require.ErrorAs(t, err, &netErr)
}
