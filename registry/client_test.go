package registry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gapbbong/survey-1cl/config"
	"github.com/gapbbong/survey-1cl/model"
	"github.com/gapbbong/survey-1cl/registry"
)

func newClient(t *testing.T, handler http.Handler) *registry.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return registry.New(config.Config{RegistryUrl: srv.URL})
}

func TestLookupFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/10101", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(registry.Student{Name: "김예시", Ref: "stu_001"})
	})
	mux.HandleFunc("/api/students/10101/records/latest", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"code": "not_found"})
	})

	student, password, err := newClient(t, mux).Lookup(context.Background(), "10101")
	require.NoError(t, err)
	assert.Equal(t, "김예시", student.Name)
	assert.Equal(t, "stu_001", student.Ref)
	assert.Empty(t, password)
}

func TestLookupStoredPassword(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/students/10101", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(registry.Student{Name: "김예시", Ref: "stu_001"})
	})
	mux.HandleFunc("/api/students/10101/records/latest", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"password": "apple"})
	})

	_, password, err := newClient(t, mux).Lookup(context.Background(), "10101")
	require.NoError(t, err)
	assert.Equal(t, "apple", password)
}

func TestLookupNotFound(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"code": "not_found"})
	}))

	_, _, err := client.Lookup(context.Background(), "10101")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestLookupTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on
	client := registry.New(config.Config{RegistryUrl: srv.URL})

	_, _, err := client.Lookup(context.Background(), "10101")
	assert.ErrorIs(t, err, registry.ErrTransport)
}

func TestInsertRecordCodes(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"duplicate", registry.ErrDuplicate},
		{"schema_mismatch", registry.ErrSchemaMismatch},
		{"bad_reference", registry.ErrBadReference},
	}
	for _, tt := range tests {
		client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			json.NewEncoder(w).Encode(map[string]string{"code": tt.code})
		}))
		err := client.InsertRecord(context.Background(), "stu_001", model.SubmissionPayload{"k": "v"})
		assert.ErrorIs(t, err, tt.want, "code=%s", tt.code)
	}
}

func TestInsertRecordUnknownCode(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"code": "quota_exceeded"})
	}))

	err := client.InsertRecord(context.Background(), "stu_001", model.SubmissionPayload{"k": "v"})
	var unknown *registry.UnknownCodeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "quota_exceeded", unknown.Code)
}

func TestInsertRecordNoCodeIsTransport(t *testing.T) {
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))

	err := client.InsertRecord(context.Background(), "stu_001", model.SubmissionPayload{"k": "v"})
	assert.ErrorIs(t, err, registry.ErrTransport)
}

func TestInsertRecordBody(t *testing.T) {
	var got map[string]any
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))

	payload := model.SubmissionPayload{"household": "부, 모", "enrollment_status": "재학"}
	require.NoError(t, client.InsertRecord(context.Background(), "stu_001", payload))
	assert.Equal(t, "stu_001", got["student_ref"])
	answers := got["answers"].(map[string]any)
	assert.Equal(t, "부, 모", answers["household"])
}

func TestUpdateSummary(t *testing.T) {
	called := false
	client := newClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, "/api/students/10101/summary", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	require.NoError(t, client.UpdateSummary(context.Background(), "10101", map[string]string{"phone": "010-1234-5678"}))
	assert.True(t, called)
}
