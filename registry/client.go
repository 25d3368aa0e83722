// Package registry is the HTTP client for the school's student registry:
// identity lookup, survey-record insert and the best-effort summary
// update. Calls are never retried here; every failure surfaces to the
// caller who decides what to tell the user.
package registry

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	json "github.com/goccy/go-json"
	pkgerrors "github.com/pkg/errors"

	"github.com/gapbbong/survey-1cl/config"
	"github.com/gapbbong/survey-1cl/log"
	"github.com/gapbbong/survey-1cl/model"
)

// Student is the registry's view of a verified identity.
type Student struct {
	Name string `json:"name"`
	Ref  string `json:"ref"`
}

type Client struct {
	baseUrl string
	http    *http.Client
}

func New(cfg config.Config) *Client {
	return &Client{
		baseUrl: cfg.RegistryUrl,
		http:    &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Lookup finds a student by number and fetches the password set on their
// most recent survey record, if any. The stored password is compared by
// the caller with exact string equality; the backend keeps it in the
// clear. Known gap carried over from the original design: there is no
// hashing anywhere in this flow.
func (c *Client) Lookup(ctx context.Context, num string) (Student, string, error) {
	var student Student
	err := c.get(ctx, "/api/students/"+url.PathEscape(num), &student)
	if err != nil {
		return Student{}, "", err
	}

	var record struct {
		Password string `json:"password"`
	}
	err = c.get(ctx, "/api/students/"+url.PathEscape(num)+"/records/latest", &record)
	if pkgerrors.Is(err, ErrNotFound) {
		// no prior record, nothing gating
		return student, "", nil
	}
	if err != nil {
		return Student{}, "", err
	}
	return student, record.Password, nil
}

// InsertRecord writes the full answer set for the referenced student. Its
// outcome alone decides whether the submission succeeded.
func (c *Client) InsertRecord(ctx context.Context, ref string, payload model.SubmissionPayload) error {
	body := map[string]any{
		"student_ref": ref,
		"answers":     payload,
	}
	return c.post(ctx, "/api/records", body)
}

// UpdateSummary refreshes a few denormalized fields on the student record.
// Best-effort: callers log a failure and move on.
func (c *Client) UpdateSummary(ctx context.Context, num string, summary map[string]string) error {
	return c.post(ctx, "/api/students/"+url.PathEscape(num)+"/summary", summary)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseUrl+path, nil)
	if err != nil {
		return pkgerrors.Wrap(err, "registry.request")
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return pkgerrors.Wrap(err, "registry.marshal")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseUrl+path, bytes.NewReader(data))
	if err != nil {
		return pkgerrors.Wrap(err, "registry.request")
	}
	req.Header.Set("content-type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return pkgerrors.Wrapf(ErrTransport, "%s %s: %s", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()
	log.Debugf("registry: %s %s -> %d (%s)", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return pkgerrors.Wrapf(ErrTransport, "%s %s: decode: %s", req.Method, req.URL.Path, err)
		}
		return nil
	}

	var body errorBody
	data, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(data, &body); err != nil || body.Code == "" {
		return pkgerrors.Wrapf(ErrTransport, "%s %s: status %d", req.Method, req.URL.Path, resp.StatusCode)
	}
	err = errorForCode(body.Code)
	if body.Message != "" {
		return pkgerrors.Wrap(err, body.Message)
	}
	return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
}
