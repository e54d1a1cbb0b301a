package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/knightandthey/knightshade-email-service/internal/api"
	"github.com/knightandthey/knightshade-email-service/internal/service"
	"github.com/knightandthey/knightshade-email-service/internal/store"
	"github.com/knightandthey/knightshade-email-service/pkg/mailer"
)

type memLogStore struct {
	mu      sync.Mutex
	records map[string]store.EmailLog
	order   []string
}

func newMemLogStore() *memLogStore {
	return &memLogStore{records: make(map[string]store.EmailLog)}
}

func (m *memLogStore) Insert(_ context.Context, log *store.EmailLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[log.ID] = *log
	m.order = append(m.order, log.ID)
	return nil
}

func (m *memLogStore) MarkSent(_ context.Context, id, providerMessageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.Status = store.StatusSent
	rec.ProviderMessageID = providerMessageID
	m.records[id] = rec
	return nil
}

func (m *memLogStore) MarkFailed(_ context.Context, id, errMsg string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.records[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.Status = store.StatusFailed
	rec.Error = errMsg
	m.records[id] = rec
	return nil
}

func (m *memLogStore) List(_ context.Context, limit int64) ([]store.EmailLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []store.EmailLog
	for i := len(m.order) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, m.records[m.order[i]])
	}
	return out, nil
}

type memTemplateStore struct {
	mu    sync.Mutex
	items map[string]store.CustomTemplate
}

func newMemTemplateStore() *memTemplateStore {
	return &memTemplateStore{items: make(map[string]store.CustomTemplate)}
}

func (m *memTemplateStore) Insert(_ context.Context, tpl *store.CustomTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[tpl.ID]; ok {
		return store.ErrDuplicateID
	}
	m.items[tpl.ID] = *tpl
	return nil
}

func (m *memTemplateStore) Get(_ context.Context, id string) (store.CustomTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tpl, ok := m.items[id]
	if !ok {
		return store.CustomTemplate{}, store.ErrNotFound
	}
	return tpl, nil
}

func (m *memTemplateStore) List(_ context.Context) ([]store.CustomTemplate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]store.CustomTemplate, 0, len(m.items))
	for _, tpl := range m.items {
		out = append(out, tpl)
	}
	return out, nil
}

func (m *memTemplateStore) Update(_ context.Context, tpl *store.CustomTemplate) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[tpl.ID]; !ok {
		return store.ErrNotFound
	}
	m.items[tpl.ID] = *tpl
	return nil
}

func (m *memTemplateStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

type memUnsubscribeStore struct {
	mu     sync.Mutex
	emails map[string]string
}

func newMemUnsubscribeStore() *memUnsubscribeStore {
	return &memUnsubscribeStore{emails: make(map[string]string)}
}

func (m *memUnsubscribeStore) Upsert(_ context.Context, email, source string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.emails[email] = source
	return nil
}

func (m *memUnsubscribeStore) IsUnsubscribed(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.emails[email]
	return ok, nil
}

type memSender struct {
	err error
}

func (m *memSender) Send(_ context.Context, msg mailer.Message) (mailer.Receipt, error) {
	if m.err != nil {
		return mailer.Receipt{}, m.err
	}
	return mailer.Receipt{ProviderID: "pm-test"}, nil
}

type testEnv struct {
	server    *httptest.Server
	logs      *memLogStore
	templates *memTemplateStore
	unsubs    *memUnsubscribeStore
	sender    *memSender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		logs:      newMemLogStore(),
		templates: newMemTemplateStore(),
		unsubs:    newMemUnsubscribeStore(),
		sender:    &memSender{},
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := api.Router(api.Dependencies{
		Send:        service.NewSendService(env.logs, env.unsubs, env.sender, "noreply@example.com", log),
		Preview:     service.NewPreviewService(),
		Templates:   service.NewTemplateService(env.templates),
		Transfer:    service.NewTransferService(env.templates),
		Unsubscribe: service.NewUnsubscribeService(env.unsubs),
		Logger:      log,
	})

	env.server = httptest.NewServer(router)
	t.Cleanup(env.server.Close)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) (*http.Response, api.JSONResponse) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, e.server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var envelope api.JSONResponse
	if resp.Header.Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	}
	return resp, envelope
}

func dataAs(t *testing.T, data, v any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}

func TestHealth(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, _ := env.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListBuiltinTemplates(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)
	resp, envelope := env.do(t, http.MethodGet, "/api/templates/builtin", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var infos []map[string]any
	dataAs(t, envelope.Data, &infos)
	assert.Len(t, infos, 4)
	assert.Equal(t, "welcome", infos[0]["id"])
}

func TestListComponents(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	t.Run("full catalog", func(t *testing.T) {
		t.Parallel()

		resp, envelope := env.do(t, http.MethodGet, "/api/components", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []map[string]any
		dataAs(t, envelope.Data, &entries)
		assert.NotEmpty(t, entries)
	})

	t.Run("filtered by category", func(t *testing.T) {
		t.Parallel()

		resp, envelope := env.do(t, http.MethodGet, "/api/components?category=layout", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var entries []map[string]any
		dataAs(t, envelope.Data, &entries)
		require.NotEmpty(t, entries)
		for _, e := range entries {
			assert.Equal(t, "layout", e["category"])
		}
	})
}

func TestSendBuiltin(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, envelope := env.do(t, http.MethodPost, "/api/send", map[string]any{
			"to":         "user@example.com",
			"subject":    "Welcome aboard",
			"templateId": "welcome",
			"variables":  map[string]string{"name": "Ada"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.SendResult
		dataAs(t, envelope.Data, &result)
		assert.Equal(t, store.StatusSent, result.Status)
		assert.Equal(t, "pm-test", result.ProviderMessageID)
		assert.NotEmpty(t, result.LogID)
	})

	t.Run("unknown template", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, envelope := env.do(t, http.MethodPost, "/api/send", map[string]any{
			"to":         "user@example.com",
			"subject":    "Hi",
			"templateId": "nope",
		})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "not_found", envelope.Error.Code)
	})

	t.Run("delivery failure returns 502 with the failed result", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		env.sender.err = errors.New("provider down")

		resp, envelope := env.do(t, http.MethodPost, "/api/send", map[string]any{
			"to":         "user@example.com",
			"subject":    "Hi",
			"templateId": "welcome",
		})
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)

		require.NotNil(t, envelope.Error)
		assert.Equal(t, "delivery_failed", envelope.Error.Code)
		assert.Contains(t, envelope.Error.Message, "provider down")

		var result service.SendResult
		dataAs(t, envelope.Data, &result)
		assert.Equal(t, store.StatusFailed, result.Status)
		assert.NotEmpty(t, result.LogID)
	})

	t.Run("missing recipient", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, envelope := env.do(t, http.MethodPost, "/api/send", map[string]any{
			"subject":    "Hi",
			"templateId": "welcome",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "bad_request", envelope.Error.Code)
	})

	t.Run("unknown json field", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, _ := env.do(t, http.MethodPost, "/api/send", map[string]any{
			"to":         "user@example.com",
			"subject":    "Hi",
			"templateId": "welcome",
			"surprise":   true,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("missing content type", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		req, err := http.NewRequest(http.MethodPost, env.server.URL+"/api/send",
			bytes.NewReader([]byte(`{"to":"user@example.com"}`)))
		require.NoError(t, err)

		resp, err := env.server.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestSendCustom(t *testing.T) {
	t.Parallel()

	t.Run("html mode", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, envelope := env.do(t, http.MethodPost, "/api/send/custom", map[string]any{
			"to":      "user@example.com",
			"subject": "Hi",
			"mode":    "html",
			"content": "<p>Hello {name}</p>",
			"variables": map[string]string{
				"name": "Ada",
			},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var result service.SendResult
		dataAs(t, envelope.Data, &result)
		assert.Equal(t, store.StatusSent, result.Status)
	})

	t.Run("react mode is rejected", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, envelope := env.do(t, http.MethodPost, "/api/send/custom", map[string]any{
			"to":      "user@example.com",
			"subject": "Hi",
			"mode":    "react",
			"content": "<App/>",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "unprocessable_entity", envelope.Error.Code)
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	t.Run("elements", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, envelope := env.do(t, http.MethodPost, "/api/preview", map[string]any{
			"elements": []map[string]any{
				{"id": "1", "type": "heading", "props": map[string]string{"title": "Draft"}},
			},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var preview struct {
			HTML string `json:"html"`
		}
		dataAs(t, envelope.Data, &preview)
		assert.Contains(t, preview.HTML, "Draft")
	})

	t.Run("builtin template", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, envelope := env.do(t, http.MethodPost, "/api/preview", map[string]any{
			"templateId": "welcome",
			"variables":  map[string]string{"name": "Ada"},
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var preview struct {
			HTML string `json:"html"`
		}
		dataAs(t, envelope.Data, &preview)
		assert.Contains(t, preview.HTML, "Welcome, Ada!")
	})

	t.Run("empty payload", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, _ := env.do(t, http.MethodPost, "/api/preview", map[string]any{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestTemplateCRUD(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	resp, envelope := env.do(t, http.MethodPost, "/api/templates", map[string]any{
		"name":    "Digest",
		"type":    "html",
		"content": "<p>Hello {name}</p>",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var created store.CustomTemplate
	dataAs(t, envelope.Data, &created)
	require.NotEmpty(t, created.ID)

	resp, envelope = env.do(t, http.MethodGet, "/api/templates/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope = env.do(t, http.MethodPut, "/api/templates/"+created.ID, map[string]any{
		"name":    "Digest v2",
		"type":    "html",
		"content": "<p>Hi {name}</p>",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var updated store.CustomTemplate
	dataAs(t, envelope.Data, &updated)
	assert.Equal(t, "Digest v2", updated.Name)
	assert.Equal(t, created.ID, updated.ID)

	resp, _ = env.do(t, http.MethodDelete, "/api/templates/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, envelope = env.do(t, http.MethodGet, "/api/templates/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "not_found", envelope.Error.Code)
}

func TestExportImport(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	resp, _ := env.do(t, http.MethodPost, "/api/templates", map[string]any{
		"name":    "Digest",
		"type":    "html",
		"content": "<p>Hello</p>",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, envelope := env.do(t, http.MethodGet, "/api/templates/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var bundle service.ExportBundle
	dataAs(t, envelope.Data, &bundle)
	assert.Equal(t, service.ExportVersion, bundle.Version)
	require.Len(t, bundle.Templates, 1)

	// Re-importing the bundle without overwrite skips the existing record.
	resp, envelope = env.do(t, http.MethodPost, "/api/templates/import", map[string]any{
		"version":    bundle.Version,
		"exportDate": bundle.ExportDate,
		"templates":  bundle.Templates,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var report service.ImportReport
	dataAs(t, envelope.Data, &report)
	assert.Zero(t, report.Imported)
	assert.Equal(t, 1, report.Skipped)
}

func TestHistoryEndpoint(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	for i := 0; i < 2; i++ {
		resp, _ := env.do(t, http.MethodPost, "/api/send", map[string]any{
			"to":         "user@example.com",
			"subject":    "Hi",
			"templateId": "welcome",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	t.Run("lists records", func(t *testing.T) {
		resp, envelope := env.do(t, http.MethodGet, "/api/history", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var logs []store.EmailLog
		dataAs(t, envelope.Data, &logs)
		assert.Len(t, logs, 2)
	})

	t.Run("rejects non-numeric limit", func(t *testing.T) {
		resp, _ := env.do(t, http.MethodGet, "/api/history?limit=abc", nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestUnsubscribe(t *testing.T) {
	t.Parallel()

	t.Run("post records the opt-out", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, _ := env.do(t, http.MethodPost, "/unsubscribe", map[string]any{
			"email":  "User@Example.com",
			"source": "link",
		})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		unsubscribed, err := env.unsubs.IsUnsubscribed(context.Background(), "user@example.com")
		require.NoError(t, err)
		assert.True(t, unsubscribed)
	})

	t.Run("get renders a confirmation page", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, _ := env.do(t, http.MethodGet, "/unsubscribe?email=user%40example.com", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
	})

	t.Run("invalid address", func(t *testing.T) {
		t.Parallel()

		env := newTestEnv(t)
		resp, _ := env.do(t, http.MethodPost, "/unsubscribe", map[string]any{"email": "nope"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
