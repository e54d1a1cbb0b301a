package service_test

import (
	"context"
	"sync"

	"github.com/knightandthey/knightshade-email-service/internal/store"
	"github.com/knightandthey/knightshade-email-service/pkg/mailer"
)

type fakeLogStore struct {
	mu      sync.Mutex
	records map[string]store.EmailLog
	order   []string
}

func newFakeLogStore() *fakeLogStore {
	return &fakeLogStore{records: make(map[string]store.EmailLog)}
}

func (f *fakeLogStore) Insert(_ context.Context, log *store.EmailLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.records[log.ID]; ok {
		return store.ErrDuplicateID
	}
	f.records[log.ID] = *log
	f.order = append(f.order, log.ID)
	return nil
}

func (f *fakeLogStore) MarkSent(_ context.Context, id, providerMessageID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.Status = store.StatusSent
	rec.ProviderMessageID = providerMessageID
	f.records[id] = rec
	return nil
}

func (f *fakeLogStore) MarkFailed(_ context.Context, id, errMsg string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[id]
	if !ok {
		return store.ErrNotFound
	}
	rec.Status = store.StatusFailed
	rec.Error = errMsg
	f.records[id] = rec
	return nil
}

func (f *fakeLogStore) List(_ context.Context, limit int64) ([]store.EmailLog, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store.EmailLog
	for i := len(f.order) - 1; i >= 0 && int64(len(out)) < limit; i-- {
		out = append(out, f.records[f.order[i]])
	}
	return out, nil
}

func (f *fakeLogStore) all() []store.EmailLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.EmailLog, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.records[id])
	}
	return out
}

type fakeSender struct {
	mu      sync.Mutex
	receipt mailer.Receipt
	err     error
	sent    []mailer.Message
}

func (f *fakeSender) Send(_ context.Context, msg mailer.Message) (mailer.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return mailer.Receipt{}, f.err
	}
	f.sent = append(f.sent, msg)
	return f.receipt, nil
}

func (f *fakeSender) sentMessages() []mailer.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]mailer.Message(nil), f.sent...)
}

type fakeUnsubscribeStore struct {
	mu     sync.Mutex
	emails map[string]string
}

func newFakeUnsubscribeStore() *fakeUnsubscribeStore {
	return &fakeUnsubscribeStore{emails: make(map[string]string)}
}

func (f *fakeUnsubscribeStore) Upsert(_ context.Context, email, source string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.emails[email] = source
	return nil
}

func (f *fakeUnsubscribeStore) IsUnsubscribed(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.emails[email]
	return ok, nil
}

type fakeTemplateStore struct {
	mu    sync.Mutex
	items map[string]store.CustomTemplate
}

func newFakeTemplateStore() *fakeTemplateStore {
	return &fakeTemplateStore{items: make(map[string]store.CustomTemplate)}
}

func (f *fakeTemplateStore) Insert(_ context.Context, tpl *store.CustomTemplate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[tpl.ID]; ok {
		return store.ErrDuplicateID
	}
	f.items[tpl.ID] = *tpl
	return nil
}

func (f *fakeTemplateStore) Get(_ context.Context, id string) (store.CustomTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	tpl, ok := f.items[id]
	if !ok {
		return store.CustomTemplate{}, store.ErrNotFound
	}
	return tpl, nil
}

func (f *fakeTemplateStore) List(_ context.Context) ([]store.CustomTemplate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]store.CustomTemplate, 0, len(f.items))
	for _, tpl := range f.items {
		out = append(out, tpl)
	}
	return out, nil
}

func (f *fakeTemplateStore) Update(_ context.Context, tpl *store.CustomTemplate) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[tpl.ID]; !ok {
		return store.ErrNotFound
	}
	f.items[tpl.ID] = *tpl
	return nil
}

func (f *fakeTemplateStore) Delete(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.items[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, id)
	return nil
}
