package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/luxeshop/storefront-api/internal/cms"
	"github.com/luxeshop/storefront-api/internal/domain"
	apperrors "github.com/luxeshop/storefront-api/pkg/errors"
)

// fakeDocStore is an in-memory DocumentStore that round-trips documents
// through JSON the way the real data service does.
type fakeDocStore struct {
	mu          sync.Mutex
	collections map[string]map[string]json.RawMessage
	order       map[string][]string
	nextID      int

	failCreate bool
	failUpdate bool
}

func newFakeDocStore() *fakeDocStore {
	return &fakeDocStore{
		collections: make(map[string]map[string]json.RawMessage),
		order:       make(map[string][]string),
	}
}

func (f *fakeDocStore) seed(collection, id string, doc interface{}) {
	raw, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		panic(err)
	}
	m["id"] = id
	stored, _ := json.Marshal(m)

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.collections[collection] == nil {
		f.collections[collection] = make(map[string]json.RawMessage)
	}
	f.collections[collection][id] = stored
	f.order[collection] = append(f.order[collection], id)
}

func (f *fakeDocStore) count(collection string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.collections[collection])
}

func (f *fakeDocStore) CreateDocument(_ context.Context, collection string, doc, out interface{}) error {
	if f.failCreate {
		return &apperrors.ErrUpstream{Op: "create " + collection, Err: errors.New("store down")}
	}

	f.mu.Lock()
	f.nextID++
	id := fmt.Sprintf("%s-%d", collection, f.nextID)
	f.mu.Unlock()

	f.seed(collection, id, doc)

	if out != nil {
		f.mu.Lock()
		raw := f.collections[collection][id]
		f.mu.Unlock()
		return json.Unmarshal(raw, out)
	}
	return nil
}

func (f *fakeDocStore) UpdateDocument(_ context.Context, collection, id string, patch, out interface{}) error {
	if f.failUpdate {
		return &apperrors.ErrUpstream{Op: "update " + collection, Err: errors.New("store down")}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.collections[collection][id]
	if !ok {
		return &apperrors.ErrNotFound{Resource: collection, ID: id}
	}

	var current map[string]interface{}
	if err := json.Unmarshal(raw, &current); err != nil {
		return err
	}

	patchRaw, err := json.Marshal(patch)
	if err != nil {
		return err
	}
	var patchMap map[string]interface{}
	if err := json.Unmarshal(patchRaw, &patchMap); err != nil {
		return err
	}
	for key, value := range patchMap {
		current[key] = value
	}

	updated, _ := json.Marshal(current)
	f.collections[collection][id] = updated

	if out != nil {
		return json.Unmarshal(updated, out)
	}
	return nil
}

func (f *fakeDocStore) GetDocument(_ context.Context, collection, id string, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.collections[collection][id]
	if !ok {
		return &apperrors.ErrNotFound{Resource: collection, ID: id}
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeDocStore) ListDocuments(_ context.Context, collection string, opts cms.ListOptions, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	docs := make([]json.RawMessage, 0)
	for _, id := range f.order[collection] {
		raw, ok := f.collections[collection][id]
		if !ok {
			continue
		}
		if matchesWhere(raw, opts.Where) {
			docs = append(docs, raw)
		}
	}

	envelope := map[string]interface{}{"docs": docs}
	raw, _ := json.Marshal(envelope)
	return json.Unmarshal(raw, out)
}

func matchesWhere(raw json.RawMessage, where map[string]string) bool {
	if len(where) == 0 {
		return true
	}
	var doc map[string]interface{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return false
	}
	for key, want := range where {
		field := strings.TrimSuffix(key, ".equals")
		got, ok := doc[field]
		if !ok {
			return false
		}
		if fmt.Sprintf("%v", got) != want {
			return false
		}
	}
	return true
}

// fakeCartStore keeps carts in a map.
type fakeCartStore struct {
	mu        sync.Mutex
	carts     map[string]domain.Cart
	failClear bool
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: make(map[string]domain.Cart)}
}

func (f *fakeCartStore) Get(_ context.Context, sessionID string) (domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.carts[sessionID], nil
}

func (f *fakeCartStore) Save(_ context.Context, sessionID string, c domain.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.carts[sessionID] = c
	return nil
}

func (f *fakeCartStore) Clear(_ context.Context, sessionID string) error {
	if f.failClear {
		return &apperrors.ErrUpstream{Op: "cart clear", Err: errors.New("redis down")}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.carts, sessionID)
	return nil
}

// fakeMedia records uploads and can fail after N successes.
type fakeMedia struct {
	mu        sync.Mutex
	uploads   []string
	failAfter int // -1 never fails
}

func newFakeMedia() *fakeMedia {
	return &fakeMedia{failAfter: -1}
}

func (f *fakeMedia) UploadFile(_ context.Context, _ []byte, filename, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAfter >= 0 && len(f.uploads) >= f.failAfter {
		return "", &apperrors.ErrUpstream{Op: "upload media", Err: errors.New("upload failed")}
	}
	id := fmt.Sprintf("media-%d", len(f.uploads)+1)
	f.uploads = append(f.uploads, filename)
	return id, nil
}

// fakeIdempotencyRepo keeps keys in a map.
type fakeIdempotencyRepo struct {
	mu   sync.Mutex
	keys map[string]*domain.IdempotencyKey
}

func newFakeIdempotencyRepo() *fakeIdempotencyRepo {
	return &fakeIdempotencyRepo{keys: make(map[string]*domain.IdempotencyKey)}
}

func (f *fakeIdempotencyRepo) Create(_ context.Context, key *domain.IdempotencyKey) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys[key.Key] = key
	return nil
}

func (f *fakeIdempotencyRepo) GetByKey(_ context.Context, keyValue string) (*domain.IdempotencyKey, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key, ok := f.keys[keyValue]
	if !ok {
		return nil, &apperrors.ErrNotFound{Resource: "idempotency key", ID: keyValue}
	}
	return key, nil
}
