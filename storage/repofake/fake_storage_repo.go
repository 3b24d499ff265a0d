package repofake

import (
	"sync"

	"github.com/spotilike/go-client/storage"
)

var _ storage.Repo = (*FakeStorageRepo)(nil)

// FakeStorageRepo is an in-memory storage.Repo for tests. It records every
// mutation in order and can be primed to fail specific keys.
type FakeStorageRepo struct {
	values  map[string]string
	setErrs map[string]error
	ops     []string
	lock    sync.RWMutex
}

func NewFakeStorageRepo() *FakeStorageRepo {
	return &FakeStorageRepo{
		values:  make(map[string]string),
		setErrs: make(map[string]error),
	}
}

func (sr *FakeStorageRepo) Get(key string) (string, bool, error) {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	value, ok := sr.values[key]
	return value, ok, nil
}

func (sr *FakeStorageRepo) Set(key, value string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	if err, ok := sr.setErrs[key]; ok {
		return err
	}
	sr.values[key] = value
	sr.ops = append(sr.ops, "set "+key)
	return nil
}

func (sr *FakeStorageRepo) Delete(key string) error {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	delete(sr.values, key)
	sr.ops = append(sr.ops, "delete "+key)
	return nil
}

// FailSet makes every subsequent Set of key return err.
func (sr *FakeStorageRepo) FailSet(key string, err error) {
	sr.lock.Lock()
	defer sr.lock.Unlock()

	sr.setErrs[key] = err
}

// Ops returns the ordered mutation log ("set <key>" / "delete <key>").
func (sr *FakeStorageRepo) Ops() []string {
	sr.lock.RLock()
	defer sr.lock.RUnlock()

	ops := make([]string, len(sr.ops))
	copy(ops, sr.ops)
	return ops
}
