package session

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/unievents/internal/client/models"
	"github.com/dmitrijs2005/unievents/internal/client/repositories/credentials"
)

var errDisk = errors.New("disk full")

// fakeStore is an in-memory credentials.Repository whose operations can be
// made to fail per op and key ("get:token", "set:user", ...).
type fakeStore struct {
	mu     sync.Mutex
	data   map[string]string
	fail   map[string]error
	writes []string
}

func newFakeStore(seed map[string]string) *fakeStore {
	s := &fakeStore{data: map[string]string{}, fail: map[string]error{}}
	for k, v := range seed {
		s.data[k] = v
	}
	return s
}

func (s *fakeStore) failOn(op string, err error) *fakeStore {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[op] = err
	return s
}

func (s *fakeStore) err(op, key string) error {
	if err := s.fail[op+":"+key]; err != nil {
		return &credentials.StorageError{Op: op, Key: key, Err: err}
	}
	return nil
}

func (s *fakeStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.err("get", key); err != nil {
		return "", false, err
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, "set:"+key)
	if err := s.err("set", key); err != nil {
		return err
	}
	s.data[key] = value
	return nil
}

func (s *fakeStore) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, "remove:"+key)
	if err := s.err("remove", key); err != nil {
		return err
	}
	delete(s.data, key)
	return nil
}

func (s *fakeStore) snapshot() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.data))
	for k, v := range s.data {
		out[k] = v
	}
	return out
}

func (s *fakeStore) writeLog() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.writes...)
}

type fakeAuth struct {
	loginResp  *models.AuthResponse
	loginErr   error
	profile    *models.User
	profileErr error

	loginCalls   int
	profileCalls int
}

func (f *fakeAuth) Login(_ context.Context, _, _ string) (*models.AuthResponse, error) {
	f.loginCalls++
	return f.loginResp, f.loginErr
}

func (f *fakeAuth) GetProfile(context.Context) (*models.User, error) {
	f.profileCalls++
	return f.profile, f.profileErr
}

type recordingObserver struct {
	events []Event
}

func (r *recordingObserver) OnTransition(_ context.Context, e Event) {
	r.events = append(r.events, e)
}

func (r *recordingObserver) kinds() []EventKind {
	out := make([]EventKind, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Kind)
	}
	return out
}
