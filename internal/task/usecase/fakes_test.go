package usecase_test

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"tasksync/internal/model"
	"tasksync/internal/task/repository"
)

var createdAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTask(id, title string, status model.TaskStatus) model.Task {
	return model.Task{
		ID:          model.TaskID(id),
		Title:       title,
		Description: title + " details",
		Status:      status,
		CreatedAt:   createdAt,
	}
}

// fakeSession is a minimal session.Authorizer.
type fakeSession struct {
	mu       sync.Mutex
	verified bool
	gen      uint64
	rejected []uint64
}

func verifiedSession() *fakeSession {
	return &fakeSession{verified: true, gen: 1}
}

func (s *fakeSession) Authorized() (model.Credential, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.verified {
		return "", s.gen, false
	}
	return "tok", s.gen, true
}

func (s *fakeSession) IsCurrent(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return gen == s.gen
}

func (s *fakeSession) Reject(ctx context.Context, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.rejected = append(s.rejected, gen)
	s.verified = false
	s.gen++
}

func (s *fakeSession) logoutLogin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen += 2
}

func (s *fakeSession) rejections() []uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint64(nil), s.rejected...)
}

// gate blocks a fake call until the test releases it.
type gate struct {
	started chan struct{}
	release chan error
}

func newGate() *gate {
	return &gate{started: make(chan struct{}, 1), release: make(chan error, 1)}
}

func (g *gate) wait() error {
	g.started <- struct{}{}
	return <-g.release
}

// fakeRepo serves a mutable server-side task list.
type fakeRepo struct {
	mu     sync.Mutex
	server []model.Task
	calls  map[string]int
	nextID int

	listFunc      func() ([]model.Task, error)
	searchFunc    func(term string) ([]model.Task, error)
	createFunc    func(opt repository.CreateOptions) (model.Task, error)
	updateFunc    func(id model.TaskID, opt repository.UpdateOptions) (model.Task, error)
	setStatusFunc func(id model.TaskID, status model.TaskStatus) (*model.Task, error)
	deleteFunc    func(id model.TaskID) error
}

func newFakeRepo(tasks ...model.Task) *fakeRepo {
	return &fakeRepo{server: tasks, calls: map[string]int{}, nextID: 100}
}

func (r *fakeRepo) count(op string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[op]
}

func (r *fakeRepo) record(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls[op]++
}

func (r *fakeRepo) setServer(tasks ...model.Task) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.server = tasks
}

func (r *fakeRepo) snapshot() []model.Task {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Task, 0, len(r.server))
	for _, t := range r.server {
		out = append(out, t.Clone())
	}
	return out
}

func (r *fakeRepo) List(ctx context.Context, cred model.Credential, opt repository.ListOptions) ([]model.Task, error) {
	r.record("list")
	if r.listFunc != nil {
		return r.listFunc()
	}
	if opt.Status == "" {
		return r.snapshot(), nil
	}
	var out []model.Task
	for _, t := range r.snapshot() {
		if t.Status == opt.Status {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) Search(ctx context.Context, cred model.Credential, opt repository.SearchOptions) ([]model.Task, error) {
	r.record("search")
	if r.searchFunc != nil {
		return r.searchFunc(opt.Term)
	}
	var out []model.Task
	for _, t := range r.snapshot() {
		if strings.Contains(strings.ToLower(t.Title), strings.ToLower(opt.Term)) {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeRepo) Create(ctx context.Context, cred model.Credential, opt repository.CreateOptions) (model.Task, error) {
	r.record("create")
	if r.createFunc != nil {
		return r.createFunc(opt)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	summary := "summary of " + opt.Title
	t := model.Task{
		ID:          model.TaskID(fmt.Sprintf("n%d", r.nextID)),
		Title:       opt.Title,
		Description: opt.Description,
		Summary:     &summary,
		Status:      model.TaskStatusPending,
		CreatedAt:   createdAt,
	}
	r.server = append([]model.Task{t}, r.server...)
	return t.Clone(), nil
}

func (r *fakeRepo) Update(ctx context.Context, cred model.Credential, id model.TaskID, opt repository.UpdateOptions) (model.Task, error) {
	r.record("update")
	if r.updateFunc != nil {
		return r.updateFunc(id, opt)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.server {
		if r.server[i].ID == id {
			if opt.Title != nil {
				r.server[i].Title = *opt.Title
			}
			if opt.Description != nil {
				r.server[i].Description = *opt.Description
			}
			return r.server[i].Clone(), nil
		}
	}
	return model.Task{}, repository.ErrNotFound
}

func (r *fakeRepo) SetStatus(ctx context.Context, cred model.Credential, id model.TaskID, status model.TaskStatus) (*model.Task, error) {
	r.record("status")
	if r.setStatusFunc != nil {
		return r.setStatusFunc(id, status)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.server {
		if r.server[i].ID == id {
			r.server[i].Status = status
			return nil, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeRepo) Delete(ctx context.Context, cred model.Credential, id model.TaskID) error {
	r.record("delete")
	if r.deleteFunc != nil {
		return r.deleteFunc(id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.server {
		if r.server[i].ID == id {
			r.server = append(r.server[:i:i], r.server[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
