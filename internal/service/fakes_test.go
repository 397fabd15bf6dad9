package service

import (
	"context"
	"sort"

	"blog_api/internal/models"
)

// fakeUsers is an in-memory repository.Users.
type fakeUsers struct {
	byID   map[int]models.User
	nextID int
	err    error // returned by every method when set

	createCalls []models.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[int]models.User{}, nextID: 1}
}

func (f *fakeUsers) Create(_ context.Context, u models.User) (int, error) {
	f.createCalls = append(f.createCalls, u)
	if f.err != nil {
		return 0, f.err
	}
	u.ID = f.nextID
	f.nextID++
	f.byID[u.ID] = u
	return u.ID, nil
}

func (f *fakeUsers) sorted() []models.User {
	out := make([]models.User, 0, len(f.byID))
	for _, u := range f.byID {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.sorted() {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) GetByPublicID(_ context.Context, publicID string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.PublicID == publicID {
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) List(_ context.Context) ([]models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sorted(), nil
}

func (f *fakeUsers) SetAdmin(ctx context.Context, publicID string) (*models.User, error) {
	u, err := f.GetByPublicID(ctx, publicID)
	if u == nil || err != nil {
		return u, err
	}
	u.Admin = true
	f.byID[u.ID] = *u
	return u, nil
}

func (f *fakeUsers) Delete(ctx context.Context, publicID string) (*models.User, error) {
	u, err := f.GetByPublicID(ctx, publicID)
	if u == nil || err != nil {
		return u, err
	}
	delete(f.byID, u.ID)
	return u, nil
}

// fakePosts is an in-memory repository.Posts.
type fakePosts struct {
	byID   map[int]models.Post
	nextID int
	err    error
}

func newFakePosts() *fakePosts {
	return &fakePosts{byID: map[int]models.Post{}, nextID: 1}
}

func (f *fakePosts) Create(_ context.Context, p models.Post) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	p.ID = f.nextID
	f.nextID++
	f.byID[p.ID] = p
	return p.ID, nil
}

func (f *fakePosts) filter(keep func(models.Post) bool) ([]models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []models.Post{}
	for _, p := range f.byID {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePosts) List(_ context.Context) ([]models.Post, error) {
	return f.filter(func(models.Post) bool { return true })
}

func (f *fakePosts) ListByAuthor(_ context.Context, authorID int) ([]models.Post, error) {
	return f.filter(func(p models.Post) bool { return p.AuthorID == authorID })
}

func (f *fakePosts) GetOwned(_ context.Context, id, authorID int) (*models.Post, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.byID[id]
	if !ok || p.AuthorID != authorID {
		return nil, nil
	}
	return &p, nil
}

func (f *fakePosts) UpdateOwned(ctx context.Context, id, authorID int, title, body string) (*models.Post, error) {
	p, err := f.GetOwned(ctx, id, authorID)
	if p == nil || err != nil {
		return p, err
	}
	p.Title, p.Body = title, body
	f.byID[id] = *p
	return p, nil
}

func (f *fakePosts) DeleteOwned(ctx context.Context, id, authorID int) (*models.Post, error) {
	p, err := f.GetOwned(ctx, id, authorID)
	if p == nil || err != nil {
		return p, err
	}
	delete(f.byID, id)
	return p, nil
}
