package postapp

import (
	"context"
	"errors"
	"testing"
	"time"

	postEntity "blogapi/internal/core/post"
	postPort "blogapi/internal/ports/post"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type memRepo struct {
	posts   []*postEntity.Post
	nextID  uint
	calls   int
	failErr error
}

func (r *memRepo) Create(_ context.Context, p *postEntity.Post) (*postEntity.Post, error) {
	r.calls++
	if r.failErr != nil {
		return nil, r.failErr
	}
	r.nextID++
	p.ID = r.nextID
	r.posts = append(r.posts, p)
	return p, nil
}

func (r *memRepo) List(context.Context) ([]*postEntity.Post, error) {
	r.calls++
	if r.failErr != nil {
		return nil, r.failErr
	}
	return r.posts, nil
}

func (r *memRepo) Delete(_ context.Context, id uint) (int64, error) {
	r.calls++
	if r.failErr != nil {
		return 0, r.failErr
	}
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type memFeed struct {
	added   []uint
	removed []uint
	err     error
}

func (f *memFeed) Add(_ context.Context, id uint, _ time.Time) error {
	f.added = append(f.added, id)
	return f.err
}

func (f *memFeed) Remove(_ context.Context, id uint) error {
	f.removed = append(f.removed, id)
	return f.err
}

func (f *memFeed) Replace(context.Context, []postPort.FeedEntry) error { return f.err }

func newTestService(repo *memRepo, feed *memFeed) *PostService {
	s := NewPostService(repo, feed, zap.NewNop())
	s.now = func() time.Time { return time.Date(2024, 7, 9, 23, 30, 0, 0, time.FixedZone("x", -5*3600)) }
	return s
}

func TestCreatePostRejectsMissingFieldsBeforeStore(t *testing.T) {
	cases := []postPort.CreatePostInput{
		{},
		{Title: "t"},
		{Content: "c"},
		{Title: "", Content: "", Games: "Chess"},
	}
	for _, in := range cases {
		repo := &memRepo{}
		_, err := newTestService(repo, &memFeed{}).CreatePost(context.Background(), in)
		assert.ErrorIs(t, err, postEntity.ErrMissingFields)
		assert.Zero(t, repo.calls)
	}
}

func TestCreatePostDefaults(t *testing.T) {
	repo := &memRepo{}
	feed := &memFeed{}
	id, err := newTestService(repo, feed).CreatePost(context.Background(), postPort.CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)

	require.Len(t, repo.posts, 1)
	p := repo.posts[0]
	assert.Equal(t, id, p.ID)
	assert.Equal(t, "", p.Games)
	// 23:30 در UTC-5 یعنی روز بعد در UTC
	assert.Equal(t, "2024-07-10", p.Date.Format(postEntity.DateLayout))
	assert.Equal(t, []uint{id}, feed.added)
}

func TestCreatePostDates(t *testing.T) {
	cases := map[string]string{
		"2023-01-05":                "2023-01-05",
		" 2023-01-05 ":              "2023-01-05",
		"2023-01-05T22:00:00-03:00": "2023-01-06",
	}
	for raw, want := range cases {
		repo := &memRepo{}
		_, err := newTestService(repo, &memFeed{}).CreatePost(context.Background(), postPort.CreatePostInput{Title: "t", Content: "c", Date: raw})
		require.NoError(t, err, raw)
		assert.Equal(t, want, repo.posts[0].Date.Format(postEntity.DateLayout), raw)
	}

	repo := &memRepo{}
	_, err := newTestService(repo, &memFeed{}).CreatePost(context.Background(), postPort.CreatePostInput{Title: "t", Content: "c", Date: "05/01/2023"})
	assert.ErrorIs(t, err, postEntity.ErrInvalidDate)
	assert.Zero(t, repo.calls)
}

func TestCreatePostIDsIncrease(t *testing.T) {
	s := newTestService(&memRepo{}, &memFeed{})
	var last uint
	for i := 0; i < 5; i++ {
		id, err := s.CreatePost(context.Background(), postPort.CreatePostInput{Title: "t", Content: "c"})
		require.NoError(t, err)
		assert.Greater(t, id, last)
		last = id
	}
}

func TestCreatePostStoreErrorPassesThrough(t *testing.T) {
	storeErr := errors.New("Error 1045: Access denied")
	feed := &memFeed{}
	_, err := newTestService(&memRepo{failErr: storeErr}, feed).CreatePost(context.Background(), postPort.CreatePostInput{Title: "t", Content: "c"})
	assert.Equal(t, storeErr, err)
	assert.Empty(t, feed.added)
}

func TestFeedFailureDoesNotFailCreateOrDelete(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	repo := &memRepo{}
	s := NewPostService(repo, &memFeed{err: errors.New("redis down")}, zap.New(core))

	id, err := s.CreatePost(context.Background(), postPort.CreatePostInput{Title: "t", Content: "c"})
	require.NoError(t, err)
	require.NoError(t, s.DeletePost(context.Background(), id))
	assert.Equal(t, 2, logs.FilterLevelExact(zap.WarnLevel).Len())
}

func TestListPosts(t *testing.T) {
	s := newTestService(&memRepo{}, &memFeed{})

	posts, err := s.ListPosts(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)

	_, err = s.CreatePost(context.Background(), postPort.CreatePostInput{Title: "Hello", Content: "World", Games: "Chess", Date: "2024-01-02"})
	require.NoError(t, err)

	posts, err = s.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, "Hello", posts[0].Title)
	assert.Equal(t, "World", posts[0].Content)
	assert.Equal(t, "Chess", posts[0].Games)
	assert.Equal(t, "2024-01-02", posts[0].Date)
}

func TestListPostsStoreError(t *testing.T) {
	storeErr := errors.New("connection reset")
	_, err := newTestService(&memRepo{failErr: storeErr}, &memFeed{}).ListPosts(context.Background())
	assert.Equal(t, storeErr, err)
}

func TestDeletePost(t *testing.T) {
	repo := &memRepo{}
	feed := &memFeed{}
	s := newTestService(repo, feed)
	a, _ := s.CreatePost(context.Background(), postPort.CreatePostInput{Title: "a", Content: "c"})
	b, _ := s.CreatePost(context.Background(), postPort.CreatePostInput{Title: "b", Content: "c"})

	require.NoError(t, s.DeletePost(context.Background(), a))
	assert.ErrorIs(t, s.DeletePost(context.Background(), a), postEntity.ErrNotFound)
	assert.ErrorIs(t, s.DeletePost(context.Background(), 999), postEntity.ErrNotFound)

	require.Len(t, repo.posts, 1)
	assert.Equal(t, b, repo.posts[0].ID)
	assert.Equal(t, []uint{a}, feed.removed)
}

func TestDeletePostStoreError(t *testing.T) {
	storeErr := errors.New("bad connection")
	err := newTestService(&memRepo{failErr: storeErr}, &memFeed{}).DeletePost(context.Background(), 1)
	assert.Equal(t, storeErr, err)
}

func TestNilFeedUsesNop(t *testing.T) {
	s := NewPostService(&memRepo{}, nil, nil)
	_, err := s.CreatePost(context.Background(), postPort.CreatePostInput{Title: "t", Content: "c"})
	assert.NoError(t, err)
}
