package test

import (
	"context"

	"hackerNews/internal/models"
	"hackerNews/internal/serializer"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req serializer.UserInput) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) ListPosts(ctx context.Context) ([]*serializer.PostList, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*serializer.PostList), args.Error(1)
}

func (m *MockPostService) RetrievePost(ctx context.Context, postID int64) (*serializer.PostDetail, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.PostDetail), args.Error(1)
}

func (m *MockPostService) CreatePost(ctx context.Context, authorID int64, req serializer.PostInput) (*serializer.PostList, error) {
	args := m.Called(ctx, authorID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.PostList), args.Error(1)
}

// UpdatePost prefills a partial update from "StoredPost" and records the filled input.
func (m *MockPostService) UpdatePost(ctx context.Context, postID int64, partial bool, fill func(req *serializer.PostInput) error) (*serializer.PostList, error) {
	var req serializer.PostInput
	if partial {
		stored := m.MethodCalled("StoredPost", postID)
		if err := stored.Error(1); err != nil {
			return nil, err
		}
		req = stored.Get(0).(serializer.PostInput)
	}
	if err := fill(&req); err != nil {
		return nil, err
	}

	args := m.Called(ctx, postID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.PostList), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostService) UnlikePost(ctx context.Context, postID, userID int64) error {
	args := m.Called(ctx, postID, userID)
	return args.Error(0)
}

type MockCommentService struct {
	mock.Mock
}

func (m *MockCommentService) ListComments(ctx context.Context) ([]serializer.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]serializer.Comment), args.Error(1)
}

func (m *MockCommentService) RetrieveComment(ctx context.Context, commentID int64) (*serializer.Comment, error) {
	args := m.Called(ctx, commentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.Comment), args.Error(1)
}

func (m *MockCommentService) CreateComment(ctx context.Context, req serializer.CommentInput) (*serializer.Comment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.Comment), args.Error(1)
}

func (m *MockCommentService) UpdateComment(ctx context.Context, commentID int64, partial bool, fill func(req *serializer.CommentInput) error) (*serializer.Comment, error) {
	var req serializer.CommentInput
	if partial {
		stored := m.MethodCalled("StoredComment", commentID)
		if err := stored.Error(1); err != nil {
			return nil, err
		}
		req = stored.Get(0).(serializer.CommentInput)
	}
	if err := fill(&req); err != nil {
		return nil, err
	}

	args := m.Called(ctx, commentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.Comment), args.Error(1)
}

func (m *MockCommentService) DeleteComment(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockLikeService struct {
	mock.Mock
}

func (m *MockLikeService) ListLikes(ctx context.Context) ([]serializer.Like, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]serializer.Like), args.Error(1)
}

func (m *MockLikeService) RetrieveLike(ctx context.Context, likeID int64) (*serializer.Like, error) {
	args := m.Called(ctx, likeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.Like), args.Error(1)
}

func (m *MockLikeService) CreateLike(ctx context.Context, req serializer.LikeInput) (*serializer.Like, bool, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*serializer.Like), args.Bool(1), args.Error(2)
}

func (m *MockLikeService) UpdateLike(ctx context.Context, likeID int64, partial bool, fill func(req *serializer.LikeInput) error) (*serializer.Like, error) {
	var req serializer.LikeInput
	if partial {
		stored := m.MethodCalled("StoredLike", likeID)
		if err := stored.Error(1); err != nil {
			return nil, err
		}
		req = stored.Get(0).(serializer.LikeInput)
	}
	if err := fill(&req); err != nil {
		return nil, err
	}

	args := m.Called(ctx, likeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*serializer.Like), args.Error(1)
}

func (m *MockLikeService) DeleteLike(ctx context.Context, likeID int64) error {
	args := m.Called(ctx, likeID)
	return args.Error(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetTablesStats(ctx context.Context) (*models.TablesStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TablesStats), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
