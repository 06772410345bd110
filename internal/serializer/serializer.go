// Package serializer turns stored rows into API shapes and back.
//
// Derived fields (author_username, comments_number, liked_by) are resolved
// through a Store at serialization time and are never persisted.
package serializer

import (
	"context"
	"fmt"

	"hackerNews/internal/models"
)

// Store is the read access the computed fields need.
type Store interface {
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetCommentsByPostID(ctx context.Context, postID int64) ([]*models.Comment, error)
	CountCommentsByPostID(ctx context.Context, postID int64) (int, error)
	GetLikedBy(ctx context.Context, postID int64) ([]int64, error)
}

type User struct {
	Username string `json:"username"`
}

type PostList struct {
	ID             int64       `json:"id"`
	AuthorName     int64       `json:"author_name"`
	Title          string      `json:"title"`
	AuthorUsername string      `json:"author_username"`
	Link           string      `json:"link"`
	CreationDate   models.Date `json:"creation_date"`
	CommentsNumber int         `json:"comments_number"`
	LikedBy        []int64     `json:"liked_by"`
}

type PostDetail struct {
	ID             int64       `json:"id"`
	Title          string      `json:"title"`
	AuthorName     int64       `json:"author_name"`
	AuthorUsername string      `json:"author_username"`
	Link           string      `json:"link"`
	CreationDate   models.Date `json:"creation_date"`
	Comment        []Comment   `json:"comment"`
}

type Comment struct {
	ID           int64       `json:"id"`
	Author       int64       `json:"author"`
	Content      string      `json:"content"`
	CreationDate models.Date `json:"creation_date"`
	Post         int64       `json:"post"`
}

type Like struct {
	ID   int64 `json:"id"`
	User int64 `json:"user"`
	Post int64 `json:"post"`
}

func NewUser(user *models.User) User {
	return User{Username: user.Username}
}

func NewComment(comment *models.Comment) Comment {
	return Comment{
		ID:           comment.ID,
		Author:       comment.AuthorID,
		Content:      comment.Content,
		CreationDate: comment.CreationDate,
		Post:         comment.PostID,
	}
}

func NewComments(comments []*models.Comment) []Comment {
	result := make([]Comment, 0, len(comments))
	for _, c := range comments {
		result = append(result, NewComment(c))
	}
	return result
}

func NewLike(like *models.Like) Like {
	return Like{ID: like.ID, User: like.UserID, Post: like.PostID}
}

func NewLikes(likes []*models.Like) []Like {
	result := make([]Like, 0, len(likes))
	for _, l := range likes {
		result = append(result, NewLike(l))
	}
	return result
}

func AuthorUsername(ctx context.Context, store Store, post *models.Post) (string, error) {
	author, err := store.GetUserByID(ctx, post.AuthorID)
	if err != nil {
		return "", fmt.Errorf("ошибка при получении автора поста %d: %w", post.ID, err)
	}
	return author.Username, nil
}

func CommentsNumber(ctx context.Context, store Store, post *models.Post) (int, error) {
	count, err := store.CountCommentsByPostID(ctx, post.ID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте комментариев поста %d: %w", post.ID, err)
	}
	return count, nil
}

func LikedBy(ctx context.Context, store Store, post *models.Post) ([]int64, error) {
	userIDs, err := store.GetLikedBy(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении лайков поста %d: %w", post.ID, err)
	}
	if userIDs == nil {
		userIDs = []int64{}
	}
	return userIDs, nil
}

func NewPostList(ctx context.Context, store Store, post *models.Post) (*PostList, error) {
	username, err := AuthorUsername(ctx, store, post)
	if err != nil {
		return nil, err
	}

	commentsNumber, err := CommentsNumber(ctx, store, post)
	if err != nil {
		return nil, err
	}

	likedBy, err := LikedBy(ctx, store, post)
	if err != nil {
		return nil, err
	}

	return &PostList{
		ID:             post.ID,
		AuthorName:     post.AuthorID,
		Title:          post.Title,
		AuthorUsername: username,
		Link:           post.Link,
		CreationDate:   post.CreationDate,
		CommentsNumber: commentsNumber,
		LikedBy:        likedBy,
	}, nil
}

func NewPostDetail(ctx context.Context, store Store, post *models.Post) (*PostDetail, error) {
	username, err := AuthorUsername(ctx, store, post)
	if err != nil {
		return nil, err
	}

	comments, err := store.GetCommentsByPostID(ctx, post.ID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев поста %d: %w", post.ID, err)
	}

	return &PostDetail{
		ID:             post.ID,
		Title:          post.Title,
		AuthorName:     post.AuthorID,
		AuthorUsername: username,
		Link:           post.Link,
		CreationDate:   post.CreationDate,
		Comment:        NewComments(comments),
	}, nil
}
