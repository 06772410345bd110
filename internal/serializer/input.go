package serializer

import (
	"hackerNews/internal/models"
)

type UserInput struct {
	Username string `json:"username" validate:"required,notblank,max=100"`
	Password string `json:"password" validate:"required"`
}

// PostInput is the writable part of a post. The author is always the caller;
// liked_by is merged into the existing set.
type PostInput struct {
	Title   string  `json:"title" validate:"required,notblank,max=250"`
	Link    string  `json:"link" validate:"required,web_url,max=200"`
	LikedBy []int64 `json:"liked_by" validate:"omitempty,dive,gt=0"`
}

type CommentInput struct {
	Author  int64  `json:"author" validate:"omitempty,gt=0"`
	Content string `json:"content" validate:"required,notblank"`
	Post    int64  `json:"post" validate:"required,gt=0"`
}

type LikeInput struct {
	User int64 `json:"user" validate:"omitempty,gt=0"`
	Post int64 `json:"post" validate:"required,gt=0"`
}

// PostInputFrom prefills an input with the stored values so a partial
// update only overwrites the fields present in the request body.
func PostInputFrom(post *models.Post) PostInput {
	return PostInput{Title: post.Title, Link: post.Link}
}

func CommentInputFrom(comment Comment) CommentInput {
	return CommentInput{Author: comment.Author, Content: comment.Content, Post: comment.Post}
}

func LikeInputFrom(like Like) LikeInput {
	return LikeInput{User: like.User, Post: like.Post}
}
