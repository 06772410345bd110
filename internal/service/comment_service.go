package service

import (
	"context"

	"hackerNews/internal/models"
	"hackerNews/internal/repository"
	"hackerNews/internal/serializer"
)

type CommentService interface {
	ListComments(ctx context.Context) ([]serializer.Comment, error)
	RetrieveComment(ctx context.Context, commentID int64) (*serializer.Comment, error)
	CreateComment(ctx context.Context, req serializer.CommentInput) (*serializer.Comment, error)
	UpdateComment(ctx context.Context, commentID int64, partial bool, fill func(req *serializer.CommentInput) error) (*serializer.Comment, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type commentService struct {
	tx Transactor
}

func NewCommentService(tx Transactor) CommentService {
	return &commentService{tx: tx}
}

func (c *commentService) ListComments(ctx context.Context) ([]serializer.Comment, error) {
	var result []serializer.Comment

	err := c.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		comments, err := rep.Comment.GetAll(ctx)
		if err != nil {
			return err
		}
		result = serializer.NewComments(comments)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (c *commentService) RetrieveComment(ctx context.Context, commentID int64) (*serializer.Comment, error) {
	var result serializer.Comment

	err := c.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		comment, err := rep.Comment.GetByID(ctx, commentID)
		if err != nil {
			return err
		}
		result = serializer.NewComment(comment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func validateComment(ctx context.Context, refs references, req serializer.CommentInput) error {
	vErr := &models.ValidationError{}
	if err := refs.checkUser(ctx, vErr, "author", req.Author); err != nil {
		return err
	}
	if err := refs.checkPost(ctx, vErr, "post", req.Post); err != nil {
		return err
	}
	if !vErr.Empty() {
		return vErr
	}
	return nil
}

func (c *commentService) CreateComment(ctx context.Context, req serializer.CommentInput) (*serializer.Comment, error) {
	var result serializer.Comment

	err := c.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		if err := validateComment(ctx, newReferences(rep), req); err != nil {
			return err
		}

		comment := &models.Comment{
			AuthorID: req.Author,
			Content:  req.Content,
			PostID:   req.Post,
		}

		if err := rep.Comment.Create(ctx, comment); err != nil {
			return err
		}

		result = serializer.NewComment(comment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// UpdateComment keeps the creation date; fill works like in UpdatePost.
func (c *commentService) UpdateComment(ctx context.Context, commentID int64, partial bool, fill func(req *serializer.CommentInput) error) (*serializer.Comment, error) {
	var result serializer.Comment

	err := c.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		comment, err := rep.Comment.GetByID(ctx, commentID)
		if err != nil {
			return err
		}

		var req serializer.CommentInput
		if partial {
			req = serializer.CommentInputFrom(serializer.NewComment(comment))
		}
		if err := fill(&req); err != nil {
			return err
		}

		if err := validateComment(ctx, newReferences(rep), req); err != nil {
			return err
		}

		comment.AuthorID = req.Author
		comment.Content = req.Content
		comment.PostID = req.Post

		if err := rep.Comment.Update(ctx, comment); err != nil {
			return err
		}

		result = serializer.NewComment(comment)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (c *commentService) DeleteComment(ctx context.Context, commentID int64) error {
	return c.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		return rep.Comment.Delete(ctx, commentID)
	})
}
