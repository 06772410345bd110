package service

import (
	"context"
	"fmt"

	"hackerNews/internal/models"
	"hackerNews/internal/repository"
	"hackerNews/internal/serializer"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*serializer.PostList, error)
	RetrievePost(ctx context.Context, postID int64) (*serializer.PostDetail, error)
	CreatePost(ctx context.Context, authorID int64, req serializer.PostInput) (*serializer.PostList, error)
	UpdatePost(ctx context.Context, postID int64, partial bool, fill func(req *serializer.PostInput) error) (*serializer.PostList, error)
	DeletePost(ctx context.Context, postID int64) error
	UnlikePost(ctx context.Context, postID, userID int64) error
}

type postService struct {
	tx Transactor
}

func NewPostService(tx Transactor) PostService {
	return &postService{tx: tx}
}

func (p *postService) ListPosts(ctx context.Context) ([]*serializer.PostList, error) {
	var result []*serializer.PostList

	err := p.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		posts, err := rep.Post.GetAll(ctx)
		if err != nil {
			return err
		}

		st := newStore(rep)
		result = make([]*serializer.PostList, 0, len(posts))
		for _, post := range posts {
			view, err := serializer.NewPostList(ctx, st, post)
			if err != nil {
				return err
			}
			result = append(result, view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (p *postService) RetrievePost(ctx context.Context, postID int64) (*serializer.PostDetail, error) {
	var result *serializer.PostDetail

	err := p.tx.RunInTx(ctx, true, func(rep *repository.Repository) error {
		post, err := rep.Post.GetByID(ctx, postID)
		if err != nil {
			return err
		}

		result, err = serializer.NewPostDetail(ctx, newStore(rep), post)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (p *postService) CreatePost(ctx context.Context, authorID int64, req serializer.PostInput) (*serializer.PostList, error) {
	var result *serializer.PostList

	err := p.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		vErr := &models.ValidationError{}
		if err := newReferences(rep).checkUser(ctx, vErr, "author_name", authorID); err != nil {
			return err
		}
		if !vErr.Empty() {
			return vErr
		}

		post := &models.Post{
			Title:    req.Title,
			Link:     req.Link,
			AuthorID: authorID,
		}

		if err := rep.Post.Create(ctx, post); err != nil {
			return err
		}

		var err error
		result, err = serializer.NewPostList(ctx, newStore(rep), post)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// UpdatePost replaces title and link and merges req.LikedBy into the likes of the post.
// fill receives the stored values when partial is set and an empty input otherwise.
func (p *postService) UpdatePost(ctx context.Context, postID int64, partial bool, fill func(req *serializer.PostInput) error) (*serializer.PostList, error) {
	var result *serializer.PostList

	err := p.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		post, err := rep.Post.GetByID(ctx, postID)
		if err != nil {
			return err
		}

		var req serializer.PostInput
		if partial {
			req = serializer.PostInputFrom(post)
		}
		if err := fill(&req); err != nil {
			return err
		}

		likedBy := uniqueIDs(req.LikedBy)

		vErr := &models.ValidationError{}
		refs := newReferences(rep)
		for _, userID := range likedBy {
			if err := refs.checkUser(ctx, vErr, "liked_by", userID); err != nil {
				return err
			}
		}
		if !vErr.Empty() {
			return vErr
		}

		post.Title = req.Title
		post.Link = req.Link

		if err := rep.Post.Update(ctx, post, likedBy); err != nil {
			return err
		}

		result, err = serializer.NewPostList(ctx, newStore(rep), post)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (p *postService) DeletePost(ctx context.Context, postID int64) error {
	return p.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		return rep.Post.Delete(ctx, postID)
	})
}

func (p *postService) UnlikePost(ctx context.Context, postID, userID int64) error {
	return p.tx.RunInTx(ctx, false, func(rep *repository.Repository) error {
		if _, err := rep.Post.GetByID(ctx, postID); err != nil {
			return err
		}

		if err := rep.Like.DeleteByUserAndPost(ctx, userID, postID); err != nil {
			return fmt.Errorf("ошибка при снятии лайка: %w", err)
		}
		return nil
	})
}
