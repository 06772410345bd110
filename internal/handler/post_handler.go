package handlers

import (
	"net/http"

	"hackerNews/internal/serializer"
)

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.PostService.ListPosts(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, posts, http.StatusOK)
}

func (h *Handlers) RetrievePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.RetrievePost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

// CreatePost always credits the caller; author_name and liked_by in the body are ignored
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req serializer.PostInput
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	req.LikedBy = nil

	if err := serializer.Validate(h.Validate, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), userID, req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	h.updatePost(w, r, false)
}

func (h *Handlers) PartialUpdatePost(w http.ResponseWriter, r *http.Request) {
	h.updatePost(w, r, true)
}

func (h *Handlers) updatePost(w http.ResponseWriter, r *http.Request, partial bool) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	post, err := h.PostService.UpdatePost(r.Context(), postID, partial, func(req *serializer.PostInput) error {
		if err := decodeJSON(r, req); err != nil {
			return err
		}
		return serializer.Validate(h.Validate, req)
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.PostService.DeletePost(r.Context(), postID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) UnlikePost(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	postID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.PostService.UnlikePost(r.Context(), postID, userID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
