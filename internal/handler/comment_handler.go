package handlers

import (
	"net/http"

	"hackerNews/internal/serializer"
)

func (h *Handlers) ListComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.CommentService.ListComments(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, comments, http.StatusOK)
}

func (h *Handlers) RetrieveComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r)
	if !ok {
		return
	}

	comment, err := h.CommentService.RetrieveComment(r.Context(), commentID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req serializer.CommentInput
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.Author == 0 {
		req.Author = userID
	}

	if err := serializer.Validate(h.Validate, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	comment, err := h.CommentService.CreateComment(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, comment, http.StatusCreated)
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	h.updateComment(w, r, false)
}

func (h *Handlers) PartialUpdateComment(w http.ResponseWriter, r *http.Request) {
	h.updateComment(w, r, true)
}

func (h *Handlers) updateComment(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	commentID, ok := pathID(w, r)
	if !ok {
		return
	}

	comment, err := h.CommentService.UpdateComment(r.Context(), commentID, partial, func(req *serializer.CommentInput) error {
		if err := decodeJSON(r, req); err != nil {
			return err
		}
		if req.Author == 0 {
			req.Author = userID
		}
		return serializer.Validate(h.Validate, req)
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, comment, http.StatusOK)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	commentID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.CommentService.DeleteComment(r.Context(), commentID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
