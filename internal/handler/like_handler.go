package handlers

import (
	"net/http"

	"hackerNews/internal/serializer"
)

func (h *Handlers) ListLikes(w http.ResponseWriter, r *http.Request) {
	likes, err := h.LikeService.ListLikes(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, likes, http.StatusOK)
}

func (h *Handlers) RetrieveLike(w http.ResponseWriter, r *http.Request) {
	likeID, ok := pathID(w, r)
	if !ok {
		return
	}

	like, err := h.LikeService.RetrieveLike(r.Context(), likeID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, like, http.StatusOK)
}

// CreateLike answers 200 with the stored like when the pair already exists
func (h *Handlers) CreateLike(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req serializer.LikeInput
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if req.User == 0 {
		req.User = userID
	}

	if err := serializer.Validate(h.Validate, req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	like, created, err := h.LikeService.CreateLike(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	status := http.StatusCreated
	if !created {
		status = http.StatusOK
	}
	writeSuccess(w, like, status)
}

func (h *Handlers) UpdateLike(w http.ResponseWriter, r *http.Request) {
	h.updateLike(w, r, false)
}

func (h *Handlers) PartialUpdateLike(w http.ResponseWriter, r *http.Request) {
	h.updateLike(w, r, true)
}

func (h *Handlers) updateLike(w http.ResponseWriter, r *http.Request, partial bool) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}

	likeID, ok := pathID(w, r)
	if !ok {
		return
	}

	like, err := h.LikeService.UpdateLike(r.Context(), likeID, partial, func(req *serializer.LikeInput) error {
		if err := decodeJSON(r, req); err != nil {
			return err
		}
		if req.User == 0 {
			req.User = userID
		}
		return serializer.Validate(h.Validate, req)
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeSuccess(w, like, http.StatusOK)
}

func (h *Handlers) DeleteLike(w http.ResponseWriter, r *http.Request) {
	likeID, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.LikeService.DeleteLike(r.Context(), likeID); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
