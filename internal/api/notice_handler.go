package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolorder-be/internal/notice"
	"toolorder-be/internal/utils"
)

type noticeRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (a *API) ListNotices(w http.ResponseWriter, r *http.Request) {
	notices, err := a.Notices.ListNotices(r.Context())
	if err != nil {
		utils.WriteJSONError(w, "failed to list notices", http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusOK, notices)
}

func (a *API) CreateNotice(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	n, err := a.Notices.CreateNotice(r.Context(), req.Title, req.Body)
	if errors.Is(err, notice.ErrEmptyTitle) {
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, n)
}

func (a *API) UpdateNotice(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	n := notice.Notice{ID: r.PathValue("id"), Title: req.Title, Body: req.Body}
	err := a.Notices.UpdateNotice(r.Context(), n)
	switch {
	case errors.Is(err, notice.ErrEmptyTitle):
		utils.WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, notice.ErrNoticeNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case err != nil:
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	default:
		utils.WriteJSON(w, http.StatusOK, n)
	}
}

func (a *API) DeleteNotice(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	err := a.Notices.DeleteNotice(r.Context(), r.PathValue("id"))
	switch {
	case errors.Is(err, notice.ErrNoticeNotFound):
		utils.WriteJSONError(w, err.Error(), http.StatusNotFound)
	case err != nil:
		utils.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}
