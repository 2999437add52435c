package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolorder-be/internal/user"
	"toolorder-be/internal/utils"
)

type loginRequest struct {
	CompanyCode string `json:"company_code"`
	Password    string `json:"password"`
	UserID      string `json:"user_id"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  user.User `json:"user"`
}

func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.CompanyCode == "" || req.Password == "" || req.UserID == "" {
		utils.WriteJSONError(w, "company_code, password and user_id are required", http.StatusBadRequest)
		return
	}

	token, u, err := a.Users.Login(r.Context(), req.CompanyCode, req.Password, req.UserID)
	if errors.Is(err, user.ErrInvalidCredentials) {
		utils.WriteJSONError(w, err.Error(), http.StatusUnauthorized)
		return
	}
	if err != nil {
		utils.WriteJSONError(w, "login failed", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, http.StatusOK, loginResponse{Token: token, User: u})
}
