package web

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"books_scraper/internal/model"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type listMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type listResponse struct {
	Data []model.Book `json:"data"`
	Meta listMeta     `json:"meta"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", slog.String("err", err.Error()))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, errorResponse{Code: code, Message: message})
}
