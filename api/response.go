package api

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse представляет структуру ошибки
type ErrorResponse struct {
	Error string `json:"error"`
}

// Функция для отправки ошибочного ответа
func SendErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(statusCode)
	response, _ := json.Marshal(ErrorResponse{Error: message})
	w.Write(response)
}

// Функция для отправки успешного ответа в формате JSON
func SendJSONResponse(w http.ResponseWriter, data interface{}, statusCode int) {
	response, err := json.Marshal(data)
	if err != nil {
		SendErrorResponse(w, "JSON encoding error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(statusCode)
	w.Write(response)
}
