package util

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

func LogError(message string, err error) error {
	log.Printf("%s: %v", message, err)
	return fmt.Errorf("%s: %w", message, err)
}

// HandleError : пишет ошибку в формате {status, message}
func HandleError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	}{
		Status:  statusCode,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(errorResponse); err != nil {
		log.Printf("ошибка кодирования ответа: %v", err)
	}
}

// HandleAppError : сопоставляет ошибку со статусом и пишет ответ.
// Внутренние ошибки логируются, клиент видит только общий текст.
func HandleAppError(w http.ResponseWriter, err error) {
	statusCode := StatusCode(err)
	if statusCode == http.StatusInternalServerError {
		log.Printf("внутренняя ошибка: %v", err)
	}
	HandleError(w, PublicMessage(err), statusCode)
}
