package utils

import (
	"encoding/json"
	"net/http"

	"github.com/chaedirdwiantara/bankSavingSystem-API/internal/models"
)

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// WriteSuccess wraps data in the success envelope.
func WriteSuccess(w http.ResponseWriter, status int, data interface{}, message string) {
	WriteJSON(w, status, models.APIResponse{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func WriteError(w http.ResponseWriter, status int, errorMsg, details string) {
	WriteJSON(w, status, models.APIResponse{
		Success: false,
		Error:   errorMsg,
		Message: details,
	})
}
