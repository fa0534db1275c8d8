package handler

import (
	"encoding/json"
	"net/http"
)

// writeJSON 写出JSON响应
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError 写出统一的错误响应
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{
		"status": "error",
		"error":  message,
	})
}
