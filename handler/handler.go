package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func Index(w http.ResponseWriter, _ *http.Request) {
	Message(w, http.StatusOK, "ytsum index", fmt.Sprintf("%s %s", http.MethodPost, summarizePath))
}

func Health(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func Message(w http.ResponseWriter, status int, message string, details ...any) {
	JSON(w, status, struct {
		Message string `json:"message"`
		Details []any  `json:"details,omitempty"`
	}{
		Message: message,
		Details: details,
	})
}

// Error writes the error body every failing endpoint returns. message is
// shown to end users and must not contain internal details.
func Error(w http.ResponseWriter, status int, message string, details ...any) {
	JSON(w, status, struct {
		Error   string `json:"error"`
		Details []any  `json:"details,omitempty"`
	}{
		Error:   message,
		Details: details,
	})
}

func JSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	data, marshalErr := json.Marshal(body)
	if marshalErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, `{"error": %q}`, marshalErr.Error())
		return
	}
	w.WriteHeader(status)
	w.Write(data)
}
