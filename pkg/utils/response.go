package utils

import (
	"encoding/json"
	"net/http"

	"billing-backend/pkg/apperror"
)

// JSON writes data as an application/json response.
func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Error maps an error onto the wire shape of its taxonomy class:
// 400 -> {message, fields}, 404 -> {message}, anything else ->
// 500 {error} with the raw backend message passed through.
func Error(w http.ResponseWriter, err error) {
	appErr := apperror.Get(err)
	switch appErr.Code {
	case http.StatusBadRequest:
		body := map[string]interface{}{"message": appErr.Message}
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
		JSON(w, http.StatusBadRequest, body)
	case http.StatusNotFound:
		JSON(w, http.StatusNotFound, map[string]string{"message": appErr.Message})
	default:
		JSON(w, appErr.Code, map[string]string{"error": appErr.Message})
	}
}
