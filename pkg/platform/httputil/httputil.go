package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "lastproject/pkg/domain-errors"
)

var statusByCode = map[dErrors.Code]int{
	dErrors.CodeBadRequest: http.StatusBadRequest,
	dErrors.CodeNotFound:   http.StatusNotFound,
	dErrors.CodeInternal:   http.StatusInternalServerError,
}

// WriteJSON writes v as a JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps a coded error to a status. Internal errors never carry a
// description to the client.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status, ok := statusByCode[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	body := map[string]string{"error": string(code)}
	if code != dErrors.CodeInternal {
		var coded *dErrors.Error
		if errors.As(err, &coded) {
			body["error_description"] = coded.Message
		}
	}
	WriteJSON(w, status, body)
}
