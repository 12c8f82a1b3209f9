package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// maxRequestBody caps request bodies at 25 MB, enough for a base64
// inline image on the upload endpoint.
const maxRequestBody = 25 << 20

// jsonResponse writes data as the JSON body for the given status.
// A nil data writes headers only, for 204 responses.
func jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("encoding response body", "error", err)
	}
}

// jsonError writes the error envelope, {"error": message}.
func jsonError(w http.ResponseWriter, status int, message string) {
	jsonResponse(w, status, map[string]string{"error": message})
}

// decodeJSON reads the request body into target, truncating at
// maxRequestBody so an oversized payload fails to decode.
func decodeJSON(r *http.Request, target any) error {
	defer r.Body.Close()
	return json.NewDecoder(io.LimitReader(r.Body, maxRequestBody)).Decode(target)
}
