package webutil

import (
	"encoding/json"
	"net/http"

	"teacher_training_api/internal/model"
)

// DecodeJSONBody decodes the request body into dst. Unknown fields are
// ignored so records read back from the API (which carry the synthesized
// "id") can be posted again as-is.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	if r.Body == nil {
		return model.ErrInvalidInput
	}
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return model.ErrInvalidInput
	}
	return nil
}
