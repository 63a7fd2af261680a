package payload

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jellydator/validation"
)

// Decoder decodes a JSON request body and validates it when the target
// payload is validatable.
type Decoder struct{}

func (d Decoder) DecodeJSONPayload(r *http.Request, object any) error {
	decoder := json.NewDecoder(r.Body)
	defer r.Body.Close()
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(object); err != nil {
		return fmt.Errorf("decoding json payload: %w", err)
	}

	return d.validatePayload(object)
}

func (d Decoder) validatePayload(object any) error {
	v, ok := object.(validation.Validatable)
	if !ok {
		// nothing to validate
		return nil
	}

	if err := v.Validate(); err != nil {
		return fmt.Errorf("validating payload: %w", err)
	}

	return nil
}
