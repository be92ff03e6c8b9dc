package services

import (
	"encoding/json"
	"fmt"

	"ledgerflow/internal/dto"
	apperrors "ledgerflow/internal/errors"
	"ledgerflow/internal/models"
	"ledgerflow/internal/validation"
)

// Decoder parses an inbound envelope, checks the operation kind and validates
// the transaction payload. It has no persistence side effects.
type Decoder struct {
	validator *validation.Validator
}

// NewDecoder creates a new envelope decoder
func NewDecoder(validator *validation.Validator) DecoderInterface {
	return &Decoder{validator: validator}
}

// Decode parses and validates one envelope. An operation other than CREATE
// returns ErrUnsupportedOperation, the only failure that still acknowledges
// the message. Malformed or incomplete payloads return a ValidationError,
// which suppresses acknowledgment.
func (d *Decoder) Decode(payload []byte) (*dto.TransactionEvent, error) {
	var event dto.TransactionEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, apperrors.NewValidationError(apperrors.EventMalformedEnvelope, err.Error())
	}

	if event.Operation != models.OperationCreate {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnsupportedOperation, event.Operation)
	}

	if event.OwnerID == 0 {
		return nil, apperrors.NewValidationError(apperrors.EventValidationFailed, "ownerId: failed required validation")
	}

	if err := d.validator.Validate(&event); err != nil {
		details := validation.FieldErrors(err)
		if details == nil {
			details = []string{err.Error()}
		}
		return nil, apperrors.NewValidationError(apperrors.EventValidationFailed, details...)
	}

	return &event, nil
}
