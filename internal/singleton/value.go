package singleton

import (
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrEmptyPayload   = errors.New("singleton: empty payload")
	ErrInvalidPayload = errors.New("singleton: payload is not valid utf-8")
)

// Value is the object every variant hands out. Callers share one *Value per
// variant; two values are the same singleton only if the pointers are equal.
type Value struct {
	id    uuid.UUID
	value string
}

func NewValue(payload string) *Value {
	return &Value{id: uuid.New(), value: payload}
}

// DecodeValue builds a Value from a raw byte payload.
func DecodeValue(raw []byte) (*Value, error) {
	if len(raw) == 0 {
		return nil, ErrEmptyPayload
	}
	if !utf8.Valid(raw) {
		return nil, errors.Wrapf(ErrInvalidPayload, "%q", raw)
	}
	return NewValue(string(raw)), nil
}

func (v *Value) ID() uuid.UUID { return v.id }

func (v *Value) String() string { return v.value }
