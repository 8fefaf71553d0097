package aba

import (
	"errors"
	"fmt"
)

// ErrInvalidRecord matches every *ValidationError via errors.Is.
var ErrInvalidRecord = errors.New("invalid ABA record")

// RecordKind names the ABA record a validation failure belongs to.
type RecordKind string

const (
	RecordDescriptive  RecordKind = "descriptive"
	RecordDetail       RecordKind = "detail"
	RecordBatchControl RecordKind = "batch control"
)

// ValidationError describes the first invalid field found in a record.
type ValidationError struct {
	Record RecordKind
	Index  int // zero-based transaction index; only meaningful for detail records
	Field  string
	Value  string
	Reason string
	Err    error // underlying cause, e.g. *model.UnknownTransactionCodeError
}

func (e *ValidationError) Error() string {
	record := string(e.Record) + " record"
	if e.Record == RecordDetail {
		record = fmt.Sprintf("detail record %d", e.Index+1)
	}
	return fmt.Sprintf("%s: %s %q is invalid: %s", record, e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidRecord }
