package movewire

import (
	"errors"
	"fmt"
	"strings"
)

// MalformedUnionError reports a tagged-union field group that decoded
// with more than one variant populated, or with a variant repeated.
//
// Decode aborts on this error: a message carrying an ambiguous union
// must never surface as a partially populated record.
type MalformedUnionError struct {
	// Union names the field group, e.g. "Transaction.txn_data".
	Union  string
	Reason string
}

func (e *MalformedUnionError) Error() string {
	return fmt.Sprintf("malformed union %s: %s", e.Union, e.Reason)
}

// UnknownVariantError reports a discriminant value with no known variant
// in a context where the forward-compatibility downgrade does not apply.
type UnknownVariantError struct {
	Union string
	Tag   uint64
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %d in %s", e.Tag, e.Union)
}

// ValueOutOfRangeError reports an integer conversion that overflowed its
// target width, such as a 64-bit counter rendered as a decimal string
// that does not fit uint64, or a varint too wide for a uint32 field.
type ValueOutOfRangeError struct {
	// Field describes the destination, e.g. "uint32" or "Block.height".
	Field string
	Value string
}

func (e *ValueOutOfRangeError) Error() string {
	return fmt.Sprintf("value %s out of range for %s", e.Value, e.Field)
}

// RecursionLimitError reports a recursive type descriptor nested beyond
// the decode depth cap. Pathological nesting from untrusted input would
// otherwise exhaust the call stack.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("type descriptor nesting exceeds depth limit %d", e.Limit)
}

// ThresholdError reports a structurally inconsistent multi-signature:
// more signatures than keys, a threshold larger than the key set, or a
// key index out of range. This is a decode-time structural check, made
// before any cryptographic verification is attempted.
type ThresholdError struct {
	// Scheme is the signature scheme, e.g. "MultiEd25519Signature".
	Scheme string
	Reason string
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("%s: threshold invariant violated: %s", e.Scheme, e.Reason)
}

// BlockConsistencyError reports a block whose transactions disagree with
// the block's own metadata (height or chain id). A consumer indexing by
// block height cannot tolerate cross-block contamination, so these are
// never silently accepted.
type BlockConsistencyError struct {
	BlockHeight uint64
	Reason      string
}

func (e *BlockConsistencyError) Error() string {
	return fmt.Sprintf("block %d: %s", e.BlockHeight, e.Reason)
}

// ValidationErrors aggregates every violation found in one validation
// pass. Validation collects rather than short-circuits, so a single
// malformed transaction does not hide independent defects elsewhere in
// the same block.
type ValidationErrors []error

func (e ValidationErrors) Error() string {
	if len(e) == 1 {
		return e[0].Error()
	}
	msgs := make([]string, len(e))
	for i, err := range e {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d validation errors: %s", len(e), strings.Join(msgs, "; "))
}

// Unwrap exposes the collected errors to errors.Is / errors.As.
func (e ValidationErrors) Unwrap() []error { return e }

// AsValidation checks whether an error is a ValidationErrors aggregate.
func AsValidation(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// AsThreshold checks whether an error is (or wraps) a ThresholdError.
func AsThreshold(err error) (*ThresholdError, bool) {
	var t *ThresholdError
	if errors.As(err, &t) {
		return t, true
	}
	return nil, false
}
