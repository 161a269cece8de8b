package transform

import (
	"errors"
	"fmt"

	"github.com/bethropolis/restyle/internal/logger"
	"github.com/bethropolis/restyle/internal/styled"
	"github.com/bethropolis/restyle/internal/types"
)

// ErrContractViolation marks programming errors in a host or a transformer.
var ErrContractViolation = errors.New("transform contract violation")

// ContractError describes a contract violation. It is raised with panic:
// the inputs are fully host-controlled, so a violation means the program is
// already in an invalid state.
type ContractError struct {
	Transformer string // empty for host-side violations
	Reason      string
}

func (e *ContractError) Error() string {
	if e.Transformer == "" {
		return fmt.Sprintf("%v: %s", ErrContractViolation, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrContractViolation, e.Transformer, e.Reason)
}

func (e *ContractError) Unwrap() error {
	return ErrContractViolation
}

func violate(transformer, format string, args ...any) {
	err := &ContractError{Transformer: transformer, Reason: fmt.Sprintf(format, args...)}
	logger.Errorf("%v", err)
	panic(err)
}

// MustValidate panics with a ContractError when text or sel is nil, or the
// selection does not fit the text.
func MustValidate(text *styled.Text, sel *types.Selection) {
	if text == nil {
		violate("", "nil text; pass an empty Text instead")
	}
	if sel == nil {
		violate("", "nil selection pointer; pass types.None() for hosts without a caret")
	}
	if r, ok := sel.Get(); ok && !r.Valid(text.Len()) {
		violate("", "selection %v out of bounds for text of length %d", r, text.Len())
	}
}

// checked verifies a transformer's postconditions on every call.
type checked struct {
	inner Transformer
}

// Checked wraps t so that every call validates its inputs and verifies the
// result: a false return must leave text and selection identical, a true
// return must come with an actual modification, and the resulting text and
// selection must satisfy their invariants. Violations panic with a
// ContractError. The wrapper snapshots the buffer on every call.
func Checked(t Transformer) Transformer {
	if c, ok := t.(checked); ok {
		return c
	}
	return checked{inner: t}
}

func (c checked) Name() string {
	return Name(c.inner)
}

func (c checked) Transform(text *styled.Text, sel *types.Selection) bool {
	MustValidate(text, sel)
	name := Name(c.inner)
	before := text.Clone()
	selBefore := *sel

	changed := c.inner.Transform(text, sel)

	if !changed {
		if !text.Equal(before) {
			violate(name, "reported no change but modified the text")
		}
		if *sel != selBefore {
			violate(name, "reported no change but moved the selection from %v to %v", selBefore, *sel)
		}
		return false
	}

	if text.Equal(before) {
		violate(name, "reported a change but left the text untouched")
	}
	if err := text.Validate(); err != nil {
		violate(name, "broke run invariants: %v", err)
	}
	if sel.Present() != selBefore.Present() {
		violate(name, "changed selection presence from %v to %v", selBefore, *sel)
	}
	if r, ok := sel.Get(); ok && !r.Valid(text.Len()) {
		violate(name, "left selection %v out of bounds for text of length %d", r, text.Len())
	}
	return true
}
