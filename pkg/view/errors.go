package view

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/aleksaelezovic/ontoview/pkg/rdf"
)

// Error kinds. Every error returned by this package and by the facades built on it
// matches exactly one of these via errors.Is.
var (
	// ErrConversion: the requested view type does not match the node shape.
	ErrConversion = errors.New("conversion failed")
	// ErrCreation: graph mutation requested but not permitted for this node and type.
	ErrCreation = errors.New("creation not permitted")
	// ErrUnsupported: the operation is not offered by this instantiator or factory.
	ErrUnsupported = errors.New("unsupported operation")
	// ErrUnsupportedType: no factory is registered for the requested type.
	ErrUnsupportedType = errors.New("unsupported type")
	// ErrIllegalState: an invariant violation found at runtime.
	ErrIllegalState = errors.New("illegal state")
	// ErrIllegalArgument: invalid caller-supplied configuration.
	ErrIllegalArgument = errors.New("illegal argument")
	// ErrMissingData: a mandatory edge of a construct is absent.
	ErrMissingData = errors.New("required data missing")
)

// ConversionError reports that a node cannot be viewed as a type.
// Composite factories attach the failures of every alternative they tried.
type ConversionError struct {
	Node       rdf.Term
	Type       *Type
	Suppressed []error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("cannot convert %s to %s", e.Node, e.Type)
	if n := len(e.Suppressed); n > 0 {
		msg += fmt.Sprintf(" (%d alternatives failed)", n)
	}
	return msg
}

// Is makes every ConversionError match ErrConversion.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// Unwrap exposes the suppressed alternative failures.
func (e *ConversionError) Unwrap() []error {
	return e.Suppressed
}

// CreationError reports that a node cannot be created in the graph as a type.
type CreationError struct {
	Node rdf.Term
	Type *Type
}

func (e *CreationError) Error() string {
	return fmt.Sprintf("cannot create %s as %s in the graph", e.Node, e.Type)
}

// Is makes every CreationError match ErrCreation.
func (e *CreationError) Is(target error) bool {
	return target == ErrCreation
}

// MissingData builds an ErrMissingData error for the edge (node, predicate, ?).
func MissingData(node, predicate rdf.Term) error {
	return errors.Wrapf(ErrMissingData, "no %s value for %s", predicate, node)
}

// IllegalState builds an ErrIllegalState error.
func IllegalState(format string, args ...any) error {
	return errors.Wrapf(ErrIllegalState, format, args...)
}

func illegalArgument(format string, args ...any) error {
	return errors.Wrapf(ErrIllegalArgument, format, args...)
}
