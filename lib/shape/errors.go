package shape

import (
	"errors"
	"fmt"

	"oss.terrastruct.com/planar/lib/geo"
)

var (
	// ErrCardinality means the vertex count does not fit the shape.
	ErrCardinality    = errors.New("wrong number of vertices")
	// ErrNotRegular means the shape was declared regular but its edges differ in length.
	ErrNotRegular     = errors.New("shape is not regular as declared")
	// ErrRegularity means the shape requires the opposite regularity declaration.
	ErrRegularity     = errors.New("regularity declaration not allowed")
	// ErrRelation means the vertices do not satisfy the shape's side or angle relation.
	ErrRelation       = errors.New("vertices do not form the shape")
	// ErrDegenerate means a measurement is undefined or out of the float range for the shape.
	ErrDegenerate     = geo.ErrDegenerate
	// ErrNotImplemented is returned by metrics the general polygon cannot compute.
	ErrNotImplemented = errors.New("not implemented")
	// ErrUnknownType is returned by NewShape for a type name it does not know.
	ErrUnknownType    = errors.New("unknown shape type")
)

// Error is a validation or computation failure of a single shape.
type Error struct {
	Type string `json:"type"`
	Kind error  `json:"-"`
	Msg  string `json:"message"`
}

func errorf(shapeType string, kind error, msg string, v ...interface{}) error {
	return &Error{
		Type: shapeType,
		Kind: kind,
		Msg:  fmt.Sprintf(msg, v...),
	}
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Kind
}
