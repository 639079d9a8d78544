package graph

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind is returned when a node kind name cannot be parsed.
	ErrUnknownKind = errors.New("unknown node kind")

	// ErrUnknownDirection is returned when an edge direction name cannot be parsed.
	ErrUnknownDirection = errors.New("unknown edge direction")
)

// NodeKind classifies a node as a value or a relationship.
type NodeKind int

const (
	// KindValue marks a node holding a value.
	KindValue NodeKind = iota
	// KindRelationship marks a node relating values to each other.
	KindRelationship
)

// String returns the canonical lowercase name of the kind.
func (k NodeKind) String() string {
	switch k {
	case KindValue:
		return "value"
	case KindRelationship:
		return "relationship"
	default:
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k NodeKind) MarshalText() ([]byte, error) {
	switch k {
	case KindValue, KindRelationship:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *NodeKind) UnmarshalText(text []byte) error {
	parsed, err := ParseNodeKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseNodeKind parses "value" or "relationship" (case-insensitive, "v" and
// "r" accepted as short forms).
func ParseNodeKind(s string) (NodeKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value", "v":
		return KindValue, nil
	case "relationship", "rel", "r":
		return KindRelationship, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Direction selects how an edge is drawn, independently of its stored
// source and target.
type Direction int

const (
	// ValueToRel draws an arrowhead at the target end.
	ValueToRel Direction = iota
	// RelToVal draws an arrowhead at the source end.
	RelToVal
	// Undirected draws no arrowheads.
	Undirected
	// Bidirectional draws arrowheads at both ends.
	Bidirectional
)

// Directions lists every direction in declaration order.
var Directions = []Direction{ValueToRel, RelToVal, Undirected, Bidirectional}

// String returns the canonical snake_case name of the direction.
func (d Direction) String() string {
	switch d {
	case ValueToRel:
		return "value_to_rel"
	case RelToVal:
		return "rel_to_val"
	case Undirected:
		return "undirected"
	case Bidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Arrows reports which ends of the edge carry an arrowhead. RelToVal points
// backwards along the stored edge, so its arrow sits on the start marker.
func (d Direction) Arrows() (start, end bool) {
	switch d {
	case ValueToRel:
		return false, true
	case RelToVal:
		return true, false
	case Bidirectional:
		return true, true
	default:
		return false, false
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	switch d {
	case ValueToRel, RelToVal, Undirected, Bidirectional:
		return []byte(d.String()), nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection parses a direction name. Besides the canonical names it
// accepts the short forms vtr, rtv, und and bi.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value_to_rel", "vtr":
		return ValueToRel, nil
	case "rel_to_val", "rtv":
		return RelToVal, nil
	case "undirected", "und":
		return Undirected, nil
	case "bidirectional", "bi":
		return Bidirectional, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}
