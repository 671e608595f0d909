package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidArgument is returned for session counts that are negative, too large or not integers
var ErrInvalidArgument = errors.New("invalid argument")

// MaxCount is the largest session count a group may have
const MaxCount = 1 << 16

// Count is a validated, non-negative number of sessions in a topic group
type Count int

// Sequence is the ordered 1..N list of session numbers
type Sequence []int

// NewCount validates n as a session count
func NewCount(n int) (Count, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: session count must be >= 0, got %d", ErrInvalidArgument, n)
	}
	if n > MaxCount {
		return 0, fmt.Errorf("%w: session count must be <= %d, got %d", ErrInvalidArgument, MaxCount, n)
	}
	return Count(n), nil
}

// ParseCount parses a session count from text, rejecting anything that is not
// a plain non-negative integer
func ParseCount(s string) (Count, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: session count %q is not an integer", ErrInvalidArgument, s)
	}
	return NewCount(n)
}

// Int returns the count as a plain int
func (c Count) Int() int {
	return int(c)
}

// Sequence returns 1..c in ascending order
func (c Count) Sequence() Sequence {
	seq := make(Sequence, int(c))
	for i := range seq {
		seq[i] = i + 1
	}
	return seq
}

// UnmarshalYAML accepts only integer scalars
func (c *Count) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode || value.ShortTag() != "!!int" {
		return fmt.Errorf("%w: session count %q at line %d is not an integer",
			ErrInvalidArgument, value.Value, value.Line)
	}
	n, err := ParseCount(value.Value)
	if err != nil {
		return err
	}
	*c = n
	return nil
}
