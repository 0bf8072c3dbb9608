package queue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for a queue kind with no constructor.
var ErrUnknownKind = errors.New("queue: unknown kind")

// Kind names a queue implementation.
type Kind string

const (
	KindArray       Kind = "array"
	KindSlab        Kind = "slab"
	KindChannel     Kind = "channel"
	KindShardedRing Kind = "lfring"
)

// Kinds returns every registered kind in comparison order.
func Kinds() []Kind {
	return []Kind{KindArray, KindSlab, KindChannel, KindShardedRing}
}

// New builds a queue of the given kind with size slots.
func New[T any](kind Kind, size int) (Queue[T], error) {
	switch kind {
	case KindArray:
		return wrap[T](NewDonut[T](size))
	case KindSlab:
		return wrap[T](NewDonutSlab[T](size))
	case KindChannel:
		if size <= 0 {
			return nil, fmt.Errorf("queue: channel size must be positive, got %d", size)
		}
		return NewChannel[T](size), nil
	case KindShardedRing:
		return wrap[T](NewShardedRing[T](size))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// wrap keeps a failed constructor from leaking a typed nil into the interface.
func wrap[T any, Q Queue[T]](q Q, err error) (Queue[T], error) {
	if err != nil {
		return nil, err
	}
	return q, nil
}

// ParseKinds splits a comma separated list. "all" or "" selects every kind.
func ParseKinds(s string) ([]Kind, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "all" {
		return Kinds(), nil
	}

	var kinds []Kind
	for name := range strings.SplitSeq(s, ",") {
		k := Kind(strings.TrimSpace(name))
		if !k.valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, k)
		}
		kinds = append(kinds, k)
	}
	return kinds, nil
}

func (k Kind) valid() bool {
	for _, known := range Kinds() {
		if k == known {
			return true
		}
	}
	return false
}
