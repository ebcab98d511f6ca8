package ordering

import (
	"profile-exporter/core/utils"
	"profile-exporter/feature/profile/models"
)

// Direction is the sort direction of a single key.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Key is one (direction, key) element of a composite ordering.
type Key[T any] struct {
	Direction Direction
	Value     func(T) any
}

// Asc returns an ascending key.
func Asc[T any](value func(T) any) Key[T] {
	return Key[T]{Direction: Ascending, Value: value}
}

// Desc returns a descending key.
func Desc[T any](value func(T) any) Key[T] {
	return Key[T]{Direction: Descending, Value: value}
}

// By composes keys into a comparator. Keys are evaluated left to right and
// the first non-zero comparison decides.
func By[T any](keys ...Key[T]) func(a, b T) int {
	return func(a, b T) int {
		for _, k := range keys {
			c := utils.Compare(k.Value(a), k.Value(b))
			if c == 0 {
				continue
			}
			if k.Direction == Descending {
				return -c
			}
			return c
		}
		return 0
	}
}

func scalar(s models.Scalar) any {
	return s.Value()
}
