package services

import "context"

// NumberingSvc issues journal numbers. Numbers are unique and increase
// monotonically within a scope; a number once issued is never issued again.
type NumberingSvc interface {
	NextNumber(ctx context.Context, scope string) (string, error)
}
