package resolver

import "context"

// UseCase turns free text into a chronologically ordered sequence of
// proposed events, using one extraction call with a bounded tool loop.
type UseCase interface {
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}
