package tag

import "context"

// UseCase defines the business logic interface for the tag domain.
type UseCase interface {
	Create(ctx context.Context, input CreateTagInput) (CreateTagOutput, error)
	List(ctx context.Context) (ListTagsOutput, error)
	Update(ctx context.Context, input UpdateTagInput) (UpdateTagOutput, error)
	Delete(ctx context.Context, id string) error

	// Vocabulary returns the ordered list of tag names the resolution engine
	// may use. The list is cached and the cache entry is replaced atomically
	// on any tag mutation.
	Vocabulary(ctx context.Context) ([]string, error)
}
