package repository

// CreateTagOptions holds parameters for inserting a new Tag.
type CreateTagOptions struct {
	Name  string
	Color string
}

// GetOneTagOptions holds filter parameters for fetching a single Tag.
// All non-empty fields are applied as AND conditions.
type GetOneTagOptions struct {
	ID   string
	Name string
}

// UpdateTagOptions holds parameters for updating an existing Tag.
// Empty fields are left unchanged.
type UpdateTagOptions struct {
	ID    string
	Name  string
	Color string
}
