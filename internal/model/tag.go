package model

import "time"

// Tag is a user-defined label. Tag names form the closed vocabulary the
// resolution engine is allowed to use.
type Tag struct {
	ID        string
	Name      string
	Color     string
	CreatedAt time.Time
}
