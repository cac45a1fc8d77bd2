// Package tag holds the tag lookup entity referenced by recipes.
package tag

// Tag is a catalog label attached to recipes
type Tag struct {
	ID   int64
	Name string
	Slug string
}
