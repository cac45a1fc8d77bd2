// Package outbound defines the interfaces for outbound ports (secondary/driven adapters).
// These are the interfaces the application uses to reach storage and caches.
package outbound

import (
	"context"
	"time"

	"github.com/brewista/catalog/internal/domain/barista"
	"github.com/brewista/catalog/internal/domain/equipment"
	"github.com/brewista/catalog/internal/domain/recipe"
	"github.com/brewista/catalog/internal/domain/tag"
)

// SortField enumerates the sortable recipe fields
type SortField string

const (
	SortByID          SortField = "id"
	SortByTitle       SortField = "title"
	SortByViewCount   SortField = "viewCount"
	SortByCreatedAt   SortField = "createdAt"
	SortByUpdatedAt   SortField = "updatedAt"
	SortByPublishedAt SortField = "publishedAt"
)

// SortOrder is the sort direction
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// Range is a closed numeric interval; a nil bound leaves that side open.
// A recipe whose field is absent fails any range filter on that field.
type Range struct {
	Min *float64
	Max *float64
}

// SearchCriteria defines the recipe search predicate. Within one dimension
// the listed values are alternatives (OR); across dimensions the filters
// compose conjunctively (AND).
type SearchCriteria struct {
	Page  int
	Limit int

	Query          string
	RoastLevels    []recipe.RoastLevel
	GrindSizes     []recipe.GrindSize
	EquipmentNames []string
	EquipmentTypes []string
	TagIDs         []int64
	BeanWeight     *Range
	WaterTemp      *Range
	WaterAmount    *Range
	BaristaID      *int64
	IsPublished    *bool

	SortBy    SortField
	SortOrder SortOrder
}

// RecipeRepository defines the interface for recipe persistence.
// Lookups report absence as (nil, nil); errors are reserved for storage
// failures so the use cases can propagate them untouched.
type RecipeRepository interface {
	FindByID(ctx context.Context, id recipe.ID) (*recipe.Recipe, error)

	// FindPublishedByID behaves like FindByID but additionally requires the
	// recipe to be published. Unpublished rows are indistinguishable from
	// absent ones through this method.
	FindPublishedByID(ctx context.Context, id recipe.ID) (*recipe.Recipe, error)

	// Search applies the criteria's filters, sorts and paginates. The second
	// return value is the total match count before pagination.
	Search(ctx context.Context, criteria SearchCriteria) ([]*recipe.Recipe, int, error)

	// FindPublished is Search with IsPublished forced to true, regardless of
	// any caller-supplied value.
	FindPublished(ctx context.Context, criteria SearchCriteria) ([]*recipe.Recipe, int, error)

	// FindByBarista is Search with BaristaID forced to the given id.
	FindByBarista(ctx context.Context, baristaID int64, criteria SearchCriteria) ([]*recipe.Recipe, int, error)

	Exists(ctx context.Context, id recipe.ID) (bool, error)

	// FindByIDs is a batch lookup; ids without a match are silently omitted.
	FindByIDs(ctx context.Context, ids []recipe.ID) ([]*recipe.Recipe, error)

	// Count applies the same filter semantics as Search without pagination.
	Count(ctx context.Context, criteria SearchCriteria) (int, error)

	// IncrementViewCount bumps the persisted counter atomically at the
	// storage layer (never read-modify-write), so concurrent detail fetches
	// cannot lose updates.
	IncrementViewCount(ctx context.Context, id recipe.ID) error
}

// EquipmentRepository resolves equipment references in one round trip
type EquipmentRepository interface {
	FindByIDs(ctx context.Context, ids []int64) ([]equipment.Equipment, error)
}

// TagRepository resolves tag references in one round trip
type TagRepository interface {
	FindByIDs(ctx context.Context, ids []int64) ([]tag.Tag, error)
}

// BaristaRepository resolves barista references
type BaristaRepository interface {
	FindByID(ctx context.Context, id int64) (*barista.Barista, error)
	FindByIDs(ctx context.Context, ids []int64) ([]barista.Barista, error)
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)

	// Batch operations
	MGet(ctx context.Context, keys []string) (map[string][]byte, error)
	MSet(ctx context.Context, items map[string][]byte, ttl time.Duration) error
}
