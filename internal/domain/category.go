package domain

import "time"

// DefaultCategoryColor is the neutral color used when a category carries
// no display hint, and for the uncategorized sentinel group.
const DefaultCategoryColor = "#94A3B8"

// UncategorizedName is the sentinel group name for entries whose category
// reference is absent or cannot be resolved.
const UncategorizedName = "Uncategorized"

// Category classifies ledger entries. Categories form a two-level tree:
// top-level categories own zero or more subcategories, nothing deeper.
type Category struct {
	ID        string
	Name      string
	Type      Classification
	Color     string
	ParentID  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTopLevel reports whether the category has no parent.
func (c *Category) IsTopLevel() bool {
	return c.ParentID == ""
}

// DisplayColor returns the category color, falling back to the neutral
// default when unset.
func (c *Category) DisplayColor() string {
	if c.Color == "" {
		return DefaultCategoryColor
	}
	return c.Color
}
