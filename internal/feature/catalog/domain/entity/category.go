package entity

// Category groups questions. Every question belongs to exactly one category.
type Category struct {
	Timestamped

	name string
}

func NewCategory(name string) Category {
	return Category{name: name}
}

func (c Category) Name() string { return c.name }

func (c *Category) SetName(name string) { c.name = name }

// Equal reports whether both categories have the same id and name.
func (c Category) Equal(other Category) bool {
	return c.ID() == other.ID() && c.name == other.name
}
