// Package catalog holds the fixed organizational-group catalogs used
// both for post-target validation and as the universe for group
// scoring. The catalogs are loaded once at process start and are
// immutable afterwards.
package catalog

// Group types recognised by the platform.
const (
	TypeDepartment = "Department"
	TypeClub       = "Club"
	TypeHouse      = "House"
)

// Entry identifies a single group in the catalog.
type Entry struct {
	Type string
	Name string
}

// Catalog is the set of valid organizational groups.
type Catalog struct {
	departments []string
	clubs       []string
	houses      []string
}

// Default returns the school's group catalog.
func Default() *Catalog {
	return &Catalog{
		departments: []string{
			"Physics", "Chemistry", "Computer", "Maths", "Kitchen", "School Management Team",
		},
		clubs: []string{
			"ARC Club", "Maths Club", "Science Club", "Leo Club", "Interact Club", "Social Service Club", "YRC Club",
		},
		houses: []string{
			"Gaurishankhar House", "Choyu House", "Byasrishi House", "Ratnachuli House",
		},
	}
}

// Names returns the group names for a given type, or nil for an
// unknown type. The returned slice is a copy.
func (c *Catalog) Names(groupType string) []string {
	var src []string
	switch groupType {
	case TypeDepartment:
		src = c.departments
	case TypeClub:
		src = c.clubs
	case TypeHouse:
		src = c.houses
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// Valid reports whether the name belongs to the catalog for the given
// group type.
func (c *Catalog) Valid(groupType, name string) bool {
	var src []string
	switch groupType {
	case TypeDepartment:
		src = c.departments
	case TypeClub:
		src = c.clubs
	case TypeHouse:
		src = c.houses
	default:
		return false
	}
	for _, n := range src {
		if n == name {
			return true
		}
	}
	return false
}

// Entries returns every group in catalog order: departments, then
// clubs, then houses.
func (c *Catalog) Entries() []Entry {
	entries := make([]Entry, 0, len(c.departments)+len(c.clubs)+len(c.houses))
	for _, n := range c.departments {
		entries = append(entries, Entry{Type: TypeDepartment, Name: n})
	}
	for _, n := range c.clubs {
		entries = append(entries, Entry{Type: TypeClub, Name: n})
	}
	for _, n := range c.houses {
		entries = append(entries, Entry{Type: TypeHouse, Name: n})
	}
	return entries
}
