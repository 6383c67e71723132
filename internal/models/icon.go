package models

// Icon names the glyph shown next to a product.
type Icon string

const (
	IconBox     Icon = "box"
	IconRecycle Icon = "recycle"
	IconShield  Icon = "shield"
	IconLeaf    Icon = "leaf"
	IconTree    Icon = "tree"
)

// Glyph maps an icon to its renderable symbol. Unknown values fall back
// to the box glyph.
func (i Icon) Glyph() string {
	switch i {
	case IconRecycle:
		return "♻"
	case IconShield:
		return "🛡"
	case IconLeaf:
		return "🍃"
	case IconTree:
		return "🌲"
	default:
		return "📦"
	}
}

// Valid reports whether i is one of the known icons.
func (i Icon) Valid() bool {
	switch i {
	case IconBox, IconRecycle, IconShield, IconLeaf, IconTree:
		return true
	}
	return false
}
