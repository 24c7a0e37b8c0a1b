package models

// Theme defines the public menu color themes a business can choose from
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
	ThemeWarm  Theme = "warm"
)

// IsValid checks if the Theme is valid
func (t Theme) IsValid() bool {
	switch t {
	case ThemeDark, ThemeLight, ThemeWarm:
		return true
	}
	return false
}

// AdminRole represents the role a user holds within a business
type AdminRole string

const (
	AdminRoleOwner AdminRole = "owner"
)

// IsValid checks if the AdminRole is valid
func (r AdminRole) IsValid() bool {
	return r == AdminRoleOwner
}

// MoveDirection is the direction of a position swap for categories and items
type MoveDirection string

const (
	MoveUp   MoveDirection = "up"
	MoveDown MoveDirection = "down"
)

// IsValid checks if the MoveDirection is valid
func (d MoveDirection) IsValid() bool {
	return d == MoveUp || d == MoveDown
}
