package enums

import "fmt"

// MenuTrend captures the sales direction of a menu item.
type MenuTrend string

const (
	MenuTrendUp     MenuTrend = "up"
	MenuTrendDown   MenuTrend = "down"
	MenuTrendStable MenuTrend = "stable"
)

var validMenuTrends = []MenuTrend{
	MenuTrendUp,
	MenuTrendDown,
	MenuTrendStable,
}

// String implements fmt.Stringer.
func (s MenuTrend) String() string {
	return string(s)
}

// IsValid reports whether the value is a known MenuTrend.
func (s MenuTrend) IsValid() bool {
	for _, candidate := range validMenuTrends {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseMenuTrend converts raw input into a MenuTrend.
func ParseMenuTrend(value string) (MenuTrend, error) {
	for _, candidate := range validMenuTrends {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid menu trend %q", value)
}
