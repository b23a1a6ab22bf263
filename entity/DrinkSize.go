package entity

import "fmt"

// DrinkSize is the cup size of a configured drink. Food lines leave it empty.
type DrinkSize string

const (
	SizeSmall  DrinkSize = "SMALL"
	SizeMedium DrinkSize = "MEDIUM"
	SizeLarge  DrinkSize = "LARGE"
)

func ParseDrinkSize(s string) (DrinkSize, error) {
	switch sz := DrinkSize(s); sz {
	case SizeSmall, SizeMedium, SizeLarge:
		return sz, nil
	}
	return "", fmt.Errorf("unknown drink size %q", s)
}
