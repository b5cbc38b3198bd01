package values

import (
	"fmt"
	"strings"
)

// CompanySize classifies an organization by the EU SME size bands.
type CompanySize string

const (
	SizeMicro  CompanySize = "micro"
	SizeSmall  CompanySize = "small"
	SizeMedium CompanySize = "medium"
	SizeLarge  CompanySize = "large"
)

var companySizeOrder = map[CompanySize]int{
	SizeMicro:  0,
	SizeSmall:  1,
	SizeMedium: 2,
	SizeLarge:  3,
}

// NewCompanySize parses and validates a size class
func NewCompanySize(s string) (CompanySize, error) {
	size := CompanySize(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := companySizeOrder[size]; !ok {
		return "", fmt.Errorf("unknown company size: %q", s)
	}
	return size, nil
}

// IsValid reports whether the size is one of the four bands
func (s CompanySize) IsValid() bool {
	_, ok := companySizeOrder[s]
	return ok
}

// Ord returns the ordinal position (micro=0 .. large=3)
func (s CompanySize) Ord() int {
	return companySizeOrder[s]
}

// AtLeast reports whether s is the given size band or larger
func (s CompanySize) AtLeast(other CompanySize) bool {
	return s.Ord() >= other.Ord()
}

func (s CompanySize) String() string {
	return string(s)
}
