package format

import (
	"github.com/3-lines-studio/pagesmith/internal/types"
)

// AddressLines returns the street line followed by "city, region".
// line2, postal code and country are not part of the rendered address.
func AddressLines(addr types.Address) [2]string {
	return [2]string{addr.Line1, Locality(addr)}
}

func Locality(addr types.Address) string {
	return addr.City + ", " + addr.Region
}
