package bank

import (
	"fmt"
	"math/rand"
)

// BuildIBAN returns a demo IBAN in the bank's grouped display format.
// It is a cosmetic identifier only: no checksum is computed and
// uniqueness across accounts is not enforced.
func BuildIBAN() string {
	return fmt.Sprintf("TR90 %04d 1000 2000 3000 4000 %04d",
		1000+rand.Intn(9000), 1000+rand.Intn(9000))
}
