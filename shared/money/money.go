// Package money implements fixed-point currency arithmetic in integer cents.
// Itemized booking costs are summed in minor units so repeated addition never
// accumulates floating-point error.
package money

import (
	"fmt"
	"strconv"
	"strings"
)

// Cents is a USD amount in minor units.
type Cents int64

const centsPerDollar = 100

// FromDollars builds an amount from whole dollars.
func FromDollars(dollars int64) Cents {
	return Cents(dollars * centsPerDollar)
}

// Parse converts a decimal price string as returned by the commerce platform
// ("32.00", "7.99", "22") into cents.
func Parse(s string) (Cents, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")

	dollars, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}

	cents := int64(0)
	if frac != "" {
		if len(frac) > 2 {
			frac = frac[:2]
		}
		for len(frac) < 2 {
			frac += "0"
		}

		cents, err = strconv.ParseInt(frac, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid amount %q: %w", s, err)
		}
	}

	total := dollars*centsPerDollar + cents
	if negative {
		total = -total
	}

	return Cents(total), nil
}

// Mul multiplies the amount by an integer quantity.
func (c Cents) Mul(quantity int) Cents {
	return c * Cents(quantity)
}

// Percent applies a percentage expressed in basis points, rounding half up to
// the nearest cent. 825 basis points is 8.25%.
func (c Cents) Percent(basisPoints int64) Cents {
	scaled := int64(c) * basisPoints

	if scaled >= 0 {
		return Cents((scaled + 5000) / 10000)
	}

	return Cents((scaled - 5000) / 10000)
}

// String formats the amount as a plain decimal with two digits, e.g. "256.00".
func (c Cents) String() string {
	value := int64(c)
	sign := ""

	if value < 0 {
		sign = "-"
		value = -value
	}

	return fmt.Sprintf("%s%d.%02d", sign, value/centsPerDollar, value%centsPerDollar)
}

// MarshalJSON emits the decimal string form so API clients never see raw minor units.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(c.String())), nil
}

// UnmarshalJSON accepts the decimal string form.
func (c *Cents) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("invalid money literal %s: %w", data, err)
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*c = parsed

	return nil
}
