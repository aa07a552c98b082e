package model

// Currency is a 3-letter ISO-4217 style code. Codes are opaque case-sensitive
// tokens; an unknown code yields no rate upstream rather than an error here.
type Currency string

func (c Currency) String() string {
	return string(c)
}
