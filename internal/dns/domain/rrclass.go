package domain

// RRClass represents a DNS class (usually IN for Internet).
type RRClass uint16

// DNS Resource Record Class constants
const (
	RRClassIN  RRClass = 1   // IN - Internet
	RRClassCH  RRClass = 3   // CH - Chaos
	RRClassHS  RRClass = 4   // HS - Hesiod
	RRClassANY RRClass = 255 // ANY - Any class (query only)
)

var rrClassNames = map[RRClass]string{
	RRClassIN:  "IN",
	RRClassCH:  "CH",
	RRClassHS:  "HS",
	RRClassANY: "ANY",
}

// IsValid returns true if the RRClass is one of the supported classes.
func (c RRClass) IsValid() bool {
	_, ok := rrClassNames[c]
	return ok
}

// String returns the textual representation of the RRClass.
func (c RRClass) String() string {
	if name, ok := rrClassNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseRRClass converts a string name to an RRClass value.
// Unknown strings yield the zero RRClass, which is not valid.
func ParseRRClass(s string) RRClass {
	for c, name := range rrClassNames {
		if name == s {
			return c
		}
	}
	return 0
}
