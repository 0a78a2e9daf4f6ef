package service

// ConceptValidator reports whether a purpose-of-use code belongs to the
// recognised value set.
type ConceptValidator interface {
	IsValidPurpose(code string) bool
}

// StaticConceptValidator validates purpose codes against a fixed catalog.
type StaticConceptValidator struct {
	codes map[string]struct{}
}

// defaultPurposeCodes is the HL7 purpose-of-use subset the consent manager
// network accepts.
var defaultPurposeCodes = []string{
	"CAREMGT",
	"BTG",
	"PUBHLTH",
	"HPAYMT",
	"DSRCH",
	"PATRQT",
}

// NewStaticConceptValidator builds a validator over the given codes, falling
// back to the default purpose-of-use catalog when none are supplied.
func NewStaticConceptValidator(codes ...string) *StaticConceptValidator {
	if len(codes) == 0 {
		codes = defaultPurposeCodes
	}
	set := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		set[code] = struct{}{}
	}
	return &StaticConceptValidator{codes: set}
}

func (v *StaticConceptValidator) IsValidPurpose(code string) bool {
	_, ok := v.codes[code]
	return ok
}
