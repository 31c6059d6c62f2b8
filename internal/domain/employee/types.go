package employee

// Type distinguishes the two roster groups the clinic pays. Dentists earn
// per-dentist commission rules; staff share a single service-keyed rule set.
type Type string

const (
	TypeDentist Type = "dentist"
	TypeStaff   Type = "staff"
)

func (t Type) IsValid() bool {
	return t == TypeDentist || t == TypeStaff
}
