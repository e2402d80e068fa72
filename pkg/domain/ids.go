package domain

// Entity kinds used in identifier validation and not-found errors.
const (
	KindProject    = "Project"
	KindSubProject = "SubProject"
	KindTask       = "Task"
	KindTimeEntry  = "Time Entry"
)

// ValidateID rejects non-positive identifiers with the message "<Kind> ID must be valid".
func ValidateID(kind string, id int64) error {
	if id <= 0 {
		return InvalidArgument(kind + " ID must be valid")
	}
	return nil
}
