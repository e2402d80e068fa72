package tracking

import (
	"strings"

	"github.com/Laman1911/AS-Calculation/pkg/domain"
)

// SubProject groups tasks inside a project.
type SubProject struct {
	ID          int64  `json:"id"`
	ProjectID   int64  `json:"project_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewSubProject(projectID int64, name, description string) (SubProject, error) {
	sp := SubProject{
		ProjectID:   projectID,
		Name:        strings.TrimSpace(name),
		Description: description,
	}
	if err := sp.Validate(); err != nil {
		return SubProject{}, err
	}
	return sp, nil
}

func (sp *SubProject) Validate() error {
	if err := domain.ValidateID(domain.KindProject, sp.ProjectID); err != nil {
		return err
	}
	if strings.TrimSpace(sp.Name) == "" {
		return domain.InvalidArgument("Name cannot be empty")
	}
	return nil
}
