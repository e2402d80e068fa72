package tracking

// ProjectStatus is the lifecycle stage of a project.
type ProjectStatus string

const (
	StatusPlanned   ProjectStatus = "planned"
	StatusActive    ProjectStatus = "active"
	StatusOnHold    ProjectStatus = "on_hold"
	StatusCompleted ProjectStatus = "completed"
)

// Lifecycle events.
const (
	EventStart    = "start"
	EventPause    = "pause"
	EventResume   = "resume"
	EventComplete = "complete"
	EventReopen   = "reopen"
)

var validEvents = map[ProjectStatus][]string{
	StatusPlanned:   {EventStart},
	StatusActive:    {EventPause, EventComplete},
	StatusOnHold:    {EventResume},
	StatusCompleted: {EventReopen},
}

func (s ProjectStatus) IsValid() bool {
	_, ok := validEvents[s]
	return ok
}

// ValidEvents lists the events accepted in this status.
func (s ProjectStatus) ValidEvents() []string {
	return validEvents[s]
}

func (s ProjectStatus) CanTransitionWith(event string) bool {
	for _, e := range validEvents[s] {
		if e == event {
			return true
		}
	}
	return false
}
