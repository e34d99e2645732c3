package valueobjects

import "fmt"

type Status string

const (
	StatusNew        Status = "new"
	StatusInProgress Status = "in_progress"
	StatusWaiting    Status = "waiting"
	StatusResolved   Status = "resolved"
	StatusClosed     Status = "closed"
)

var validStatuses = map[Status]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusWaiting:    true,
	StatusResolved:   true,
	StatusClosed:     true,
}

var statusLabels = map[Status]string{
	StatusNew:        "New",
	StatusInProgress: "In Progress",
	StatusWaiting:    "Waiting",
	StatusResolved:   "Resolved",
	StatusClosed:     "Closed",
}

// AllStatuses lists the enumerated statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{StatusNew, StatusInProgress, StatusWaiting, StatusResolved, StatusClosed}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return validStatuses[s]
}

// Label returns the display label used by list views and the status endpoint.
func (s Status) Label() string {
	return statusLabels[s]
}

func (s Status) IsNew() bool {
	return s == StatusNew
}

func (s Status) IsInProgress() bool {
	return s == StatusInProgress
}

func (s Status) IsWaiting() bool {
	return s == StatusWaiting
}

func (s Status) IsResolved() bool {
	return s == StatusResolved
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return st, nil
}
