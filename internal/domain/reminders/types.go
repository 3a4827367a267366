package reminders

type Status string

const (
	StatusPending Status = "pending"
	StatusTaken   Status = "taken"
	StatusSkipped Status = "skipped"
	StatusOverdue Status = "overdue"
)
