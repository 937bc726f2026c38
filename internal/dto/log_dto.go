package dto

// LogCreateRequest is the payload for recording a duty log entry.
type LogCreateRequest struct {
	Company string `json:"company" validate:"required"`
	Message string `json:"message"`
	Name    string `json:"name" validate:"required"`
	Action  string `json:"action" validate:"required"`
}

// PresencePatrolRequest records a patrol whose start time is derived from the
// reported patrol duration.
type PresencePatrolRequest struct {
	Company    string `json:"company" validate:"required"`
	Message    string `json:"message"`
	Name       string `json:"name" validate:"required"`
	Action     string `json:"action" validate:"required"`
	PatrolTime int    `json:"patrolTime" validate:"gte=0"`
}

// LogResponse mirrors a stored log entry.
type LogResponse struct {
	ID      uint   `json:"id"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	TimeOut string `json:"timeOut"`
	Name    string `json:"name"`
	Message string `json:"message"`
	Action  string `json:"action"`
	Company string `json:"company"`
}
