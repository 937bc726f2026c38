package models

// NoTimeOut is the sentinel stored when a log entry has no recorded end time.
const NoTimeOut = "no_time_out"

// LogEntry is an append-only duty activity record. The surrogate key is the
// sole authority for recency ordering within a company; the zero-padded
// date/time strings sort lexicographically but are never used for ranking.
type LogEntry struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Date    string `gorm:"size:8;not null;index" json:"date"`
	Time    string `gorm:"size:4;not null" json:"time"`
	TimeOut string `gorm:"size:16;not null" json:"timeOut"`
	Name    string `gorm:"size:128;not null" json:"name"`
	Message string `gorm:"type:text" json:"message"`
	Action  string `gorm:"size:64;not null" json:"action"`
	Company string `gorm:"size:64;not null;index" json:"company"`
}
