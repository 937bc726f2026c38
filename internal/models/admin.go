package models

// AdminUser is a pre-provisioned allow-list row mapping an email address to
// admin privilege. The service only ever checks existence; rows are managed
// out of band.
type AdminUser struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"size:160;not null;uniqueIndex" json:"email"`
}
