package models

// Image is an inspection photo stored with its raw payload. Date and time are
// assigned server-side at insertion; records are immutable afterwards.
type Image struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Name      string `gorm:"size:255;not null" json:"name"`
	Company   string `gorm:"size:64;not null;index:idx_images_company_date" json:"company"`
	ImageData []byte `gorm:"not null" json:"-"`
	Date      string `gorm:"size:8;not null;index:idx_images_company_date" json:"date"`
	Time      string `gorm:"size:4;not null" json:"time"`
}

// InspectionComment stores free-text inspection feedback for a company.
type InspectionComment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Date      string `gorm:"size:8;not null;index:idx_comments_company_date" json:"date"`
	Time      string `gorm:"size:4;not null" json:"time"`
	CadetName string `gorm:"column:cadet_name;size:128;not null" json:"cadet_name"`
	Comment   string `gorm:"type:text;not null" json:"comment"`
	Company   string `gorm:"size:64;not null;index:idx_comments_company_date" json:"company"`
}
