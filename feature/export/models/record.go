package models

import "time"

// ExportRecord is one saved profile file, kept in the export index.
type ExportRecord struct {
	ID         string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	WizardID   string    `gorm:"column:wizard_id;type:varchar(32);index" json:"wizard_id"`
	WizardName string    `gorm:"column:wizard_name;type:varchar(255)" json:"wizard_name"`
	FileName   string    `gorm:"column:file_name;type:varchar(255)" json:"file_name"`
	Folder     string    `gorm:"column:folder;type:varchar(64)" json:"folder"`
	Size       int64     `gorm:"column:size" json:"size"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ExportRecord) TableName() string {
	return "profile_exports"
}
