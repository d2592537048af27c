package models

import (
	"time"

	"gorm.io/gorm"
)

// Category 消费类别（含每月预算上限，budget=0 表示未设置预算）
type Category struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"size:50;not null;uniqueIndex"`
	Icon        string         `json:"icon" gorm:"size:20;not null"`
	Color       string         `json:"color" gorm:"size:20;not null"` // 颜色代码，如 #ef4444
	Budget      float64        `json:"budget" gorm:"type:decimal(10,2);not null;default:0"`
	Description string         `json:"description" gorm:"size:200"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Category) TableName() string {
	return "categories"
}
