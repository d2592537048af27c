package models

import (
	"time"

	"gorm.io/gorm"
)

// Income 收入记录模型
type Income struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Amount             float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Source             string         `json:"source" gorm:"size:100;not null"`
	Description        string         `json:"description" gorm:"size:200"`
	Date               time.Time      `json:"date" gorm:"not null;index"`
	Category           string         `json:"category" gorm:"size:50;not null;default:Other;index"`
	IsRecurring        bool           `json:"isRecurring"`
	RecurringFrequency string         `json:"recurringFrequency" gorm:"size:10;default:none"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Income) TableName() string {
	return "incomes"
}

// 收入类别常量
const (
	IncomeSalary     = "Salary"
	IncomeFreelance  = "Freelance"
	IncomeInvestment = "Investment"
	IncomeBusiness   = "Business"
	IncomeGift       = "Gift"
	IncomeOther      = "Other"
)

// IncomeCategories 获取所有收入类别
func IncomeCategories() []string {
	return []string{
		IncomeSalary,
		IncomeFreelance,
		IncomeInvestment,
		IncomeBusiness,
		IncomeGift,
		IncomeOther,
	}
}

// ValidIncomeCategory 校验收入类别是否合法
func ValidIncomeCategory(category string) bool {
	for _, c := range IncomeCategories() {
		if c == category {
			return true
		}
	}
	return false
}
