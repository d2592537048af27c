package models

import (
	"time"

	"gorm.io/gorm"
)

// Expense 消费记录模型
type Expense struct {
	ID                 uint           `json:"id" gorm:"primaryKey"`
	Amount             float64        `json:"amount" gorm:"type:decimal(10,2);not null"`
	Category           string         `json:"category" gorm:"size:50;not null;index"`
	Description        string         `json:"description" gorm:"size:200;not null"`
	Date               time.Time      `json:"date" gorm:"not null;index"`
	PaymentMethod      string         `json:"paymentMethod" gorm:"size:20;not null;default:Cash"`
	Tags               TagList        `json:"tags" gorm:"size:255"`
	Notes              string         `json:"notes" gorm:"size:255"`
	IsRecurring        bool           `json:"isRecurring"`
	RecurringFrequency string         `json:"recurringFrequency" gorm:"size:10;default:none"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}

// TableName 设置表名
func (Expense) TableName() string {
	return "expenses"
}

// PaymentMethod 支付方式常量
const (
	PaymentCash       = "Cash"
	PaymentCard       = "Card"
	PaymentUPI        = "UPI"
	PaymentNetBanking = "Net Banking"
	PaymentOther      = "Other"
)

// RecurringFrequency 周期频率常量
const (
	FrequencyWeekly  = "weekly"
	FrequencyMonthly = "monthly"
	FrequencyYearly  = "yearly"
	FrequencyNone    = "none"
)

// PaymentMethods 获取所有支付方式
func PaymentMethods() []string {
	return []string{
		PaymentCash,
		PaymentCard,
		PaymentUPI,
		PaymentNetBanking,
		PaymentOther,
	}
}

// ValidPaymentMethod 校验支付方式是否合法
func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods() {
		if m == method {
			return true
		}
	}
	return false
}

// ValidFrequency 校验周期频率是否合法
func ValidFrequency(freq string) bool {
	switch freq {
	case FrequencyWeekly, FrequencyMonthly, FrequencyYearly, FrequencyNone:
		return true
	}
	return false
}
