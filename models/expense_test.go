package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidPaymentMethod(t *testing.T) {
	for _, m := range PaymentMethods() {
		assert.True(t, ValidPaymentMethod(m), m)
	}
	assert.False(t, ValidPaymentMethod("Bitcoin"))
	assert.False(t, ValidPaymentMethod(""))
	// 大小写敏感
	assert.False(t, ValidPaymentMethod("cash"))
}

func TestValidFrequency(t *testing.T) {
	assert.True(t, ValidFrequency(FrequencyWeekly))
	assert.True(t, ValidFrequency(FrequencyMonthly))
	assert.True(t, ValidFrequency(FrequencyYearly))
	assert.True(t, ValidFrequency(FrequencyNone))
	assert.False(t, ValidFrequency("daily"))
	assert.False(t, ValidFrequency(""))
}

func TestValidIncomeCategory(t *testing.T) {
	for _, c := range IncomeCategories() {
		assert.True(t, ValidIncomeCategory(c), c)
	}
	assert.False(t, ValidIncomeCategory("Lottery"))
	assert.False(t, ValidIncomeCategory(""))
}
