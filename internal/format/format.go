package format

import (
	"fmt"
	"time"
)

// FormatDate форматирует дату YYYY-MM-DD для сообщений пользователю
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// FormatShiftWindow форматирует дату и окно времени смены
func FormatShiftWindow(date, startTime, endTime string) string {
	return fmt.Sprintf("%s, %s-%s", FormatDate(date), startTime, endTime)
}

// FormatPayRate форматирует почасовую ставку
func FormatPayRate(payPerHour float64) string {
	return fmt.Sprintf("$%.2f/hr", payPerHour)
}

// FormatTotalPay форматирует полную оплату за смену
func FormatTotalPay(total float64) string {
	return fmt.Sprintf("$%.2f", total)
}

// PluralizeApplicants возвращает правильную форму слова "applicant"
func PluralizeApplicants(count int) string {
	if count == 1 {
		return "applicant"
	}
	return "applicants"
}
