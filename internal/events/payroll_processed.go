package events

import "time"

const PayrollProcessedTopic = "payroll.lifecycle.v1"

type PayrollProcessedEvent struct {
	EventType   string    `json:"event_type"`
	PayrollID   string    `json:"payroll_id"`
	EmployeeID  string    `json:"employee_id"`
	PeriodMonth int       `json:"period_month"`
	PeriodYear  int       `json:"period_year"`
	NetPay      int64     `json:"net_pay"`
	OccurredAt  time.Time `json:"occurred_at"`
}
