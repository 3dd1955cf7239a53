package models

// StaffMember is a roster entry for payroll and attendance display. Plain
// data store; no invariants beyond a non-empty name.
type StaffMember struct {
	ID         string       `json:"id"`
	Name       string       `json:"name" binding:"required"`
	Role       string       `json:"role"`
	Unit       BusinessUnit `json:"bu"`
	Phone      string       `json:"phone"`
	Salary     float64      `json:"salary"`
	SalaryPaid float64      `json:"salary_paid"`
	Status     string       `json:"status"`
	Attendance int          `json:"attendance"`
	JoinDate   string       `json:"join_date"`
}
