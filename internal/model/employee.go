package model

// Employee is a staff member who may handle claims. The items_managed
// counter is maintained out of band and is read-only here; the approval
// workflow deliberately does not increment it.
type Employee struct {
	ID           int64  `json:"employeeID"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Position     string `json:"position"`
	ItemsManaged int    `json:"ItemsManaged"`
}

// StatusMetric is one dashboard bucket of the item metrics report.
type StatusMetric struct {
	Status               string  `json:"Status"`
	TotalItems           int     `json:"TotalItems"`
	AverageDaysUnclaimed float64 `json:"AverageDaysUnclaimed"`
}
