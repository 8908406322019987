package model

// EmployeeRecord is a read-only roster entry supplied by an external
// directory source. This subsystem never mutates or persists it.
type EmployeeRecord struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Active    bool   `json:"active"`
}
