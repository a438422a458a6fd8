package domain

// Supervisor approves bookings of the students assigned to them
type Supervisor struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Department string
	Budget     float64
}

// Student requests bookings; every student has exactly one assigned supervisor
type Student struct {
	ID           string
	Name         string
	Email        string
	Department   string
	SupervisorID string
}
