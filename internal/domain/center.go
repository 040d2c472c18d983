package domain

// Center represents a lab-partner collection center.
type Center struct {
	ID            string
	Name          string
	Address       string
	Phone         string
	ContactPerson string
	Coordinates   Coordinates
	Status        string
	Route         string
}
