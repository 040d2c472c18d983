package domain

// DriverStatus represents the status of a courier driver.
type DriverStatus string

// Driver represents one courier device/identity. PushToken is the opaque
// per-device address used by the push gateway; an empty value means the driver
// is not notifiable.
type Driver struct {
	ID        string
	Name      string
	Route     string
	PushToken string
	Status    DriverStatus
}

// Notifiable reports whether the driver has a registered push address.
func (d Driver) Notifiable() bool {
	return d.PushToken != ""
}
