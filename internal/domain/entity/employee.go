package entity

// Employee persona elegible para turnos. No requiere credenciales de acceso.
type Employee struct {
	ID     int64
	Nombre string
	Email  string // único en el store
	Role   Role
}
