package entity

import "time"

// Role rol de un usuario o empleado. Tipo cerrado: se serializa con los mismos
// strings en API y base de datos, pero el código solo compara contra las constantes.
type Role string

const (
	RoleTrabajador    Role = "Trabajador"
	RoleEncargado     Role = "Encargado"
	RoleAdministrador Role = "Administrador"
)

// Valid indica si el rol es uno de los tres conocidos.
func (r Role) Valid() bool {
	switch r {
	case RoleTrabajador, RoleEncargado, RoleAdministrador:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

// User credencial de acceso al sistema. Distinto de Employee: un empleado
// puede no tener usuario, y EmpleadoID es una referencia débil (sin FK,
// puede quedar colgando si se borra el empleado).
type User struct {
	ID           int64
	Email        string // único en el store, clave de login
	Nombre       string
	Role         Role
	PasswordHash string // bcrypt, nunca sale del dominio en proyecciones públicas
	EmpleadoID   *int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
