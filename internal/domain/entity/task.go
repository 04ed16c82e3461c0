package entity

// Task unidad de trabajo asignable a un turno (riego, poda, cosecha...).
type Task struct {
	ID          int64
	Nombre      string
	Descripcion *string
	Activo      bool
}
