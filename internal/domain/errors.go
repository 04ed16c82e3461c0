package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmployeeNotFound   = errors.New("empleado no encontrado")
	ErrTaskNotFound       = errors.New("tarea no encontrada")
	ErrScheduleNotFound   = errors.New("horario no encontrado")
	ErrEmailAlreadyExists = errors.New("el correo ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrInvalidReference   = errors.New("referencia inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("permiso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrAlreadyInitialized = errors.New("el sistema ya fue inicializado")
)
