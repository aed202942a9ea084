package entity

// UnknownSubjectName etiqueta cuando el sujeto no existe en el registro.
const UnknownSubjectName = "residente desconocido"

// Subject titular de un stock personal (residente). Solo se usa para mensajes legibles.
type Subject struct {
	ID          string
	DisplayName string
	IsActive    bool
}

// Label nombre legible; tolera sujeto nil.
func (s *Subject) Label() string {
	if s == nil || s.DisplayName == "" {
		return UnknownSubjectName
	}
	return s.DisplayName
}
