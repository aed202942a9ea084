package entity

// UnknownItemName etiqueta para referencias a artículos que no están en el catálogo.
const UnknownItemName = "artículo desconocido"

// Item entrada del catálogo (gasas, pañales, guantes...).
// MinimumThreshold es el punto de reorden del stock general.
type Item struct {
	ID               string
	Name             string
	Category         string
	Unit             string
	MinimumThreshold int64
}

// DisplayName nombre legible; tolera item nil (referencia huérfana).
func (i *Item) DisplayName() string {
	if i == nil || i.Name == "" {
		return UnknownItemName
	}
	return i.Name
}
