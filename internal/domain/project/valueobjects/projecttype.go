package valueobjects

// ProjectType is the service line a project belongs to. The values are the
// client-facing Spanish labels carried in the data model; the code prefix is
// derived from them when the project code is allocated.
type ProjectType string

const (
	TypeWeb        ProjectType = "Desarrollo Web"
	TypeMobile     ProjectType = "Aplicación Móvil"
	TypeConsulting ProjectType = "Consultoría Tech"
	TypeIntegral   ProjectType = "Solución Integral"
)

var projectTypePrefixes = map[ProjectType]string{
	TypeWeb:        "WEB",
	TypeMobile:     "MOB",
	TypeConsulting: "CON",
	TypeIntegral:   "INT",
}

func (t ProjectType) String() string {
	return string(t)
}

func (t ProjectType) IsValid() bool {
	_, ok := projectTypePrefixes[t]
	return ok
}

// CodePrefix returns the short prefix embedded in project codes; unknown
// types fall back to PRJ.
func (t ProjectType) CodePrefix() string {
	if prefix, ok := projectTypePrefixes[t]; ok {
		return prefix
	}
	return "PRJ"
}
