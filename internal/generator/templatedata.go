package generator

// TemplateData holds all data needed by any template
type TemplateData struct {
	Package      string
	Includes     []string
	Declarations []Declaration
	Manual       []string
}

// NewTemplateData creates a new TemplateData structure from a declaration table
func NewTemplateData(table *Table) *TemplateData {
	return &TemplateData{
		Package:      table.Package,
		Includes:     table.Includes,
		Declarations: table.Generated(),
		Manual:       table.Manual(),
	}
}
