package generator

import (
	"fmt"
	"strings"
	"text/template"
)

// GetTemplateFuncMap Helper functions for templates
func GetTemplateFuncMap() template.FuncMap {
	return template.FuncMap{
		"goParams":            goParams,
		"cArgs":               cArgs,
		"goReturn":            goReturn,
		"generateWrapperBody": generateWrapperBody,
		"generateWrapperDoc":  generateWrapperDoc,
		"generateIncludes":    generateIncludes,
	}
}

// goParams formats the Go parameter list of a wrapper,
// e.g. "im C.gdImagePtr, x int, y int"
func goParams(decl Declaration) string {
	params := make([]string, 0, len(decl.Params))
	for _, p := range decl.Params {
		params = append(params, fmt.Sprintf("%s %s", p.Name, p.GoType()))
	}
	return strings.Join(params, ", ")
}

// cArgs formats the arguments of the native call, converting Go numbers to C
func cArgs(decl Declaration) string {
	args := make([]string, 0, len(decl.Params))
	for _, p := range decl.Params {
		switch p.Kind {
		case KindInt:
			args = append(args, fmt.Sprintf("C.int(%s)", p.Name))
		case KindDouble:
			args = append(args, fmt.Sprintf("C.double(%s)", p.Name))
		default:
			args = append(args, p.Name)
		}
	}
	return strings.Join(args, ", ")
}

// goReturn formats the result list of a wrapper, with a leading space
func goReturn(decl Declaration) string {
	switch decl.Returns {
	case KindInt:
		return " int"
	case KindImage:
		return " (C.gdImagePtr, error)"
	case KindFont:
		return " C.gdFontPtr"
	default:
		return ""
	}
}

// generateWrapperDoc formats the doc comment of a wrapper
func generateWrapperDoc(decl Declaration) string {
	if decl.Doc != "" {
		return fmt.Sprintf("// %s %s", decl.GoName, decl.Doc)
	}
	return fmt.Sprintf("// %s calls %s", decl.GoName, decl.Name)
}

// generateWrapperBody formats the statements of a wrapper
func generateWrapperBody(decl Declaration) string {
	call := fmt.Sprintf("C.%s(%s)", decl.Name, cArgs(decl))
	switch decl.Returns {
	case KindInt:
		return fmt.Sprintf("\treturn int(%s)", call)
	case KindFont:
		return fmt.Sprintf("\treturn %s", call)
	case KindImage:
		return fmt.Sprintf(`	out := %s
	if out == nil {
		return nil, handleGdError(%q)
	}
	return out, nil`, call, decl.Name)
	default:
		return "\t" + call
	}
}

// generateIncludes formats the cgo preamble include lines
func generateIncludes(includes []string) string {
	lines := make([]string, 0, len(includes))
	for _, inc := range includes {
		lines = append(lines, fmt.Sprintf("// #include <%s>", inc))
	}
	return strings.Join(lines, "\n")
}
