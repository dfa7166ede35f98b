package generator

// Kind is the marshalling class of a native parameter or return value.
type Kind string

const (
	KindVoid   Kind = "void"
	KindInt    Kind = "int"
	KindDouble Kind = "double"
	KindImage  Kind = "image"
	KindFont   Kind = "font"
)

// ReturnKinds lists the return kinds a generated wrapper can convert
var ReturnKinds = map[Kind]bool{
	KindVoid:  true,
	KindInt:   true,
	KindImage: true,
	KindFont:  true,
}

// ParamKinds lists the parameter kinds a generated wrapper can convert
var ParamKinds = map[Kind]bool{
	KindInt:    true,
	KindDouble: true,
	KindImage:  true,
	KindFont:   true,
}

// GoTypes maps a parameter kind to the Go type of the wrapper parameter
var GoTypes = map[Kind]string{
	KindInt:    "int",
	KindDouble: "float64",
	KindImage:  "C.gdImagePtr",
	KindFont:   "C.gdFontPtr",
}

// GoNamePrefix replaces the "gd" prefix of a native name in the wrapper name
const GoNamePrefix = "gdgen"
