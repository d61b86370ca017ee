package runconfig

// Method enumerates the calls a Config answers from templates.
type Method int

const (
	MethodUnknown Method = iota
	MethodGet
	MethodSet
	MethodRequire
	MethodPersistRelationDocs
	MethodPersistColumnDocs
)

var methodNames = map[Method]string{
	MethodGet:                 "get",
	MethodSet:                 "set",
	MethodRequire:             "require",
	MethodPersistRelationDocs: "persist_relation_docs",
	MethodPersistColumnDocs:   "persist_column_docs",
}

// Methods lists the recognized methods in a stable order.
func Methods() []Method {
	return []Method{
		MethodGet,
		MethodSet,
		MethodRequire,
		MethodPersistRelationDocs,
		MethodPersistColumnDocs,
	}
}

// ParseMethod maps a template method name to a Method. Names are matched
// exactly.
func ParseMethod(name string) (Method, bool) {
	for _, m := range Methods() {
		if methodNames[m] == name {
			return m, true
		}
	}
	return MethodUnknown, false
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}
