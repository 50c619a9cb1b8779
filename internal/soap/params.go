package soap

// Param is a single named argument of a remote procedure call.
// Value must be a string, an int or nil.
type Param struct {
	Name  string
	Value any
}

// Params is an ordered list of parameters. The order of the list
// is the order of the elements in the request envelope.
type Params []Param

// Get returns the value of the first parameter named name and
// whether it was found.
func (p Params) Get(name string) (value any, ok bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return nil, false
}

func (p Params) Names() (names []string) {
	names = make([]string, len(p))
	for i, param := range p {
		names[i] = param.Name
	}
	return names
}
