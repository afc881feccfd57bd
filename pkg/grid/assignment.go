package grid

// Assignment holds one value per parameter, in declared order.
type Assignment []string

// Params pairs the assignment with parameter names of the space.
func (a Assignment) Params(s *Space) Params {
	return Params{names: s.names, values: append([]string(nil), a...)}
}

// Params is an ordered name to value mapping passed to result readers.
type Params struct {
	names  []string
	values []string
}

// Names returns parameter names in declared order.
func (p Params) Names() []string {
	return append([]string(nil), p.names...)
}

// Get returns the value of the named parameter or empty string.
func (p Params) Get(name string) string {
	for i, n := range p.names {
		if n == name {
			return p.values[i]
		}
	}
	return ""
}

// Map returns a copy of params as a plain map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p.names))
	for i, n := range p.names {
		m[n] = p.values[i]
	}
	return m
}

// Len returns number of parameters.
func (p Params) Len() int {
	return len(p.names)
}
