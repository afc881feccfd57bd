package reader

import "github.com/paramcomp/paramcomp/pkg/grid"

// Func adapts a function returning a result and an error to grid.Reader.
type Func func(params grid.Params) (interface{}, error)

// Read calls f.
func (f Func) Read(params grid.Params) (interface{}, error) {
	return f(params)
}

// Simple adapts a function that cannot fail to grid.Reader.
type Simple func(params grid.Params) interface{}

// Read calls f.
func (f Simple) Read(params grid.Params) (interface{}, error) {
	return f(params), nil
}
