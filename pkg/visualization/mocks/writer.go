package mocks

import "github.com/paramcomp/paramcomp/pkg/grid"
import "github.com/stretchr/testify/mock"

// Writer mock
type Writer struct {
	mock.Mock
}

// FileName provides a mock function with given fields: dimension
func (_m *Writer) FileName(dimension string) string {
	ret := _m.Called(dimension)

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(dimension)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Title provides a mock function with given fields: dimension
func (_m *Writer) Title(dimension string) string {
	ret := _m.Called(dimension)

	var r0 string
	if rf, ok := ret.Get(0).(func(string) string); ok {
		r0 = rf(dimension)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Table provides a mock function with given fields: slice
func (_m *Writer) Table(slice *grid.Slice) string {
	ret := _m.Called(slice)

	var r0 string
	if rf, ok := ret.Get(0).(func(*grid.Slice) string); ok {
		r0 = rf(slice)
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}

// Separator provides a mock function with given fields:
func (_m *Writer) Separator() string {
	ret := _m.Called()

	var r0 string
	if rf, ok := ret.Get(0).(func() string); ok {
		r0 = rf()
	} else {
		r0 = ret.Get(0).(string)
	}

	return r0
}
