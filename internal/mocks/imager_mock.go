package mocks

import (
	"context"

	"aetherium_ai_server/internal/ai"

	"github.com/stretchr/testify/mock"
)

// MockImager is a mock type for the ai.Imager type
type MockImager struct {
	mock.Mock
}

// GenerateImage provides a mock function with given fields: ctx, prompt
func (_m *MockImager) GenerateImage(ctx context.Context, prompt string) (*ai.Image, error) {
	ret := _m.Called(ctx, prompt)

	var r0 *ai.Image
	if rf, ok := ret.Get(0).(func(context.Context, string) *ai.Image); ok {
		r0 = rf(ctx, prompt)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*ai.Image)
	}

	var r1 error
	if rf, ok := ret.Get(1).(func(context.Context, string) error); ok {
		r1 = rf(ctx, prompt)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// NewMockImager creates a new instance of MockImager. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockImager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockImager {
	m := &MockImager{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

var _ ai.Imager = (*MockImager)(nil)
