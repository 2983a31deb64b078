package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// RateLimiterMock мок domain.RateLimiter
type RateLimiterMock struct {
	mock.Mock
}

type RateLimiterMock_Expecter struct {
	mock *mock.Mock
}

func (_m *RateLimiterMock) EXPECT() *RateLimiterMock_Expecter {
	return &RateLimiterMock_Expecter{mock: &_m.Mock}
}

// Allow provides a mock function with given fields: ctx, key
func (_m *RateLimiterMock) Allow(ctx context.Context, key string) (bool, error) {
	ret := _m.Called(ctx, key)

	if len(ret) == 0 {
		panic("no return value specified for Allow")
	}

	if rf, ok := ret.Get(0).(func(context.Context, string) (bool, error)); ok {
		return rf(ctx, key)
	}

	return ret.Bool(0), ret.Error(1)
}

type RateLimiterMock_Allow_Call struct {
	*mock.Call
}

// Allow is a helper method to define mock.On call
func (_e *RateLimiterMock_Expecter) Allow(ctx interface{}, key interface{}) *RateLimiterMock_Allow_Call {
	return &RateLimiterMock_Allow_Call{Call: _e.mock.On("Allow", ctx, key)}
}

func (_c *RateLimiterMock_Allow_Call) Return(allowed bool, err error) *RateLimiterMock_Allow_Call {
	_c.Call.Return(allowed, err)
	return _c
}

// NewRateLimiterMock создает мок и проверяет ожидания по завершении теста
func NewRateLimiterMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *RateLimiterMock {
	m := &RateLimiterMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
