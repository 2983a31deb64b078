package mocks

import (
	"context"

	"github.com/avc/plantstore/internal/domain"
	mock "github.com/stretchr/testify/mock"
)

// EventPublisherMock мок domain.EventPublisher
type EventPublisherMock struct {
	mock.Mock
}

type EventPublisherMock_Expecter struct {
	mock *mock.Mock
}

func (_m *EventPublisherMock) EXPECT() *EventPublisherMock_Expecter {
	return &EventPublisherMock_Expecter{mock: &_m.Mock}
}

// PublishOrderEvent provides a mock function with given fields: ctx, ev
func (_m *EventPublisherMock) PublishOrderEvent(ctx context.Context, ev domain.OrderEvent) error {
	ret := _m.Called(ctx, ev)

	if len(ret) == 0 {
		panic("no return value specified for PublishOrderEvent")
	}

	if rf, ok := ret.Get(0).(func(context.Context, domain.OrderEvent) error); ok {
		return rf(ctx, ev)
	}

	return ret.Error(0)
}

type EventPublisherMock_PublishOrderEvent_Call struct {
	*mock.Call
}

// PublishOrderEvent is a helper method to define mock.On call
func (_e *EventPublisherMock_Expecter) PublishOrderEvent(ctx interface{}, ev interface{}) *EventPublisherMock_PublishOrderEvent_Call {
	return &EventPublisherMock_PublishOrderEvent_Call{Call: _e.mock.On("PublishOrderEvent", ctx, ev)}
}

func (_c *EventPublisherMock_PublishOrderEvent_Call) Run(run func(ctx context.Context, ev domain.OrderEvent)) *EventPublisherMock_PublishOrderEvent_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.OrderEvent))
	})
	return _c
}

func (_c *EventPublisherMock_PublishOrderEvent_Call) Return(err error) *EventPublisherMock_PublishOrderEvent_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *EventPublisherMock_PublishOrderEvent_Call) RunAndReturn(run func(context.Context, domain.OrderEvent) error) *EventPublisherMock_PublishOrderEvent_Call {
	_c.Call.Return(run)
	return _c
}

// NewEventPublisherMock создает мок и проверяет ожидания по завершении теста
func NewEventPublisherMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *EventPublisherMock {
	m := &EventPublisherMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
