package mocks

import (
	"context"

	mock "github.com/stretchr/testify/mock"
)

// MessageSenderMock мок domain.MessageSender
type MessageSenderMock struct {
	mock.Mock
}

type MessageSenderMock_Expecter struct {
	mock *mock.Mock
}

func (_m *MessageSenderMock) EXPECT() *MessageSenderMock_Expecter {
	return &MessageSenderMock_Expecter{mock: &_m.Mock}
}

// SendMessage provides a mock function with given fields: ctx, chatID, text
func (_m *MessageSenderMock) SendMessage(ctx context.Context, chatID int64, text string) error {
	ret := _m.Called(ctx, chatID, text)

	if len(ret) == 0 {
		panic("no return value specified for SendMessage")
	}

	if rf, ok := ret.Get(0).(func(context.Context, int64, string) error); ok {
		return rf(ctx, chatID, text)
	}

	return ret.Error(0)
}

type MessageSenderMock_SendMessage_Call struct {
	*mock.Call
}

// SendMessage is a helper method to define mock.On call
func (_e *MessageSenderMock_Expecter) SendMessage(ctx interface{}, chatID interface{}, text interface{}) *MessageSenderMock_SendMessage_Call {
	return &MessageSenderMock_SendMessage_Call{Call: _e.mock.On("SendMessage", ctx, chatID, text)}
}

func (_c *MessageSenderMock_SendMessage_Call) Run(run func(ctx context.Context, chatID int64, text string)) *MessageSenderMock_SendMessage_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64), args[2].(string))
	})
	return _c
}

func (_c *MessageSenderMock_SendMessage_Call) Return(err error) *MessageSenderMock_SendMessage_Call {
	_c.Call.Return(err)
	return _c
}

func (_c *MessageSenderMock_SendMessage_Call) RunAndReturn(run func(context.Context, int64, string) error) *MessageSenderMock_SendMessage_Call {
	_c.Call.Return(run)
	return _c
}

// NewMessageSenderMock создает мок и проверяет ожидания по завершении теста
func NewMessageSenderMock(t interface {
	mock.TestingT
	Cleanup(func())
}) *MessageSenderMock {
	m := &MessageSenderMock{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
