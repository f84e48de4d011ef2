// Hand-written mock of IOEngine, in the shape MockGen emits.
// Source: ioengine.go

package durability

import (
	context "context"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockIOEngine is a mock of IOEngine interface.
type MockIOEngine struct {
	ctrl     *gomock.Controller
	recorder *MockIOEngineMockRecorder
}

// MockIOEngineMockRecorder is the mock recorder for MockIOEngine.
type MockIOEngineMockRecorder struct {
	mock *MockIOEngine
}

// NewMockIOEngine creates a new mock instance.
func NewMockIOEngine(ctrl *gomock.Controller) *MockIOEngine {
	mock := &MockIOEngine{ctrl: ctrl}
	mock.recorder = &MockIOEngineMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockIOEngine) EXPECT() *MockIOEngineMockRecorder {
	return m.recorder
}

// Truncate mocks base method.
func (m *MockIOEngine) Truncate(ctx context.Context) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Truncate", ctx)
	ret0, _ := ret[0].(error)
	return ret0
}

// Truncate indicates an expected call of Truncate.
func (mr *MockIOEngineMockRecorder) Truncate(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Truncate", reflect.TypeOf((*MockIOEngine)(nil).Truncate), ctx)
}

// Write mocks base method.
func (m *MockIOEngine) Write(ctx context.Context, record []byte) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Write", ctx, record)
	ret0, _ := ret[0].(error)
	return ret0
}

// Write indicates an expected call of Write.
func (mr *MockIOEngineMockRecorder) Write(ctx, record interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Write", reflect.TypeOf((*MockIOEngine)(nil).Write), ctx, record)
}
