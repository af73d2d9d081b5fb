package mockclickhouseconnection

import (
	"context"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/stretchr/testify/mock"
)

// Connection mocks the ClickHouse driver connection for repository tests.
type Connection struct {
	mock.Mock
}

var _ clickhouse.Conn = &Connection{}

func (m *Connection) Query(ctx context.Context, query string, args ...any) (driver.Rows, error) {
	called := m.Called(ctx, query, args)
	if v := called.Get(0); v != nil {
		return v.(driver.Rows), called.Error(1)
	}
	return nil, called.Error(1)
}

func (m *Connection) QueryRow(ctx context.Context, query string, args ...any) driver.Row {
	called := m.Called(ctx, query, args)
	return called.Get(0).(driver.Row)
}

func (m *Connection) Select(ctx context.Context, dest any, query string, args ...any) error {
	called := m.Called(ctx, dest, query, args)
	return called.Error(0)
}

func (m *Connection) Exec(ctx context.Context, query string, args ...any) error {
	callArgs := append([]any{ctx, query}, args...)
	return m.Called(callArgs...).Error(0)
}

func (m *Connection) PrepareBatch(ctx context.Context, query string) (driver.Batch, error) {
	called := m.Called(ctx, query)
	if v := called.Get(0); v != nil {
		return v.(driver.Batch), called.Error(1)
	}
	return nil, called.Error(1)
}

func (m *Connection) AsyncInsert(ctx context.Context, query string, wait bool) error {
	return m.Called(ctx, query, wait).Error(0)
}

func (m *Connection) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *Connection) Stats() driver.Stats {
	return m.Called().Get(0).(driver.Stats)
}

func (m *Connection) Contributors() []string {
	return m.Called().Get(0).([]string)
}

func (m *Connection) ServerVersion() (*driver.ServerVersion, error) {
	called := m.Called()
	return called.Get(0).(*driver.ServerVersion), called.Error(1)
}

func (m *Connection) Close() error {
	return m.Called().Error(0)
}
