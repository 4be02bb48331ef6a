package contract

import "github.com/stretchr/testify/mock"

// MockSnapshotStore is a testify mock for SnapshotStore.
type MockSnapshotStore struct {
	mock.Mock
}

var _ SnapshotStore = &MockSnapshotStore{} // Compile-time check

// Get mocks SnapshotStore.Get.
func (m *MockSnapshotStore) Get(key string) ([]byte, bool, error) {
	args := m.Called(key)
	var value []byte
	if v := args.Get(0); v != nil {
		value = v.([]byte)
	}
	return value, args.Bool(1), args.Error(2)
}

// Set mocks SnapshotStore.Set.
func (m *MockSnapshotStore) Set(key string, value []byte, createdAt int64) error {
	args := m.Called(key, value, createdAt)
	return args.Error(0)
}

// Count mocks SnapshotStore.Count.
func (m *MockSnapshotStore) Count() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

// Clear mocks SnapshotStore.Clear.
func (m *MockSnapshotStore) Clear() error {
	args := m.Called()
	return args.Error(0)
}

// Close mocks SnapshotStore.Close.
func (m *MockSnapshotStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
