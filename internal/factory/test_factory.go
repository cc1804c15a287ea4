package factory

import (
	"time"

	"github.com/Cireo/sixen/internal/dependencies/mocks"
	"github.com/Cireo/sixen/internal/storage/memory"
	"github.com/Cireo/sixen/internal/testutil"
)

// TestApp is an App with mocked clock and random for test control
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := NewWithDependencies(store, mockClock, mockRandom, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
