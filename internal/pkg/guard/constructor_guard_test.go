package guard_test

import (
	"errors"
	"testing"

	"courier/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		// When
		g := guard.NewConstructorGuard()

		// Then
		require.NoError(t, g.Validate(errors.New("test object not constructed")))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		// Given
		g := guard.NewConstructorGuard()

		// When
		err := g.Validate(errors.New("not constructed"))

		// Then
		require.NoError(t, err)
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		// When
		err := g.Validate(expectedError)

		// Then
		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		// Given
		var g guard.ConstructorGuard // zero value

		// When
		err := g.Validate(nil)

		// Then
		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard enforces
// constructor usage on a guarded command type.
func TestConstructorGuardUsageExample(t *testing.T) {
	type command struct {
		orderID string
		guard   guard.ConstructorGuard
	}

	var errCommandNotConstructed = errors.New("command must be created via its constructor")

	newCommand := func(orderID string) (command, error) {
		if orderID == "" {
			return command{}, errors.New("order ID is required")
		}
		return command{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		cmd, err := newCommand("3")

		require.NoError(t, err)
		require.NoError(t, cmd.guard.Validate(errCommandNotConstructed))
		assert.Equal(t, "3", cmd.orderID)
	})

	t.Run("zero_value_fails_validation", func(t *testing.T) {
		var cmd command // zero value

		err := cmd.guard.Validate(errCommandNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errCommandNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newCommand("")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "order ID is required")
	})
}

func TestConstructorGuardDefaultError(t *testing.T) {
	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardConcurrency verifies that a guard can be validated from
// multiple goroutines at once.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 16 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 16 {
		<-done
	}
}
