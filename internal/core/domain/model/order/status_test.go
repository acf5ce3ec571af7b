package order_test

import (
	"fmt"
	"testing"

	"courier/internal/core/domain/model/order"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.New))
		assert.Equal(t, 2, int(order.Accepted))
		assert.Equal(t, 3, int(order.Completed))
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.New,
			order.Accepted,
			order.Completed,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				require.NoError(t, status.Validate())
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out-of-range status values", func(t *testing.T) {
		for _, status := range []order.Status{order.Status(-1), order.Status(4), order.Status(100)} {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return wire strings for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.New, "new"},
			{order.Accepted, "accepted"},
			{order.Completed, "completed"},
		}

		for _, tc := range testCases {
			assert.Equal(t, tc.expected, tc.status.String())
		}
	})

	t.Run("should return unknown for invalid statuses", func(t *testing.T) {
		assert.Equal(t, "unknown", order.Unknown.String())
		assert.Equal(t, "unknown", order.Status(42).String())
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid wire strings", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected order.Status
		}{
			{"new", order.New},
			{"accepted", order.Accepted},
			{"completed", order.Completed},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject unknown strings", func(t *testing.T) {
		for _, input := range []string{"", "unknown", "NEW", "delivered"} {
			status, err := order.StatusFromString(input)

			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
			assert.Equal(t, order.Unknown, status)
		}
	})
}

func TestStatus_Accept(t *testing.T) {
	t.Run("should transition from New", func(t *testing.T) {
		status, err := order.New.Accept()

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, status)
	})

	t.Run("should reject every other source state", func(t *testing.T) {
		for _, source := range []order.Status{order.Unknown, order.Accepted, order.Completed} {
			t.Run(fmt.Sprintf("from %s", source.String()), func(t *testing.T) {
				_, err := source.Accept()

				require.Error(t, err)
				require.ErrorIs(t, err, errs.ErrValueIsInvalid)
				assert.Contains(t, err.Error(), fmt.Sprintf("%s is not a valid status to accept", source.String()))
			})
		}
	})
}

func TestStatus_Complete(t *testing.T) {
	t.Run("should transition from Accepted", func(t *testing.T) {
		status, err := order.Accepted.Complete()

		require.NoError(t, err)
		assert.Equal(t, order.Completed, status)
	})

	t.Run("should reject completion before acceptance", func(t *testing.T) {
		_, err := order.New.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "new is not a valid status to complete")
	})

	t.Run("should reject repeated completion", func(t *testing.T) {
		_, err := order.Completed.Complete()

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "completed is not a valid status to complete")
	})
}
