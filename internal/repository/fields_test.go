package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseDueDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"rfc3339", "2026-03-15T10:30:00Z", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"no zone", "2026-03-15T10:30:00", time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"date only", "2026-03-15", time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDueDate(tc.input)
			require.NoError(t, err)
			require.True(t, tc.want.Equal(got))
		})
	}
}

func TestParseDueDate_Invalid(t *testing.T) {
	for _, input := range []string{"", "tomorrow", "15/03/2026", "2026-13-99"} {
		_, err := ParseDueDate(input)
		require.ErrorIs(t, err, ErrInvalidField, input)
	}
}

func TestTimeField_NullClears(t *testing.T) {
	val, present, err := timeField(map[string]any{"due_date": nil}, "due_date")
	require.NoError(t, err)
	require.True(t, present)
	require.Nil(t, val)
}

func TestIDField(t *testing.T) {
	// JSON numbers decode as float64.
	val, present, err := idField(map[string]any{"project_id": float64(3)}, "project_id")
	require.NoError(t, err)
	require.True(t, present)
	require.EqualValues(t, 3, *val)

	_, _, err = idField(map[string]any{"project_id": "three"}, "project_id")
	require.ErrorIs(t, err, ErrInvalidField)

	_, _, err = idField(map[string]any{"project_id": float64(-1)}, "project_id")
	require.ErrorIs(t, err, ErrInvalidField)

	_, present, err = idField(map[string]any{}, "project_id")
	require.NoError(t, err)
	require.False(t, present)
}
