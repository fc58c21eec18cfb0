package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGetSchoolYear(t *testing.T) {
	cases := []struct {
		now         time.Time
		expectStart int
		expectEnd   int
	}{
		{
			now:         time.Date(2024, time.September, 10, 0, 0, 0, 0, Location),
			expectStart: 2024,
			expectEnd:   2025,
		},
		{
			now:         time.Date(2025, time.March, 1, 0, 0, 0, 0, Location),
			expectStart: 2024,
			expectEnd:   2025,
		},
		{
			now:         time.Date(2025, time.August, 1, 0, 0, 0, 0, Location),
			expectStart: 2025,
			expectEnd:   2026,
		},
	}

	for _, test := range cases {
		start, end := GetSchoolYear(test.now)
		require.Equal(t, test.expectStart, start)
		require.Equal(t, test.expectEnd, end)
	}
}
