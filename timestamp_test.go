package romfs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimeConversion(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		want := time.Date(2023, time.November, 12, 20, 5, 16, 0, time.UTC)
		ts := TimeFromStd(want)
		assert.Equal(t, Time{53, 10, 11, 20, 5, 16}, ts)
		assert.Equal(t, want, ts.Std())
	})

	t.Run("epoch", func(t *testing.T) {
		t.Parallel()
		ts := TimeFromStd(time.Unix(0, 0))
		assert.Equal(t, Time{}, ts)
		assert.Equal(t, time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), ts.Std())
	})

	t.Run("normalizes to UTC", func(t *testing.T) {
		t.Parallel()
		loc := time.FixedZone("UTC+2", 2*60*60)
		local := time.Date(2024, time.January, 1, 1, 30, 0, 0, loc)
		assert.Equal(t, Time{53, 11, 30, 23, 30, 0}, TimeFromStd(local))
	})

	t.Run("clamps before the epoch", func(t *testing.T) {
		t.Parallel()
		ts := TimeFromStd(time.Date(1955, time.June, 1, 0, 0, 0, 0, time.UTC))
		assert.Zero(t, ts.YearsSince1970)
	})

	t.Run("clamps far future", func(t *testing.T) {
		t.Parallel()
		ts := TimeFromStd(time.Date(3000, time.January, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, uint8(255), ts.YearsSince1970)
	})
}

func TestTimeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2023-11-12T20:05:16Z", Time{53, 10, 11, 20, 5, 16}.String())
	assert.Equal(t, "1970-01-01T00:00:00Z", Time{}.String())
}
