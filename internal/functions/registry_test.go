package functions

import (
	"errors"
	"strconv"
	"sync"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixed = FixedClock(time.Date(2025, time.February, 10, 13, 45, 30, 123_000_000, time.UTC))

func TestBuiltins(t *testing.T) {
	r := Default(WithClock(fixed), WithRandom(SeededRandom(7)))

	tests := []struct {
		id   string
		want string
	}{
		{"today", "2025-02-10"},
		{"now", "2025-02-10T13:45:30.123Z"},
		{"timestamp", "1739195130"},
		{"thirty_days_from_today", "2025-03-12"},
		{"sixty_days_from_today", "2025-04-11"},
		{"end_of_month", "2025-02-28"},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got, err := r.Execute(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuiltins_LocalClockIsReadAsUTC(t *testing.T) {
	loc := time.FixedZone("UTC-8", -8*3600)
	// 2025-01-31 20:00 at UTC-8 is already February in UTC.
	r := Default(WithClock(FixedClock(time.Date(2025, time.January, 31, 20, 0, 0, 0, loc))))

	got, err := r.Execute("today")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-01", got)

	got, err = r.Execute("end_of_month")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", got)
}

func TestBuiltins_Random(t *testing.T) {
	a := Default(WithRandom(SeededRandom(42)))
	b := Default(WithRandom(SeededRandom(42)))

	idA, err := a.Execute("uuid")
	require.NoError(t, err)
	idB, err := b.Execute("uuid")
	require.NoError(t, err)
	assert.Equal(t, idA, idB)

	parsed, err := uuid.Parse(idA)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	for range 200 {
		s, err := a.Execute("random_number")
		require.NoError(t, err)

		n, err := strconv.Atoi(s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 1)
		assert.LessOrEqual(t, n, 1000)
	}

	sys := Default()
	id, err := sys.Execute("uuid")
	require.NoError(t, err)
	assert.Len(t, id, 36)
}

func TestRegistry_UnknownFunction(t *testing.T) {
	r := Default()

	_, err := r.Execute("yesterday")
	require.Error(t, err)

	var unknown *UnknownFunctionError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "yesterday", unknown.ID)
	assert.Contains(t, unknown.Known, "today")

	var rich *goerrors.Error
	require.True(t, goerrors.As(err, &rich))
	assert.Equal(t, goerrors.CategoryBadInput, rich.Category)
	assert.Equal(t, TextCodeUnknownFunction, rich.TextCode)
}

func TestRegistry_AddGetNames(t *testing.T) {
	r := NewRegistry()
	assert.Empty(t, r.Names())
	assert.False(t, r.Has("fiscal_year"))

	r.Add(Function{
		ID:       "fiscal_year",
		Label:    "Fiscal Year",
		Category: CategoryDate,
		Execute: func(env Env) (string, error) {
			return strconv.Itoa(env.Clock.Now().Year()), nil
		},
	})

	require.True(t, r.Has("fiscal_year"))
	assert.Equal(t, "Fiscal Year", r.Get("fiscal_year").Label)
	assert.Nil(t, r.Get("other"))

	d := Default()
	assert.Equal(t, []string{
		"end_of_month", "now", "random_number", "sixty_days_from_today",
		"thirty_days_from_today", "timestamp", "today", "uuid",
	}, d.Names())

	all := d.All()
	require.Len(t, all, 8)
	assert.Equal(t, CategoryDate, all[0].Category)
	assert.Equal(t, CategoryUtilities, all[len(all)-1].Category)
}

func TestRegistry_ConcurrentExecute(t *testing.T) {
	r := Default(WithRandom(SeededRandom(1)), WithClock(fixed))

	var wg sync.WaitGroup

	for range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 50 {
				_, err := r.Execute("uuid")
				assert.NoError(t, err)
			}
		}()
	}

	wg.Wait()
}
