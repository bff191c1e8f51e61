package functions

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Categories used by the built-in functions.
const (
	CategoryDate      = "Date Functions"
	CategoryID        = "ID Generation"
	CategoryUtilities = "Utilities"
)

const dateLayout = "2006-01-02"

// Env carries the capabilities a function may read.
type Env struct {
	Clock  Clock
	Random Random
}

// Function is a named value generator.
type Function struct {
	ID          string
	Label       string
	Description string
	Category    string
	Execute     func(env Env) (string, error)
}

// Registry holds functions and the environment they execute in.
type Registry struct {
	mu    sync.Mutex
	funcs map[string]*Function
	env   Env
}

// Option configures a Registry.
type Option func(*Registry)

// WithClock sets the clock read by date and time functions.
func WithClock(c Clock) Option {
	return func(r *Registry) {
		r.env.Clock = c
	}
}

// WithRandom sets the source used by uuid and random_number.
func WithRandom(rnd Random) Option {
	return func(r *Registry) {
		r.env.Random = rnd
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		funcs: make(map[string]*Function),
		env:   Env{Clock: SystemClock{}, Random: SystemRandom},
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Default creates a registry holding the built-in functions.
func Default(opts ...Option) *Registry {
	r := NewRegistry(opts...)
	for _, fn := range Builtins() {
		r.Add(fn)
	}

	return r
}

// Add registers fn, replacing any function with the same id.
func (r *Registry) Add(fn Function) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.funcs[fn.ID] = &fn
}

// Get returns a function by id, or nil if not found.
func (r *Registry) Get(id string) *Function {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.funcs[id]
}

// Has returns true if a function with the given id exists.
func (r *Registry) Has(id string) bool {
	return r.Get(id) != nil
}

// Names returns all function ids, sorted.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	names := make([]string, 0, len(r.funcs))
	for id := range r.funcs {
		names = append(names, id)
	}

	sort.Strings(names)

	return names
}

// All returns all functions ordered by category then id.
func (r *Registry) All() []Function {
	r.mu.Lock()

	out := make([]Function, 0, len(r.funcs))
	for _, fn := range r.funcs {
		out = append(out, *fn)
	}

	r.mu.Unlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// Execute runs the function named id. An unregistered id returns an
// *UnknownFunctionError.
func (r *Registry) Execute(id string) (string, error) {
	fn := r.Get(id)
	if fn == nil {
		return "", newUnknownFunctionError(id, r.Names())
	}

	// Seeded sources are not safe for concurrent use.
	r.mu.Lock()
	defer r.mu.Unlock()

	return fn.Execute(r.env)
}

// Builtins returns the standard function set.
func Builtins() []Function {
	return []Function{
		{
			ID:          "today",
			Label:       "Today's Date",
			Description: "Current date in YYYY-MM-DD format",
			Category:    CategoryDate,
			Execute: func(env Env) (string, error) {
				return env.Clock.Now().UTC().Format(dateLayout), nil
			},
		},
		{
			ID:          "now",
			Label:       "Current Date and Time",
			Description: "Current timestamp in ISO format",
			Category:    CategoryDate,
			Execute: func(env Env) (string, error) {
				return env.Clock.Now().UTC().Format("2006-01-02T15:04:05.000Z07:00"), nil
			},
		},
		{
			ID:          "timestamp",
			Label:       "Unix Timestamp",
			Description: "Current Unix timestamp (seconds since epoch)",
			Category:    CategoryDate,
			Execute: func(env Env) (string, error) {
				return strconv.FormatInt(env.Clock.Now().Unix(), 10), nil
			},
		},
		daysFromToday("thirty_days_from_today", "30 Days From Today", 30),
		daysFromToday("sixty_days_from_today", "60 Days From Today", 60),
		{
			ID:          "end_of_month",
			Label:       "End of Current Month",
			Description: "Last day of the current month",
			Category:    CategoryDate,
			Execute: func(env Env) (string, error) {
				now := env.Clock.Now().UTC()
				first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

				return first.AddDate(0, 1, -1).Format(dateLayout), nil
			},
		},
		{
			ID:          "uuid",
			Label:       "Generate UUID",
			Description: "Unique identifier for this record",
			Category:    CategoryID,
			Execute: func(env Env) (string, error) {
				id, err := uuid.NewRandomFromReader(env.Random)
				if err != nil {
					return "", err
				}

				return id.String(), nil
			},
		},
		{
			ID:          "random_number",
			Label:       "Random Number (1-1000)",
			Description: "Generate a random number",
			Category:    CategoryUtilities,
			Execute: func(env Env) (string, error) {
				return strconv.Itoa(env.Random.IntN(1000) + 1), nil
			},
		},
	}
}

func daysFromToday(id, label string, days int) Function {
	return Function{
		ID:          id,
		Label:       label,
		Description: "Date " + strconv.Itoa(days) + " days in the future",
		Category:    CategoryDate,
		Execute: func(env Env) (string, error) {
			return env.Clock.Now().UTC().AddDate(0, 0, days).Format(dateLayout), nil
		},
	}
}
