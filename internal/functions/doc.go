// Package functions holds the dynamic value functions a mapping can name as
// its source (today, now, uuid, ...).
//
// Functions read time and randomness only through the Clock and Random of
// the Registry, so a registry built with FixedClock and a seeded source
// produces the same values on every run.
package functions
