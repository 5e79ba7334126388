// Package schedule turns free-form task text into concrete due dates and
// recurrence rules. It is a pure library: every function takes the
// reference instant and timezone offset as explicit parameters and never
// reads the wall clock, so results are fully deterministic.
package schedule
