package configs

import (
	"fmt"
	"time"
)

// Scheduler configures the in-process trigger that drives the
// reconciliation cycle and the period resets.
type Scheduler struct {
	// Enabled turns the trigger on for the serve command.
	Enabled bool `env:"ENABLED" envDefault:"true"`
	// ReconcileInterval is the period between reconciliation cycles.
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL" envDefault:"5m"`
	// Timezone is the IANA zone whose midnight triggers the resets and
	// whose wall clock is compared with dayparting windows.
	Timezone string `env:"TIMEZONE" envDefault:"UTC"`
	// Concurrency bounds how many brands a cycle processes at once.
	Concurrency int `env:"CONCURRENCY" envDefault:"4"`
}

// Location resolves Timezone.
func (c Scheduler) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}
