package monitoring

import (
	"runtime"
	"time"

	"github.com/abank-demo/abank-be/internal/bank"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/mem"
)

// Reporter periodically logs registry totals and process memory pressure.
// It is purely observational; nothing reads its output programmatically.
type Reporter struct {
	registry bank.RegistryProvider
	schedule cron.Schedule
	done     chan bool
}

// NewReporter parses the cron expression (standard five-field specs plus
// descriptors like "@every 1m") and returns a reporter ready to Run.
func NewReporter(registry bank.RegistryProvider, cronExpr string) (*Reporter, error) {
	schedule, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, err
	}
	return &Reporter{
		registry: registry,
		schedule: schedule,
		done:     make(chan bool),
	}, nil
}

// Run blocks, reporting on the configured schedule until Stop is called.
func (r *Reporter) Run() {
	log.Info().Msg("Starting background stats reporter...")

	// Report once immediately on start
	r.report()

	timer := time.NewTimer(time.Until(r.schedule.Next(time.Now())))
	defer timer.Stop()

	for {
		select {
		case <-r.done:
			log.Info().Msg("Stopping background stats reporter.")
			return
		case <-timer.C:
			r.report()
			timer.Reset(time.Until(r.schedule.Next(time.Now())))
		}
	}
}

// Stop halts the reporter.
func (r *Reporter) Stop() {
	r.done <- true
}

func (r *Reporter) report() {
	stats := r.registry.Stats()

	entry := log.Info().
		Int("accounts", stats.Accounts).
		Int("transactions", stats.Transactions).
		Str("total_balance", stats.TotalBalance.String()).
		Int("goroutines", runtime.NumGoroutine())

	if vm, err := mem.VirtualMemory(); err == nil {
		entry = entry.Float64("mem_used_percent", vm.UsedPercent)
	} else {
		log.Warn().Err(err).Msg("Reporter: Could not read host memory stats")
	}

	entry.Msg("Registry stats")
}
