package health

import (
	"context"
	"log/slog"
	"time"

	"github.com/dmitrymomot/catalog/core/logger"
)

// Status values of a check result.
const (
	StatusAlive = "ALIVE"
	StatusReady = "READY"
	StatusOK    = "ok"
	StatusFail  = "fail"
)

// Check is one named dependency probe.
type Check struct {
	Name string
	Fn   func(context.Context) error
}

// Result is the outcome of a single check.
type Result struct {
	Name    string        `json:"name" yaml:"name"`
	Status  string        `json:"status" yaml:"status"`
	Error   string        `json:"error,omitempty" yaml:"error,omitempty"`
	Latency time.Duration `json:"latency" yaml:"latency"`
}

// Report collects check results.
type Report struct {
	Status string   `json:"status" yaml:"status"`
	Checks []Result `json:"checks" yaml:"checks"`
}

// Ready reports whether every check passed.
func (r Report) Ready() bool {
	return r.Status == StatusReady || r.Status == StatusAlive
}

// Liveness reports that the process is running without consulting dependencies.
func Liveness() Report {
	return Report{Status: StatusAlive}
}

// Readiness runs every check and reports READY when all succeed.
func Readiness(ctx context.Context, log *slog.Logger, checks ...Check) Report {
	if log == nil {
		log = logger.Discard()
	}

	report := Report{Status: StatusReady, Checks: make([]Result, 0, len(checks))}
	for _, c := range checks {
		start := time.Now()
		err := c.Fn(ctx)
		res := Result{Name: c.Name, Status: StatusOK, Latency: time.Since(start)}
		if err != nil {
			log.ErrorContext(ctx, "Readiness check failed",
				slog.String("check", c.Name),
				logger.Duration(res.Latency),
				logger.Error(err),
			)
			res.Status = StatusFail
			res.Error = err.Error()
			report.Status = StatusFail
		}
		report.Checks = append(report.Checks, res)
	}
	return report
}
