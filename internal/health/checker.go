package health

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/swarmworks/server/internal/llm"
)

type Status string

const (
	StatusHealthy   Status = "healthy"
	StatusDegraded  Status = "degraded"
	StatusUnhealthy Status = "unhealthy"
)

const defaultTimeout = 5 * time.Second

// outcome of one backend check
type Report struct {
	Status Status
	Models []string
	Error  string
}

func (r Report) Healthy() bool {
	return r.Status == StatusHealthy
}

// checks backend reachability by listing its models
type Checker struct {
	lister  llm.ModelLister
	timeout time.Duration
}

func NewChecker(lister llm.ModelLister, timeout time.Duration) *Checker {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Checker{lister: lister, timeout: timeout}
}

// 200 is healthy, any other status degraded, a transport failure unhealthy
func (p *Checker) Check(ctx context.Context) Report {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	models, err := p.lister.ListModels(ctx)
	if err != nil {
		var statusErr *llm.StatusError
		if errors.As(err, &statusErr) {
			return Report{Status: StatusDegraded, Error: fmt.Sprintf("HTTP %d", statusErr.StatusCode)}
		}

		return Report{Status: StatusUnhealthy, Error: err.Error()}
	}

	names := make([]string, 0, len(models))
	for _, m := range models {
		names = append(names, m.Name)
	}

	return Report{Status: StatusHealthy, Models: names}
}
