package netscan

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/venture-tools/plan-atlas/pkg/adapters"
	"github.com/venture-tools/plan-atlas/pkg/models/domain"
	"github.com/venture-tools/plan-atlas/pkg/store/sqlite/scan"
)

const (
	// DefaultMonitorInterval is how often a monitor rescans a site
	// unless the caller asks for something else.
	DefaultMonitorInterval = 30 * time.Second

	// defaultHistoryCap bounds the in-memory snapshot history per site.
	defaultHistoryCap = 100
)

// Runner polls one site on an interval, keeping a bounded history of
// snapshots and persisting each one to the scan store.
type Runner struct {
	profile   domain.SiteProfile
	scanner   Scanner
	scanStore scan.Store

	mu      sync.Mutex
	run     domain.MonitorRun
	history []*domain.ScanSnapshot

	done     chan struct{}
	progress chan RunnerProgress
	config   RunnerConfig
}

type RunnerConfig struct {
	Interval   time.Duration
	HistoryCap int
}

type RunnerProgress struct {
	Ticks        int
	AccessPoints int
	TakenAt      time.Time
}

func NewRunner(
	profile domain.SiteProfile,
	scanner Scanner,
	scanStore scan.Store,
	config RunnerConfig,
) *Runner {
	if config.Interval <= 0 {
		config.Interval = DefaultMonitorInterval
	}
	if config.HistoryCap <= 0 {
		config.HistoryCap = defaultHistoryCap
	}

	now := time.Now().UTC()
	return &Runner{
		profile:   profile,
		scanner:   scanner,
		scanStore: scanStore,
		run: domain.MonitorRun{
			ID:        uuid.NewString(),
			Site:      profile.Name,
			Status:    domain.MonitorStatusPending,
			Interval:  config.Interval,
			StartedAt: now,
			UpdatedAt: now,
		},
		done:     make(chan struct{}),
		progress: make(chan RunnerProgress, 100),
		config:   config,
	}
}

func (r *Runner) Done() <-chan struct{} {
	return r.done
}

func (r *Runner) Progress() <-chan RunnerProgress {
	return r.progress
}

// Status returns a copy of the run state, safe to read while the loop
// is ticking.
func (r *Runner) Status() domain.MonitorRun {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.run
}

// History returns the retained snapshots, oldest first.
func (r *Runner) History() []*domain.ScanSnapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.ScanSnapshot, len(r.history))
	copy(out, r.history)
	return out
}

func (r *Runner) Run(ctx context.Context) {
	logger := zerolog.Ctx(ctx).With().Str("site", r.profile.Name).Logger()
	defer close(r.done)
	defer close(r.progress)

	r.setStatus(domain.MonitorStatusRunning, nil)

	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		snapshot, err := r.scanner.Scan(ctx, r.profile)
		if err != nil {
			logger.Error().Err(err).Msg("scan failed")
			r.setStatus(domain.MonitorStatusRunning, err)
		} else {
			r.recordTick(snapshot)
			r.persist(ctx, &logger, snapshot)

			// Drop progress updates nobody consumes.
			select {
			case r.progress <- RunnerProgress{
				Ticks:        r.Status().Ticks,
				AccessPoints: len(snapshot.AccessPoints),
				TakenAt:      snapshot.TakenAt,
			}:
			default:
			}
		}

		select {
		case <-ctx.Done():
			logger.Info().Msg("monitor stopped")
			r.setStatus(domain.MonitorStatusCancelled, nil)
			return
		case <-ticker.C:
			// The select picks randomly when both channels are ready,
			// so a cancelled context must still win over a pending tick.
			if ctx.Err() != nil {
				logger.Info().Msg("monitor stopped")
				r.setStatus(domain.MonitorStatusCancelled, nil)
				return
			}
		}
	}
}

func (r *Runner) persist(ctx context.Context, logger *zerolog.Logger, snapshot *domain.ScanSnapshot) {
	if r.scanStore == nil {
		return
	}

	record, err := adapters.MapScanSnapshotToStore(snapshot)
	if err != nil {
		logger.Error().Err(err).Msg("failed to encode snapshot")
		return
	}
	if err := r.scanStore.Add(ctx, record); err != nil {
		logger.Error().Err(err).Msg("failed to store snapshot")
		return
	}
	if err := r.scanStore.Prune(ctx, r.profile.Name, r.config.HistoryCap); err != nil {
		logger.Error().Err(err).Msg("failed to prune stored snapshots")
	}
}

func (r *Runner) recordTick(snapshot *domain.ScanSnapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.run.Ticks++
	r.run.LastTakenAt = snapshot.TakenAt
	r.run.UpdatedAt = time.Now().UTC()

	r.history = append(r.history, snapshot)
	if len(r.history) > r.config.HistoryCap {
		r.history = r.history[len(r.history)-r.config.HistoryCap:]
	}
}

func (r *Runner) setStatus(status domain.MonitorStatus, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.run.Status = status
	r.run.UpdatedAt = time.Now().UTC()
	if err != nil {
		msg := err.Error()
		r.run.Error = &msg
	}
}

// Controller owns the monitor lifecycle per site.
type Controller interface {
	Start(ctx context.Context, profile domain.SiteProfile, config RunnerConfig) (domain.MonitorRun, error)
	Cancel(ctx context.Context, site string) error
	Status(ctx context.Context, site string) (domain.MonitorRun, error)
	History(ctx context.Context, site string) ([]*domain.ScanSnapshot, error)
}

type monitorDescriptor struct {
	cancelFunc context.CancelFunc
	runner     *Runner
}

type DefaultController struct {
	scanner   Scanner
	scanStore scan.Store

	mu       sync.Mutex
	monitors map[string]monitorDescriptor
}

func NewController(scanner Scanner, scanStore scan.Store) *DefaultController {
	return &DefaultController{
		scanner:   scanner,
		scanStore: scanStore,
		monitors:  make(map[string]monitorDescriptor),
	}
}

func (ctrl *DefaultController) Start(
	ctx context.Context,
	profile domain.SiteProfile,
	config RunnerConfig,
) (domain.MonitorRun, error) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	if _, ok := ctrl.monitors[profile.Name]; ok {
		return domain.MonitorRun{}, fmt.Errorf("monitor already running for %q: %w", profile.Name, domain.ErrInvalidInput)
	}

	ctx, cancel := context.WithCancel(ctx)
	runner := NewRunner(profile, ctrl.scanner, ctrl.scanStore, config)
	ctrl.monitors[profile.Name] = monitorDescriptor{
		cancelFunc: cancel,
		runner:     runner,
	}

	go runner.Run(ctx)
	return runner.Status(), nil
}

func (ctrl *DefaultController) Cancel(_ context.Context, site string) error {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	desc, ok := ctrl.monitors[site]
	if !ok {
		return fmt.Errorf("no monitor running for %q: %w", site, domain.ErrNotFound)
	}
	desc.cancelFunc()
	<-desc.runner.Done()

	delete(ctrl.monitors, site)
	return nil
}

func (ctrl *DefaultController) Status(_ context.Context, site string) (domain.MonitorRun, error) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	desc, ok := ctrl.monitors[site]
	if !ok {
		return domain.MonitorRun{}, fmt.Errorf("no monitor running for %q: %w", site, domain.ErrNotFound)
	}
	return desc.runner.Status(), nil
}

func (ctrl *DefaultController) History(_ context.Context, site string) ([]*domain.ScanSnapshot, error) {
	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()

	desc, ok := ctrl.monitors[site]
	if !ok {
		return nil, fmt.Errorf("no monitor running for %q: %w", site, domain.ErrNotFound)
	}
	return desc.runner.History(), nil
}
