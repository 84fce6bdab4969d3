// Package discovery implements the boot's initialization work: it discovers
// instance facts and folds them into the restored state.
package discovery

import (
	"context"
	"errors"
	iofs "io/fs"
	"maps"
	"os"
	"runtime"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// KernelReleasePath is where the running kernel reports its release.
const KernelReleasePath = "/proc/sys/kernel/osrelease"

const (
	// StageFacts records fact discovery.
	StageFacts = "facts"
	// StageConfig records merging of configured values.
	StageConfig = "config"
)

// Sources of the instance identifier, stored under the instance_id_source fact.
const (
	IDSourceFile      = "file"
	IDSourceCache     = "cache"
	IDSourceGenerated = "generated"
)

var _ ports.Initializer = (*Initializer)(nil)

// Initializer implements ports.Initializer.
type Initializer struct {
	logger ports.Logger
	tracer ports.Tracer

	now      func() time.Time
	hostname func() (string, error)
	readFile func(string) ([]byte, error)
	newID    func() string
}

// New creates a new Initializer probing the local machine.
func New(log ports.Logger, tracer ports.Tracer) *Initializer {
	return &Initializer{
		logger:   log,
		tracer:   tracer,
		now:      time.Now,
		hostname: os.Hostname,
		readFile: os.ReadFile,
		newID:    uuid.NewString,
	}
}

type fact struct {
	key   string
	probe func() (string, error)
}

// Initialize discovers facts, resolves the instance identity and updates state.
// Individual probe failures are recorded in the stage history; only cancellation
// fails the initialization.
func (i *Initializer) Initialize(ctx context.Context, cfg *domain.Config, state *domain.InstanceState) error {
	ctx, span := i.tracer.Start(ctx, "instance.initialize")
	defer span.End()

	state.Normalize()

	facts, probeErrs, err := i.discover(ctx, cfg)
	if err != nil {
		err = errors.Join(domain.ErrFactDiscoveryFailed, err)
		span.RecordError(err)
		return err
	}

	id, source := i.resolveInstanceID(facts["instance_id"], state.InstanceID)
	delete(facts, "instance_id")
	facts["instance_id_source"] = source

	if state.InstanceID != "" && state.InstanceID != id {
		i.logger.Info("Instance ID changed from " + state.InstanceID + " to " + id + ", resetting instance state")
		state.ResetInstanceData()
	}
	state.InstanceID = id
	state.Facts = facts

	if cfg.Datasource != "" {
		state.Datasource = cfg.Datasource
	}

	now := i.now().UTC()
	state.RecordStage(stageResult(StageFacts, probeErrs, now))

	maps.Copy(state.Config, cfg.Values)
	state.RecordStage(domain.StageResult{Name: StageConfig, Status: domain.StageStatusCompleted, FinishedAt: now})

	state.BootCount++
	state.UpdatedAt = now

	span.SetAttribute("instance_id", id)
	span.SetAttribute("instance_id_source", source)
	span.SetAttribute("boot_count", state.BootCount)
	return nil
}

// discover runs every fact probe concurrently. Missing sources are skipped;
// other probe errors are collected and returned as messages.
func (i *Initializer) discover(ctx context.Context, cfg *domain.Config) (map[string]string, []string, error) {
	probes := []fact{
		{key: "hostname", probe: i.hostname},
		{key: "os", probe: func() (string, error) { return runtime.GOOS, nil }},
		{key: "arch", probe: func() (string, error) { return runtime.GOARCH, nil }},
		{key: "kernel_release", probe: func() (string, error) { return i.readTrimmed(KernelReleasePath) }},
		{key: "instance_id", probe: func() (string, error) { return i.readTrimmed(cfg.InstanceIDFile) }},
	}

	var (
		mu    sync.Mutex
		facts = make(map[string]string, len(probes)+1)
	)
	// Indexed by probe so the recorded order does not depend on scheduling.
	messages := make([]string, len(probes))

	g, gctx := errgroup.WithContext(ctx)
	for idx, f := range probes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			value, err := f.probe()

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil && value != "":
				facts[f.key] = value
			case err != nil && !errors.Is(err, iofs.ErrNotExist):
				messages[idx] = zerr.With(zerr.Wrap(err, "probe "+f.key), "fact", f.key).Error()
				i.logger.Debug("fact " + f.key + " unavailable: " + err.Error())
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	messages = slices.DeleteFunc(messages, func(m string) bool { return m == "" })
	if len(messages) == 0 {
		return facts, nil, nil
	}
	return facts, messages, nil
}

func (i *Initializer) readTrimmed(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := i.readFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (i *Initializer) resolveInstanceID(discovered, cached string) (id, source string) {
	switch {
	case discovered != "":
		return discovered, IDSourceFile
	case cached != "":
		return cached, IDSourceCache
	default:
		return i.newID(), IDSourceGenerated
	}
}

func stageResult(name string, errs []string, at time.Time) domain.StageResult {
	status := domain.StageStatusCompleted
	if len(errs) > 0 {
		status = domain.StageStatusFailed
	}
	return domain.StageResult{Name: name, Status: status, Errors: errs, FinishedAt: at}
}
