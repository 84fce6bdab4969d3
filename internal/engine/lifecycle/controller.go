// Package lifecycle drives the boot-time restore and persist of the instance state cache.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports"
)

// Options holds the per-boot parameters of a Controller.
type Options struct {
	Layout         domain.CacheLayout
	RuntimeVersion string
	Encoding       domain.Encoding
}

// Controller owns the cache files for exactly one boot.
// Restore must be called once, followed by Persist once.
type Controller struct {
	marker ports.VersionMarker
	store  ports.StateSerializer
	logger ports.Logger
	tracer ports.Tracer
	opts   Options

	phase    domain.Phase
	warnings []string
}

// New creates a Controller in the start phase.
func New(
	marker ports.VersionMarker,
	store ports.StateSerializer,
	log ports.Logger,
	tracer ports.Tracer,
	opts Options,
) *Controller {
	return &Controller{
		marker: marker,
		store:  store,
		logger: log,
		tracer: tracer,
		opts:   opts,
		phase:  domain.PhaseStart,
	}
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() domain.Phase {
	return c.phase
}

// Restore reads the marker, evaluates the artifact and returns the state to boot with.
// Cache problems are logged and reported, never returned; the error is only set when
// Restore is called out of order.
func (c *Controller) Restore(ctx context.Context) (*domain.InstanceState, domain.RestoreReport, error) {
	var report domain.RestoreReport

	if err := c.advance(domain.PhaseMarkerChecked); err != nil {
		return nil, report, err
	}

	_, span := c.tracer.Start(ctx, "cache.restore",
		ports.WithAttribute("artifact", c.opts.Layout.ArtifactPath),
		ports.WithAttribute("marker", c.opts.Layout.MarkerPath),
		ports.WithAttribute("runtime", c.opts.RuntimeVersion),
	)
	defer span.End()

	c.warnings = nil
	state := c.restore(&report)
	report.Warnings = c.warnings

	span.SetAttribute("verdict", report.Verdict)
	span.SetAttribute("outcome", report.Outcome)
	span.SetAttribute("purged", report.Purged)

	return state, report, nil
}

func (c *Controller) restore(report *domain.RestoreReport) *domain.InstanceState {
	version, present, markerErr := c.marker.Read(c.opts.Layout.MarkerPath)
	exists, existsErr := c.store.Exists(c.opts.Layout.ArtifactPath)

	if markerErr == nil {
		report.Marker = domain.MarkerFrom(version, present)
		if !present {
			c.logger.Info(domain.MsgMarkerUnknown)
		}
	}
	report.ArtifactPresent = exists

	if markerErr != nil || existsErr != nil {
		for _, err := range []error{markerErr, existsErr} {
			if err != nil {
				c.warn("Cache state unavailable, starting fresh: " + describe(err))
				c.logger.Debug(err.Error())
			}
		}
		return c.finish(report, domain.PhaseFresh)
	}

	_ = c.advance(domain.PhaseGateEvaluated)
	report.Verdict = domain.Evaluate(report.Marker, exists, c.opts.RuntimeVersion)

	if !exists {
		c.logger.Debug("no cache artifact at " + c.opts.Layout.ArtifactPath)
		return c.finish(report, domain.PhaseFresh)
	}

	switch report.Verdict {
	case domain.VerdictMarkerMissing:
		c.warn(domain.MsgMarkerMissing)
		return c.purge(report)
	case domain.VerdictVersionMismatch:
		c.logger.Info(domain.MsgVersionChange)
		return c.purge(report)
	}

	state, err := c.store.Load(c.opts.Layout.ArtifactPath, c.opts.RuntimeVersion)
	switch {
	case err == nil:
		return c.finish(report, domain.PhaseLoaded, state)
	case errors.Is(err, domain.ErrArtifactNotFound):
		c.logger.Info(domain.MsgNoCache)
		return c.finish(report, domain.PhaseFresh)
	default:
		report.Verdict = domain.VerdictMalformed
		c.warn(fmt.Sprintf(domain.MsgLoadFailedFmt, c.opts.Layout.ArtifactPath) + " (" + headline(err) + ")")
		c.logger.Debug(err.Error())
		return c.purge(report)
	}
}

// purge deletes the artifact and moves to the purged phase.
func (c *Controller) purge(report *domain.RestoreReport) *domain.InstanceState {
	if err := c.store.Remove(c.opts.Layout.ArtifactPath); err != nil {
		c.warn("Could not purge cache artifact: " + describe(err))
		c.logger.Debug(err.Error())
	} else {
		report.Purged = true
	}
	return c.finish(report, domain.PhasePurged)
}

// finish records the outcome and returns the restored state, or a fresh one.
func (c *Controller) finish(report *domain.RestoreReport, outcome domain.Phase, restored ...*domain.InstanceState) *domain.InstanceState {
	_ = c.advance(outcome)
	report.Outcome = outcome

	if len(restored) > 0 && restored[0] != nil {
		return restored[0]
	}
	return domain.NewInstanceState()
}

// Persist saves state and rewrites the marker for the current runtime, then ends
// the lifecycle. Write failures are logged and reported, never returned; the error
// is only set when Persist is called before Restore or twice.
func (c *Controller) Persist(ctx context.Context, state *domain.InstanceState) (domain.PersistReport, error) {
	var report domain.PersistReport

	if err := c.advance(domain.PhasePersisted); err != nil {
		return report, err
	}

	_, span := c.tracer.Start(ctx, "cache.persist",
		ports.WithAttribute("artifact", c.opts.Layout.ArtifactPath),
		ports.WithAttribute("runtime", c.opts.RuntimeVersion),
	)
	defer span.End()

	c.warnings = nil
	if state == nil {
		state = domain.NewInstanceState()
	}

	opts := domain.SaveOptions{Producer: c.opts.RuntimeVersion, Encoding: c.opts.Encoding}
	if err := c.store.Save(c.opts.Layout.ArtifactPath, state, opts); err != nil {
		c.warn("Could not write cache artifact: " + describe(err))
		c.logger.Debug(err.Error())
		span.RecordError(err)
	} else {
		report.ArtifactWritten = true
	}

	if err := c.marker.Write(c.opts.Layout.MarkerPath, c.opts.RuntimeVersion); err != nil {
		c.warn("Could not write version marker: " + describe(err))
		c.logger.Debug(err.Error())
		span.RecordError(err)
	} else {
		report.MarkerWritten = true
	}

	report.Warnings = c.warnings
	span.SetAttribute("artifact_written", report.ArtifactWritten)
	span.SetAttribute("marker_written", report.MarkerWritten)

	_ = c.advance(domain.PhaseEnd)
	return report, nil
}

func (c *Controller) advance(to domain.Phase) error {
	next, err := c.phase.Advance(to)
	if err != nil {
		return err
	}
	c.phase = next
	return nil
}

func (c *Controller) warn(msg string) {
	c.warnings = append(c.warnings, msg)
	c.logger.Warn(msg)
}

// headline renders err on one line. Each branch of a joined error contributes
// its first line, so the sentinel is followed by the cause it was joined with.
func headline(err error) string {
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return firstLine(err.Error())
	}

	parts := make([]string, 0, len(joined.Unwrap()))
	for _, e := range joined.Unwrap() {
		if e != nil {
			parts = append(parts, headline(e))
		}
	}
	return strings.Join(parts, ": ")
}

// describe is headline plus the path recorded on the error, unless the
// message already names it.
func describe(err error) string {
	msg := headline(err)
	if path := errorPath(err); path != "" && !strings.Contains(msg, path) {
		msg += " (" + path + ")"
	}
	return msg
}

// errorPath returns the first "path" metadata value found in err's tree.
func errorPath(err error) string {
	if err == nil {
		return ""
	}
	if carrier, ok := err.(interface{ Metadata() map[string]any }); ok {
		if path, ok := carrier.Metadata()["path"].(string); ok && path != "" {
			return path
		}
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, child := range e.Unwrap() {
			if path := errorPath(child); path != "" {
				return path
			}
		}
	case interface{ Unwrap() error }:
		return errorPath(e.Unwrap())
	}
	return ""
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}
