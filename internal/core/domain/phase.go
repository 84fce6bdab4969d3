package domain

import (
	"errors"

	"go.trai.ch/zerr"
)

// Phase is a state of the cache lifecycle within a single boot.
type Phase uint8

const (
	// PhaseStart is the initial phase before anything was read.
	PhaseStart Phase = iota
	// PhaseMarkerChecked means the marker and artifact presence are known.
	PhaseMarkerChecked
	// PhaseGateEvaluated means a compatibility verdict was computed.
	PhaseGateEvaluated
	// PhaseLoaded means the cached state was restored.
	PhaseLoaded
	// PhasePurged means the artifact was discarded and fresh state is used.
	PhasePurged
	// PhaseFresh means there was nothing usable to restore.
	PhaseFresh
	// PhasePersisted means the artifact and marker were written for this runtime.
	PhasePersisted
	// PhaseEnd is terminal.
	PhaseEnd
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhaseMarkerChecked:
		return "marker-checked"
	case PhaseGateEvaluated:
		return "gate-evaluated"
	case PhaseLoaded:
		return "loaded"
	case PhasePurged:
		return "purged"
	case PhaseFresh:
		return "fresh"
	case PhasePersisted:
		return "persisted"
	case PhaseEnd:
		return "end"
	default:
		return "unknown"
	}
}

var transitions = map[Phase][]Phase{
	PhaseStart:         {PhaseMarkerChecked},
	PhaseMarkerChecked: {PhaseGateEvaluated, PhaseFresh},
	PhaseGateEvaluated: {PhaseLoaded, PhasePurged, PhaseFresh},
	PhaseLoaded:        {PhasePersisted},
	PhasePurged:        {PhasePersisted},
	PhaseFresh:         {PhasePersisted},
	PhasePersisted:     {PhaseEnd},
}

// Advance returns to when the move from p is legal and ErrInvalidTransition otherwise.
func (p Phase) Advance(to Phase) (Phase, error) {
	for _, next := range transitions[p] {
		if next == to {
			return to, nil
		}
	}
	detail := zerr.With(zerr.New("illegal phase change"), "from", p.String())
	return p, errors.Join(ErrInvalidTransition, zerr.With(detail, "to", to.String()))
}
