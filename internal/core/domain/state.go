package domain

import (
	"slices"
	"strings"
	"time"
)

// MaxStageHistory bounds the number of stage results retained across boots.
const MaxStageHistory = 16

// StageStatus represents the outcome of one initialization stage.
type StageStatus string

const (
	// StageStatusCompleted indicates the stage ran to completion.
	StageStatusCompleted StageStatus = "completed"
	// StageStatusFailed indicates the stage returned an error.
	StageStatusFailed StageStatus = "failed"
	// StageStatusSkipped indicates the stage did not run.
	StageStatusSkipped StageStatus = "skipped"
)

// NormalizeStageStatus converts a string to a StageStatus, defaulting to skipped if unknown.
// This is useful for deserialization.
func NormalizeStageStatus(s string) StageStatus {
	switch strings.ToLower(s) {
	case string(StageStatusCompleted):
		return StageStatusCompleted
	case string(StageStatusFailed):
		return StageStatusFailed
	default:
		return StageStatusSkipped
	}
}

// StageResult records the outcome of an initialization stage from a previous boot.
type StageResult struct {
	Name       string      `json:"name,omitzero"`
	Status     StageStatus `json:"status,omitzero"`
	Errors     []string    `json:"errors,omitzero"`
	FinishedAt time.Time   `json:"finished_at,omitzero"`
}

// InstanceState is the in-memory object graph persisted across boots.
type InstanceState struct {
	InstanceID string            `json:"instance_id,omitzero"`
	Datasource string            `json:"datasource,omitzero"`
	Config     map[string]string `json:"config,omitzero"`
	Facts      map[string]string `json:"facts,omitzero"`
	Stages     []StageResult     `json:"stages,omitzero"`
	BootCount  int               `json:"boot_count,omitzero"`
	UpdatedAt  time.Time         `json:"updated_at,omitzero"`
}

// NewInstanceState returns the fresh state used when nothing could be restored.
func NewInstanceState() *InstanceState {
	return &InstanceState{
		Config: make(map[string]string),
		Facts:  make(map[string]string),
	}
}

// RecordStage appends a stage result, dropping the oldest entries beyond MaxStageHistory.
func (s *InstanceState) RecordStage(r StageResult) {
	s.Stages = append(s.Stages, r)
	if over := len(s.Stages) - MaxStageHistory; over > 0 {
		s.Stages = slices.Delete(s.Stages, 0, over)
	}
}

// ResetInstanceData clears everything that belongs to a specific instance.
// The boot counter is kept since it describes the machine, not the instance.
func (s *InstanceState) ResetInstanceData() {
	s.InstanceID = ""
	s.Datasource = ""
	s.Config = make(map[string]string)
	s.Facts = make(map[string]string)
	s.Stages = nil
}

// Normalize fills nil maps so a decoded state behaves like a fresh one.
func (s *InstanceState) Normalize() {
	if s.Config == nil {
		s.Config = make(map[string]string)
	}
	if s.Facts == nil {
		s.Facts = make(map[string]string)
	}
	for i := range s.Stages {
		s.Stages[i].Status = NormalizeStageStatus(string(s.Stages[i].Status))
	}
}
