package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warmboot/internal/core/domain"
)

func TestEvaluate(t *testing.T) {
	const current = "go1.25.3"

	tests := []struct {
		name     string
		marker   domain.MarkerVersion
		exists   bool
		expected domain.Verdict
	}{
		{"no artifact, no marker", domain.NoMarker(), false, domain.VerdictCompatible},
		{"no artifact, stale marker", domain.SomeMarker("1.0"), false, domain.VerdictCompatible},
		{"artifact without marker", domain.NoMarker(), true, domain.VerdictMarkerMissing},
		{"artifact with stale marker", domain.SomeMarker("1.0"), true, domain.VerdictVersionMismatch},
		{"artifact with empty marker", domain.SomeMarker(""), true, domain.VerdictVersionMismatch},
		{"artifact with current marker", domain.SomeMarker(current), true, domain.VerdictCompatible},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.Evaluate(tt.marker, tt.exists, current))
		})
	}
}

func TestVerdict_String(t *testing.T) {
	assert.Equal(t, "compatible", domain.VerdictCompatible.String())
	assert.Equal(t, "version-mismatch", domain.VerdictVersionMismatch.String())
	assert.Equal(t, "marker-missing", domain.VerdictMarkerMissing.String())
	assert.Equal(t, "malformed", domain.VerdictMalformed.String())
	assert.Equal(t, "unknown", domain.Verdict(42).String())

	assert.True(t, domain.VerdictCompatible.Trusted())
	assert.False(t, domain.VerdictMalformed.Trusted())
}

func TestPhase_Advance(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		p := domain.PhaseStart
		for _, next := range []domain.Phase{
			domain.PhaseMarkerChecked,
			domain.PhaseGateEvaluated,
			domain.PhaseLoaded,
			domain.PhasePersisted,
			domain.PhaseEnd,
		} {
			var err error
			p, err = p.Advance(next)
			require.NoError(t, err)
		}
		assert.Equal(t, domain.PhaseEnd, p)
	})

	t.Run("recoverable failure skips the gate", func(t *testing.T) {
		p, err := domain.PhaseMarkerChecked.Advance(domain.PhaseFresh)
		require.NoError(t, err)
		assert.Equal(t, domain.PhaseFresh, p)
	})

	illegal := []struct {
		from, to domain.Phase
	}{
		{domain.PhaseStart, domain.PhasePersisted},
		{domain.PhaseMarkerChecked, domain.PhaseLoaded},
		{domain.PhaseLoaded, domain.PhasePurged},
		{domain.PhasePersisted, domain.PhasePersisted},
		{domain.PhaseEnd, domain.PhaseStart},
	}
	for _, tt := range illegal {
		t.Run(fmt.Sprintf("%s to %s", tt.from, tt.to), func(t *testing.T) {
			p, err := tt.from.Advance(tt.to)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidTransition))
			assert.Equal(t, tt.from, p)
		})
	}
}

func TestMarkerFrom(t *testing.T) {
	assert.Equal(t, domain.SomeMarker("go1.25.3"), domain.MarkerFrom("go1.25.3", true))
	assert.Equal(t, domain.SomeMarker(""), domain.MarkerFrom("", true))
	assert.Equal(t, domain.NoMarker(), domain.MarkerFrom("stale", false))
}

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		input    string
		expected domain.Encoding
		wantErr  bool
	}{
		{"", domain.EncodingJSON, false},
		{"json", domain.EncodingJSON, false},
		{" JSON ", domain.EncodingJSON, false},
		{"proto", domain.EncodingProto, false},
		{"pickle", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseEncoding(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrUnknownEncoding)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestInstanceState_RecordStage(t *testing.T) {
	s := domain.NewInstanceState()
	for i := range domain.MaxStageHistory + 3 {
		s.RecordStage(domain.StageResult{Name: fmt.Sprintf("boot-%d", i), Status: domain.StageStatusCompleted})
	}

	require.Len(t, s.Stages, domain.MaxStageHistory)
	assert.Equal(t, "boot-3", s.Stages[0].Name)
	assert.Equal(t, fmt.Sprintf("boot-%d", domain.MaxStageHistory+2), s.Stages[len(s.Stages)-1].Name)
}

func TestInstanceState_ResetInstanceData(t *testing.T) {
	s := domain.NewInstanceState()
	s.InstanceID = "i-123"
	s.Datasource = "NoCloud"
	s.Facts["hostname"] = "box"
	s.BootCount = 7
	s.RecordStage(domain.StageResult{Name: "init"})

	s.ResetInstanceData()

	assert.Empty(t, s.InstanceID)
	assert.Empty(t, s.Datasource)
	assert.Empty(t, s.Facts)
	assert.Nil(t, s.Stages)
	assert.Equal(t, 7, s.BootCount)
}

func TestInstanceState_Normalize(t *testing.T) {
	s := &domain.InstanceState{Stages: []domain.StageResult{{Name: "init", Status: "COMPLETED"}, {Name: "x", Status: "??"}}}
	s.Normalize()

	assert.NotNil(t, s.Config)
	assert.NotNil(t, s.Facts)
	assert.Equal(t, domain.StageStatusCompleted, s.Stages[0].Status)
	assert.Equal(t, domain.StageStatusSkipped, s.Stages[1].Status)
}

func TestLayout(t *testing.T) {
	assert.Equal(t, "/var/lib/warmboot/instance/obj.blob", domain.DefaultArtifactPath(domain.DefaultStateDir))
	assert.Equal(t, "/var/lib/warmboot/data/python-version", domain.DefaultMarkerPath(domain.DefaultStateDir))
	assert.Equal(t, "/srv/state/x/y", domain.ResolvePath("/srv/state", "x/y"))
	assert.Equal(t, "/abs/y", domain.ResolvePath("/srv/state", "/abs/y"))
	assert.Empty(t, domain.ResolvePath("/srv/state", ""))
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", domain.LogLevelDebug.String())
	assert.Equal(t, "WARN", domain.LogLevelWarn.String())
	assert.Equal(t, domain.LogLevelDebug, domain.ParseLogLevel("Debug"))
	assert.Equal(t, domain.LogLevelWarn, domain.ParseLogLevel("warning"))
	assert.Equal(t, domain.LogLevelError, domain.ParseLogLevel("error"))
	assert.Equal(t, domain.LogLevelInfo, domain.ParseLogLevel("nonsense"))
}

func TestConfig_WithStateDir(t *testing.T) {
	newConfig := func() *domain.Config {
		return &domain.Config{
			StateDir:     "/var/lib/warmboot",
			ArtifactPath: "/var/lib/warmboot/instance/obj.blob",
			MarkerPath:   "/opt/markers/python-version",
		}
	}

	t.Run("rebases paths under the old state dir", func(t *testing.T) {
		cfg := newConfig()
		cfg.WithStateDir("/tmp/state/")

		assert.Equal(t, "/tmp/state", cfg.StateDir)
		assert.Equal(t, "/tmp/state/instance/obj.blob", cfg.ArtifactPath)
		assert.Equal(t, "/opt/markers/python-version", cfg.MarkerPath)
		assert.Equal(t, domain.CacheLayout{
			ArtifactPath: "/tmp/state/instance/obj.blob",
			MarkerPath:   "/opt/markers/python-version",
		}, cfg.Layout())
	})

	t.Run("empty dir is a no-op", func(t *testing.T) {
		cfg := newConfig()
		cfg.WithStateDir("")

		assert.Equal(t, newConfig(), cfg)
	})
}
