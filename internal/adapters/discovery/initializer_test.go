package discovery_test

import (
	"context"
	"errors"
	iofs "io/fs"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warmboot/internal/adapters/discovery"
	"go.trai.ch/warmboot/internal/adapters/telemetry"
	"go.trai.ch/warmboot/internal/core/domain"
	"go.trai.ch/warmboot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

var bootTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type machine struct {
	hostname string
	files    map[string]string
	failing  map[string]error
}

func (m machine) readFile(path string) ([]byte, error) {
	if err, ok := m.failing[path]; ok {
		return nil, err
	}
	content, ok := m.files[path]
	if !ok {
		return nil, iofs.ErrNotExist
	}
	return []byte(content), nil
}

func newInitializer(t *testing.T, m machine) (*discovery.Initializer, *mocks.MockLogger) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	ini := discovery.New(log, telemetry.NewNoOpTracer())
	ini.SetProbes(
		func() (string, error) { return m.hostname, nil },
		m.readFile,
		func() string { return "generated-id" },
		func() time.Time { return bootTime },
	)
	return ini, log
}

func testConfig() *domain.Config {
	return &domain.Config{
		InstanceIDFile: "/etc/machine-id",
		Datasource:     "NoCloud",
		Values:         map[string]string{"locale": "C.UTF-8"},
	}
}

func TestInitialize_FirstBoot(t *testing.T) {
	ini, _ := newInitializer(t, machine{
		hostname: "web-1",
		files: map[string]string{
			"/etc/machine-id":           "abc123\n",
			discovery.KernelReleasePath: "6.8.0-45-generic\n",
		},
	})

	state := domain.NewInstanceState()
	require.NoError(t, ini.Initialize(context.Background(), testConfig(), state))

	assert.Equal(t, "abc123", state.InstanceID)
	assert.Equal(t, "NoCloud", state.Datasource)
	assert.Equal(t, map[string]string{"locale": "C.UTF-8"}, state.Config)
	assert.Equal(t, map[string]string{
		"hostname":           "web-1",
		"os":                 runtime.GOOS,
		"arch":               runtime.GOARCH,
		"kernel_release":     "6.8.0-45-generic",
		"instance_id_source": discovery.IDSourceFile,
	}, state.Facts)
	assert.Equal(t, 1, state.BootCount)
	assert.Equal(t, bootTime, state.UpdatedAt)

	require.Len(t, state.Stages, 2)
	assert.Equal(t, discovery.StageFacts, state.Stages[0].Name)
	assert.Equal(t, domain.StageStatusCompleted, state.Stages[0].Status)
	assert.Equal(t, discovery.StageConfig, state.Stages[1].Name)
}

func TestInitialize_ReusesCachedID(t *testing.T) {
	ini, _ := newInitializer(t, machine{hostname: "web-1"})

	state := domain.NewInstanceState()
	state.InstanceID = "cached-id"
	state.Config["hostname"] = "web-1"
	state.BootCount = 7

	require.NoError(t, ini.Initialize(context.Background(), testConfig(), state))

	assert.Equal(t, "cached-id", state.InstanceID)
	assert.Equal(t, discovery.IDSourceCache, state.Facts["instance_id_source"])
	assert.Equal(t, "web-1", state.Config["hostname"])
	assert.Equal(t, "C.UTF-8", state.Config["locale"])
	assert.Equal(t, 8, state.BootCount)
	assert.NotContains(t, state.Facts, "kernel_release")
}

func TestInitialize_GeneratesID(t *testing.T) {
	ini, _ := newInitializer(t, machine{hostname: "web-1"})

	state := domain.NewInstanceState()
	require.NoError(t, ini.Initialize(context.Background(), testConfig(), state))

	assert.Equal(t, "generated-id", state.InstanceID)
	assert.Equal(t, discovery.IDSourceGenerated, state.Facts["instance_id_source"])
}

func TestInitialize_NewInstanceResetsState(t *testing.T) {
	ini, log := newInitializer(t, machine{
		hostname: "web-2",
		files:    map[string]string{"/etc/machine-id": "new-id"},
	})
	log.EXPECT().Info("Instance ID changed from old-id to new-id, resetting instance state").Times(1)

	state := domain.NewInstanceState()
	state.InstanceID = "old-id"
	state.Datasource = "Ec2"
	state.Config["stale"] = "yes"
	state.BootCount = 3
	state.RecordStage(domain.StageResult{Name: "old", Status: domain.StageStatusCompleted})

	cfg := testConfig()
	cfg.Datasource = ""
	require.NoError(t, ini.Initialize(context.Background(), cfg, state))

	assert.Equal(t, "new-id", state.InstanceID)
	assert.Empty(t, state.Datasource)
	assert.NotContains(t, state.Config, "stale")
	assert.Equal(t, 4, state.BootCount)
	require.Len(t, state.Stages, 2)
	assert.Equal(t, discovery.StageFacts, state.Stages[0].Name)
}

func TestInitialize_ProbeFailureIsRecorded(t *testing.T) {
	ini, _ := newInitializer(t, machine{
		hostname: "web-1",
		failing:  map[string]error{discovery.KernelReleasePath: errors.New("permission denied")},
	})

	state := domain.NewInstanceState()
	require.NoError(t, ini.Initialize(context.Background(), testConfig(), state))

	require.Len(t, state.Stages, 2)
	assert.Equal(t, domain.StageStatusFailed, state.Stages[0].Status)
	require.Len(t, state.Stages[0].Errors, 1)
	assert.Contains(t, state.Stages[0].Errors[0], "permission denied")
	assert.NotContains(t, state.Facts, "kernel_release")
}

func TestInitialize_ProbeErrorsKeepProbeOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Debug(gomock.Any()).AnyTimes()

	// The hostname probe finishes only after both file probes have failed.
	var reads sync.WaitGroup
	reads.Add(2)
	ini := discovery.New(log, telemetry.NewNoOpTracer())
	ini.SetProbes(
		func() (string, error) {
			reads.Wait()
			return "", errors.New("uts namespace unavailable")
		},
		func(path string) ([]byte, error) {
			defer reads.Done()
			return nil, errors.New("permission denied: " + path)
		},
		func() string { return "generated-id" },
		func() time.Time { return bootTime },
	)

	for range 3 {
		state := domain.NewInstanceState()
		require.NoError(t, ini.Initialize(context.Background(), testConfig(), state))
		reads.Add(2)

		errs := state.Stages[0].Errors
		require.Len(t, errs, 3)
		assert.Contains(t, errs[0], "probe hostname")
		assert.Contains(t, errs[1], "probe kernel_release")
		assert.Contains(t, errs[2], "probe instance_id")
	}
}

func TestInitialize_CanceledContext(t *testing.T) {
	ini, _ := newInitializer(t, machine{hostname: "web-1"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	state := domain.NewInstanceState()
	err := ini.Initialize(ctx, testConfig(), state)
	require.ErrorIs(t, err, domain.ErrFactDiscoveryFailed)
	require.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, state.BootCount)
}

func TestInitialize_StageHistoryIsBounded(t *testing.T) {
	ini, _ := newInitializer(t, machine{hostname: "web-1", files: map[string]string{"/etc/machine-id": "abc"}})

	state := domain.NewInstanceState()
	for range domain.MaxStageHistory {
		require.NoError(t, ini.Initialize(context.Background(), testConfig(), state))
	}

	assert.Len(t, state.Stages, domain.MaxStageHistory)
	assert.Equal(t, domain.MaxStageHistory, state.BootCount)
}
