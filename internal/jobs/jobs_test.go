package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionPurger struct{ mock.Mock }

func (m *MockSessionPurger) Handle(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type fakeJob struct {
	name     string
	startErr error
	events   *[]string
}

func (j fakeJob) Name() string { return j.name }

func (j fakeJob) Start() error {
	if j.startErr != nil {
		return j.startErr
	}
	*j.events = append(*j.events, "start "+j.name)
	return nil
}

func (j fakeJob) Stop() {
	*j.events = append(*j.events, "stop "+j.name)
}

func TestSessionCleanupJob(t *testing.T) {
	newJob := func(purger SessionPurger, schedule string) (*SessionCleanupJob, *bytes.Buffer) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		return NewSessionCleanupJob(purger, schedule, logger), &buf
	}

	t.Run("should log the number of purged sessions", func(t *testing.T) {
		purger := new(MockSessionPurger)
		purger.On("Handle", mock.Anything).Return(int64(3), nil).Once()
		job, logs := newJob(purger, "")

		job.run()

		assert.Contains(t, logs.String(), `"msg":"Expired sessions purged"`)
		assert.Contains(t, logs.String(), `"count":3`)
		assert.Contains(t, logs.String(), `"component":"session_cleanup_job"`)
		purger.AssertExpectations(t)
	})

	t.Run("should stay quiet when nothing expired", func(t *testing.T) {
		purger := new(MockSessionPurger)
		purger.On("Handle", mock.Anything).Return(int64(0), nil).Once()
		job, logs := newJob(purger, "")

		job.run()

		assert.Empty(t, logs.String())
	})

	t.Run("should log a failed cleanup", func(t *testing.T) {
		purger := new(MockSessionPurger)
		purger.On("Handle", mock.Anything).Return(int64(0), errors.New("store unavailable")).Once()
		job, logs := newJob(purger, "")

		job.run()

		assert.Contains(t, logs.String(), `"level":"ERROR"`)
		assert.Contains(t, logs.String(), "store unavailable")
	})

	t.Run("should default the schedule", func(t *testing.T) {
		job, _ := newJob(new(MockSessionPurger), "")

		assert.Equal(t, DefaultSessionCleanupSchedule, job.schedule)
	})

	t.Run("should reject a malformed schedule", func(t *testing.T) {
		job, _ := newJob(new(MockSessionPurger), "every ten minutes")

		require.Error(t, job.Start())
	})

	t.Run("should start and stop", func(t *testing.T) {
		job, logs := newJob(new(MockSessionPurger), "0 0 3 * * *")

		require.NoError(t, job.Start())
		job.Stop()

		assert.Contains(t, logs.String(), "Session cleanup job started")
		assert.Contains(t, logs.String(), "Session cleanup job stopped")
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should start in order and stop in reverse", func(t *testing.T) {
		var events []string
		jm := NewJobManager(fakeJob{name: "a", events: &events}, fakeJob{name: "b", events: &events})

		require.NoError(t, jm.StartAll())
		jm.StopAll()

		assert.Equal(t, []string{"start a", "start b", "stop b", "stop a"}, events)
	})

	t.Run("should stop started jobs when one fails to start", func(t *testing.T) {
		var events []string
		jm := NewJobManager(
			fakeJob{name: "a", events: &events},
			fakeJob{name: "b", events: &events, startErr: errors.New("bad schedule")},
		)

		err := jm.StartAll()

		require.ErrorContains(t, err, "failed to start b job")
		assert.Equal(t, []string{"start a", "stop a"}, events)
	})
}
