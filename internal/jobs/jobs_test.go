package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/harvest-export/website/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePublisher struct {
	calls atomic.Int32
	err   error
}

func (f *fakePublisher) PublishScheduled(ctx context.Context) (int64, error) {
	f.calls.Add(1)
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("missing deadline")
	}
	return 2, f.err
}

type fakePurger struct {
	retention time.Duration
	calls     atomic.Int32
}

func (f *fakePurger) PurgeRead(ctx context.Context, retention time.Duration) (int64, error) {
	f.calls.Add(1)
	f.retention = retention
	return 1, nil
}

func TestScheduler_AddAndRemove(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("b", "@every 1h", func() {}))
	require.NoError(t, s.AddJob("a", "0 */5 * * * *", func() {}))
	require.NoError(t, s.AddJob("c", "30 3 * * *", func() {}))
	assert.Equal(t, []string{"a", "b", "c"}, s.JobNames())

	assert.Error(t, s.AddJob("a", "@hourly", func() {}), "duplicate name")
	assert.Error(t, s.AddJob("bad", "not a cron", func() {}))

	require.NoError(t, s.RemoveJob("b"))
	assert.Error(t, s.RemoveJob("b"))
	assert.Equal(t, []string{"a", "c"}, s.JobNames())
}

func TestScheduler_RunsAndStops(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	ran := make(chan struct{}, 1)
	require.NoError(t, s.AddJob("tick", "@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))

	s.Start()
	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
	<-s.Stop().Done()
}

func TestScheduler_RecoversPanics(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	done := make(chan struct{})
	var once atomic.Bool
	require.NoError(t, s.AddJob("boom", "@every 1s", func() {
		if once.CompareAndSwap(false, true) {
			close(done)
		}
		panic("boom")
	}))

	s.Start()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
	<-s.Stop().Done()
}

func TestRegisterContentJobs(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	posts := &fakePublisher{}
	messages := &fakePurger{}

	cfg := &config.JobsConfig{
		PublishCron:          "0 * * * * *",
		RetentionCron:        "0 30 3 * * *",
		MessageRetentionDays: 30,
	}
	require.NoError(t, RegisterContentJobs(s, cfg, posts, messages, zap.NewNop()))

	assert.Equal(t, []string{PublishPostsJobName, PurgeMessagesJobName}, s.JobNames())
	assert.Equal(t, int32(1), posts.calls.Load(), "publish runs once at registration")
	assert.Zero(t, messages.calls.Load())
}

func TestRegisterContentJobs_RetentionDisabled(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	cfg := &config.JobsConfig{PublishCron: "@every 1m"}

	require.NoError(t, RegisterContentJobs(s, cfg, &fakePublisher{}, &fakePurger{}, zap.NewNop()))
	assert.Equal(t, []string{PublishPostsJobName}, s.JobNames())
}

func TestPurgeMessagesJob_PassesRetention(t *testing.T) {
	messages := &fakePurger{}
	NewPurgeMessagesJob(messages, 72*time.Hour, zap.NewNop(), time.Second).Run()

	assert.Equal(t, int32(1), messages.calls.Load())
	assert.Equal(t, 72*time.Hour, messages.retention)
}

func TestPublishPostsJob_ErrorIsLogged(t *testing.T) {
	posts := &fakePublisher{err: errors.New("db down")}
	assert.NotPanics(t, NewPublishPostsJob(posts, zap.NewNop(), time.Second).Run)
	assert.Equal(t, int32(1), posts.calls.Load())
}
