package jobs

import (
	"context"
	"time"

	"github.com/harvest-export/website/internal/config"
	"go.uber.org/zap"
)

const (
	PublishPostsJobName  = "publish-scheduled-posts"
	PurgeMessagesJobName = "purge-read-messages"

	// DefaultJobTimeout bounds a single run of a maintenance job
	DefaultJobTimeout = 2 * time.Minute
)

// PostPublisher flips scheduled posts whose publish time has passed to published
type PostPublisher interface {
	PublishScheduled(ctx context.Context) (int64, error)
}

// MessagePurger deletes read contact messages older than the retention period
type MessagePurger interface {
	PurgeRead(ctx context.Context, retention time.Duration) (int64, error)
}

// PublishPostsJob publishes scheduled blog posts
type PublishPostsJob struct {
	posts   PostPublisher
	logger  *zap.Logger
	timeout time.Duration
}

func NewPublishPostsJob(posts PostPublisher, logger *zap.Logger, timeout time.Duration) *PublishPostsJob {
	return &PublishPostsJob{posts: posts, logger: logger, timeout: timeout}
}

// Run is called by the scheduler
func (j *PublishPostsJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	count, err := j.posts.PublishScheduled(ctx)
	if err != nil {
		j.logger.Error("publishing scheduled posts failed",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}
	if count > 0 {
		j.logger.Info("published scheduled posts",
			zap.Int64("count", count),
			zap.Duration("duration", time.Since(start)))
	}
}

// PurgeMessagesJob removes read contact messages past retention
type PurgeMessagesJob struct {
	messages  MessagePurger
	retention time.Duration
	logger    *zap.Logger
	timeout   time.Duration
}

func NewPurgeMessagesJob(messages MessagePurger, retention time.Duration, logger *zap.Logger, timeout time.Duration) *PurgeMessagesJob {
	return &PurgeMessagesJob{messages: messages, retention: retention, logger: logger, timeout: timeout}
}

// Run is called by the scheduler
func (j *PurgeMessagesJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	count, err := j.messages.PurgeRead(ctx, j.retention)
	if err != nil {
		j.logger.Error("purging read messages failed", zap.Error(err))
		return
	}
	if count > 0 {
		j.logger.Info("purged read messages",
			zap.Int64("count", count),
			zap.Duration("retention", j.retention))
	}
}

// RegisterContentJobs adds the maintenance jobs named in cfg.
// The publish job also runs once immediately so posts due while the server was down appear at startup.
// Message purging is skipped when retention is zero.
func RegisterContentJobs(scheduler *Scheduler, cfg *config.JobsConfig, posts PostPublisher, messages MessagePurger, logger *zap.Logger) error {
	publish := NewPublishPostsJob(posts, logger, DefaultJobTimeout)
	if err := scheduler.AddJob(PublishPostsJobName, cfg.PublishCron, publish.Run); err != nil {
		return err
	}
	publish.Run()

	if cfg.MessageRetention() <= 0 {
		logger.Info("message retention disabled")
		return nil
	}
	purge := NewPurgeMessagesJob(messages, cfg.MessageRetention(), logger, DefaultJobTimeout)
	return scheduler.AddJob(PurgeMessagesJobName, cfg.RetentionCron, purge.Run)
}
