// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package create

import (
	"context"
	"errors"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"

	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/store"
)

const (
	defaultBatchSize   = 100
	defaultMaxAttempts = 3
)

// Generator renders the pages a task describes.
type Generator interface {
	Generate(ctx context.Context, task store.CreateTask) error
}

// LogGenerator only records the tasks it receives. Rendering templates is
// done by the publishing front end, not by this service.
type LogGenerator struct{}

func (LogGenerator) Generate(ctx context.Context, task store.CreateTask) error {
	logger.Log.Info("generate pages",
		zap.String("type", task.CreateType),
		zap.Int("siteId", task.SiteId),
		zap.Int("channelId", task.ChannelId),
		zap.String("guid", task.Guid))
	return nil
}

// Service drains the create task queue.
type Service struct {
	Tasks        store.CreateTaskRepository
	Generator    Generator
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
	limiter      ratelimit.Limiter
}

// NewService returns a service handing at most tasksPerSecond tasks to gen.
// A non-positive rate disables throttling.
func NewService(tasks store.CreateTaskRepository, gen Generator, pollInterval time.Duration, tasksPerSecond int) *Service {
	limiter := ratelimit.NewUnlimited()
	if tasksPerSecond > 0 {
		limiter = ratelimit.New(tasksPerSecond)
	}
	return &Service{
		Tasks:        tasks,
		Generator:    gen,
		PollInterval: pollInterval,
		BatchSize:    defaultBatchSize,
		MaxAttempts:  defaultMaxAttempts,
		limiter:      limiter,
	}
}

// Run processes batches until ctx is done. Queue errors are logged and
// retried on the next tick.
func (s *Service) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.PollInterval)
	defer ticker.Stop()
	logger.Log.Info("create worker started", zap.Duration("pollInterval", s.PollInterval))
	for {
		for {
			n, err := s.RunOnce(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return nil
				}
				logger.Log.Error("create worker failed to process the queue", zap.Error(err))
				break
			}
			if n < s.BatchSize {
				break
			}
		}
		select {
		case <-ctx.Done():
			logger.Log.Info("create worker stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// RunOnce processes one batch of pending tasks and returns its size.
// A task that fails is retried until MaxAttempts, then dropped.
func (s *Service) RunOnce(ctx context.Context) (int, error) {
	tasks, err := s.Tasks.GetPending(ctx, s.BatchSize)
	if err != nil {
		return 0, err
	}
	for _, task := range tasks {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		s.limiter.Take()
		genErr := s.Generator.Generate(ctx, task)
		if genErr == nil {
			if err := s.Tasks.Delete(ctx, task.Id); err != nil {
				return 0, err
			}
			continue
		}
		attempts := task.ExecutionTimes + 1
		if attempts >= s.MaxAttempts {
			logger.Log.Error("dropping create task after repeated failures",
				zap.Int("taskId", task.Id), zap.Int("attempts", attempts), zap.Error(genErr))
			if err := s.Tasks.Delete(ctx, task.Id); err != nil {
				return 0, err
			}
			continue
		}
		logger.Log.Warn("create task failed, will retry", zap.Int("taskId", task.Id), zap.Error(genErr))
		if err := s.Tasks.UpdateExecutionTimes(ctx, task.Id, attempts); err != nil {
			return 0, err
		}
	}
	return len(tasks), nil
}
