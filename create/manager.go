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

// Package create queues page generation work and drains the queue.
//
// Handlers enqueue through Manager and return at once; Service polls the
// queue in the background and hands each task to a Generator.
package create

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lygwys/cms/caches"
	"github.com/lygwys/cms/logger"
	"github.com/lygwys/cms/store"
)

// Creator is what request handlers use to trigger generation.
type Creator interface {
	CreateChannel(ctx context.Context, siteId, channelId int) error
	CreateAllContent(ctx context.Context, siteId, channelId int) error
	CreateByAll(ctx context.Context, siteId int) error
}

type Manager struct {
	Tasks    store.CreateTaskRepository
	Channels caches.ChannelManager
	now      func() time.Time
}

func NewManager(tasks store.CreateTaskRepository, channels caches.ChannelManager) *Manager {
	return &Manager{Tasks: tasks, Channels: channels, now: time.Now}
}

// CreateChannel queues generation of the channel page. Invalid ids are
// ignored.
func (m *Manager) CreateChannel(ctx context.Context, siteId, channelId int) error {
	return m.enqueue(ctx, store.CreateTypeChannel, siteId, channelId)
}

// CreateAllContent queues generation of every content page of the channel.
func (m *Manager) CreateAllContent(ctx context.Context, siteId, channelId int) error {
	return m.enqueue(ctx, store.CreateTypeAllContent, siteId, channelId)
}

// CreateByAll drops the pending tasks of the site and queues every channel
// page followed by every channel's content pages.
func (m *Manager) CreateByAll(ctx context.Context, siteId int) error {
	if siteId <= 0 {
		return nil
	}
	if err := m.Tasks.DeleteAllBySiteId(ctx, siteId); err != nil {
		return err
	}
	channelIds, err := m.Channels.GetChannelIdList(ctx, siteId)
	if err != nil {
		return err
	}
	for _, id := range channelIds {
		if err := m.CreateChannel(ctx, siteId, id); err != nil {
			return err
		}
	}
	for _, id := range channelIds {
		if err := m.CreateAllContent(ctx, siteId, id); err != nil {
			return err
		}
	}
	logger.Log.Info("queued whole site generation", zap.Int("siteId", siteId), zap.Int("channels", len(channelIds)))
	return nil
}

func (m *Manager) enqueue(ctx context.Context, createType string, siteId, channelId int) error {
	if siteId <= 0 || channelId <= 0 {
		return nil
	}
	exists, err := m.Tasks.IsExists(ctx, createType, siteId, channelId)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	task := store.CreateTask{
		Guid:       uuid.New().String(),
		CreateType: createType,
		SiteId:     siteId,
		ChannelId:  channelId,
		AddDate:    m.clock(),
	}
	if err := m.Tasks.Insert(ctx, task); err != nil {
		return fmt.Errorf("can't queue %s generation of channel %d: %w", createType, channelId, err)
	}
	return nil
}

func (m *Manager) clock() time.Time {
	if m.now == nil {
		return time.Now()
	}
	return m.now()
}
