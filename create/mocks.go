// Copyright 2024 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package create

import "context"

type CreatorMock struct {
	CreateChannelMock    func(ctx context.Context, siteId, channelId int) error
	CreateAllContentMock func(ctx context.Context, siteId, channelId int) error
	CreateByAllMock      func(ctx context.Context, siteId int) error
}

func (cm *CreatorMock) CreateChannel(ctx context.Context, siteId, channelId int) error {
	return cm.CreateChannelMock(ctx, siteId, channelId)
}

func (cm *CreatorMock) CreateAllContent(ctx context.Context, siteId, channelId int) error {
	return cm.CreateAllContentMock(ctx, siteId, channelId)
}

func (cm *CreatorMock) CreateByAll(ctx context.Context, siteId int) error {
	return cm.CreateByAllMock(ctx, siteId)
}
