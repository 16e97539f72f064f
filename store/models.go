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

package store

import (
	"errors"
	"time"

	"github.com/lygwys/cms/common/utils"
)

// ErrNotFound is returned by single row lookups that match nothing.
var ErrNotFound = errors.New("not found")

type Site struct {
	Id        int    `json:"Id"`
	SiteName  string `json:"SiteName"`
	SiteDir   string `json:"SiteDir"`
	TableName string `json:"TableName"`
	IsRoot    bool   `json:"IsRoot"`
	ParentId  int    `json:"ParentId"`
	Taxis     int    `json:"Taxis"`
}

type Channel struct {
	Id                   int       `json:"Id"`
	ChannelName          string    `json:"ChannelName"`
	SiteId               int       `json:"SiteId"`
	ContentModelPluginId string    `json:"ContentModelPluginId"`
	ParentId             int       `json:"ParentId"`
	ParentsPath          string    `json:"ParentsPath"`
	ParentsCount         int       `json:"ParentsCount"`
	ChildrenCount        int       `json:"ChildrenCount"`
	IsLastNode           bool      `json:"IsLastNode"`
	IndexName            string    `json:"IndexName"`
	GroupNameCollection  string    `json:"GroupNameCollection"`
	Taxis                int       `json:"Taxis"`
	AddDate              time.Time `json:"AddDate"`
}

// ParentIds returns the ancestors recorded in ParentsPath, root first.
func (c Channel) ParentIds() []int {
	return utils.ParseIntCollection(c.ParentsPath)
}

// GroupNames returns the channel groups the channel belongs to.
func (c Channel) GroupNames() []string {
	return utils.ParseStringCollection(c.GroupNameCollection)
}

type Administrator struct {
	Id               int       `json:"Id"`
	UserName         string    `json:"UserName"`
	Password         string    `json:"-"`
	PasswordFormat   string    `json:"-"`
	PasswordSalt     string    `json:"-"`
	CreationDate     time.Time `json:"CreationDate"`
	LastActivityDate time.Time `json:"LastActivityDate"`
	CountOfLogin     int       `json:"CountOfLogin"`
	CreatorUserName  string    `json:"CreatorUserName"`
	IsLockedOut      bool      `json:"IsLockedOut"`
	SiteIdCollection string    `json:"SiteIdCollection"`
	SiteId           int       `json:"SiteId"`
	DepartmentId     int       `json:"DepartmentId"`
	AreaId           int       `json:"AreaId"`
	DisplayName      string    `json:"DisplayName"`
	Email            string    `json:"Email"`
	Mobile           string    `json:"Mobile"`
}

// SiteIds returns the sites a system administrator is restricted to.
func (a Administrator) SiteIds() []int {
	return utils.ParseIntCollection(a.SiteIdCollection)
}

type SitePermissions struct {
	Id                  int
	RoleName            string
	SiteId              int
	ChannelIdCollection string
	ChannelPermissions  string
	WebsitePermissions  string
}

type Department struct {
	Id             int
	DepartmentName string
	Code           string
	ParentId       int
	Taxis          int
	Summary        string
}

type Area struct {
	Id       int
	AreaName string
	ParentId int
	Taxis    int
}

// Create types understood by the page generator.
const (
	CreateTypeChannel    = "Channel"
	CreateTypeAllContent = "AllContent"
)

type CreateTask struct {
	Id             int
	Guid           string
	CreateType     string
	SiteId         int
	ChannelId      int
	ExecutionTimes int
	AddDate        time.Time
}
