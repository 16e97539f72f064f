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

package caches

import (
	"context"
	"time"

	"github.com/lygwys/cms/store"
)

type DepartmentManager interface {
	GetDepartmentName(ctx context.Context, departmentId int) (string, error)
	Clear()
}

type AreaManager interface {
	GetAreaName(ctx context.Context, areaId int) (string, error)
	Clear()
}

// nameIndex caches an id to name table loaded in one query.
type nameIndex struct {
	load  func(ctx context.Context) (map[int]string, error)
	cache *Cache[string, map[int]string]
}

func newNameIndex(ttl time.Duration, load func(ctx context.Context) (map[int]string, error)) (*nameIndex, error) {
	c, err := NewCache[string, map[int]string](4, ttl)
	if err != nil {
		return nil, err
	}
	return &nameIndex{load: load, cache: c}, nil
}

func (n *nameIndex) name(ctx context.Context, id int) (string, error) {
	if id <= 0 {
		return "", nil
	}
	names, err := n.cache.GetOrLoad(ctx, allKey, n.load)
	if err != nil {
		return "", err
	}
	return names[id], nil
}

type DepartmentManagerImpl struct{ idx *nameIndex }

func NewDepartmentManager(repo store.DepartmentRepository, ttl time.Duration) (*DepartmentManagerImpl, error) {
	idx, err := newNameIndex(ttl, func(ctx context.Context) (map[int]string, error) {
		departments, err := repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		names := make(map[int]string, len(departments))
		for _, d := range departments {
			names[d.Id] = d.DepartmentName
		}
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return &DepartmentManagerImpl{idx: idx}, nil
}

// GetDepartmentName returns "" when the department does not exist.
func (m *DepartmentManagerImpl) GetDepartmentName(ctx context.Context, departmentId int) (string, error) {
	return m.idx.name(ctx, departmentId)
}

func (m *DepartmentManagerImpl) Clear() { m.idx.cache.Clear() }

type AreaManagerImpl struct{ idx *nameIndex }

func NewAreaManager(repo store.AreaRepository, ttl time.Duration) (*AreaManagerImpl, error) {
	idx, err := newNameIndex(ttl, func(ctx context.Context) (map[int]string, error) {
		areas, err := repo.GetAll(ctx)
		if err != nil {
			return nil, err
		}
		names := make(map[int]string, len(areas))
		for _, a := range areas {
			names[a.Id] = a.AreaName
		}
		return names, nil
	})
	if err != nil {
		return nil, err
	}
	return &AreaManagerImpl{idx: idx}, nil
}

// GetAreaName returns "" when the area does not exist.
func (m *AreaManagerImpl) GetAreaName(ctx context.Context, areaId int) (string, error) {
	return m.idx.name(ctx, areaId)
}

func (m *AreaManagerImpl) Clear() { m.idx.cache.Clear() }
