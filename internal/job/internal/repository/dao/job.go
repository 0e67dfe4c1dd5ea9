// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	Create(ctx context.Context, job Job) (int64, error)
	// Update 只更新 recruiter 自己的职位，返回受影响的行数
	Update(ctx context.Context, job Job) (int64, error)
	FindById(ctx context.Context, id int64) (Job, error)
	FindByIds(ctx context.Context, ids []int64) ([]Job, error)
	List(ctx context.Context, status string, offset, limit int) ([]Job, error)
	Count(ctx context.Context, status string) (int64, error)
	ListByRecruiter(ctx context.Context, rid int64, offset, limit int) ([]Job, error)
	CountByRecruiter(ctx context.Context, rid int64) (int64, error)
	Delete(ctx context.Context, rid, id int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (dao *GORMJobDAO) Create(ctx context.Context, job Job) (int64, error) {
	now := time.Now().UnixMilli()
	job.Ctime = now
	job.Utime = now
	err := dao.db.WithContext(ctx).Create(&job).Error
	return job.Id, err
}

func (dao *GORMJobDAO) Update(ctx context.Context, job Job) (int64, error) {
	res := dao.db.WithContext(ctx).Model(&Job{}).
		Where("id = ? AND recruiter_id = ?", job.Id, job.RecruiterId).
		Updates(map[string]any{
			"title":           job.Title,
			"description":     job.Description,
			"skills":          job.Skills,
			"min_experience":  job.MinExperience,
			"type":            job.Type,
			"location":        job.Location,
			"is_remote":       job.IsRemote,
			"salary_min":      job.SalaryMin,
			"salary_max":      job.SalaryMax,
			"salary_currency": job.SalaryCurrency,
			"utime":           time.Now().UnixMilli(),
		})
	return res.RowsAffected, res.Error
}

func (dao *GORMJobDAO) FindById(ctx context.Context, id int64) (Job, error) {
	var res Job
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMJobDAO) FindByIds(ctx context.Context, ids []int64) ([]Job, error) {
	var res []Job
	err := dao.db.WithContext(ctx).Where("id IN ?", ids).Find(&res).Error
	return res, err
}

// List status 为空的时候不过滤
func (dao *GORMJobDAO) List(ctx context.Context, status string, offset, limit int) ([]Job, error) {
	var res []Job
	db := dao.db.WithContext(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Offset(offset).Limit(limit).Order("ctime DESC, id DESC").Find(&res).Error
	return res, err
}

func (dao *GORMJobDAO) Count(ctx context.Context, status string) (int64, error) {
	var res int64
	db := dao.db.WithContext(ctx).Model(&Job{})
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Count(&res).Error
	return res, err
}

func (dao *GORMJobDAO) ListByRecruiter(ctx context.Context, rid int64, offset, limit int) ([]Job, error) {
	var res []Job
	err := dao.db.WithContext(ctx).Where("recruiter_id = ?", rid).
		Offset(offset).Limit(limit).Order("ctime DESC, id DESC").Find(&res).Error
	return res, err
}

func (dao *GORMJobDAO) CountByRecruiter(ctx context.Context, rid int64) (int64, error) {
	var res int64
	err := dao.db.WithContext(ctx).Model(&Job{}).Where("recruiter_id = ?", rid).Count(&res).Error
	return res, err
}

func (dao *GORMJobDAO) Delete(ctx context.Context, rid, id int64) (int64, error) {
	res := dao.db.WithContext(ctx).Where("id = ? AND recruiter_id = ?", id, rid).Delete(&Job{})
	return res.RowsAffected, res.Error
}

func (dao *GORMJobDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return dao.db.WithContext(ctx).Model(&Job{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

type Job struct {
	Id             int64                     `gorm:"primaryKey;autoIncrement"`
	RecruiterId    int64                     `gorm:"index;not null"`
	Title          string                    `gorm:"type:varchar(256);not null"`
	Description    string                    `gorm:"type:text"`
	Skills         sqlx.JsonColumn[[]string] `gorm:"type:text"`
	MinExperience  float64
	Type           string `gorm:"type:varchar(32);not null"`
	Location       string `gorm:"type:varchar(256)"`
	IsRemote       bool
	SalaryMin      int64
	SalaryMax      int64
	SalaryCurrency string `gorm:"type:varchar(8)"`
	Status         string `gorm:"type:varchar(16);index;not null"`
	Ctime          int64  `gorm:"index"`
	Utime          int64
}

func (Job) TableName() string {
	return "jobs"
}
