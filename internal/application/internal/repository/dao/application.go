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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrDuplicated     = errors.New("重复投递")
)

type ApplicationDAO interface {
	Insert(ctx context.Context, app Application) (int64, error)
	FindById(ctx context.Context, id int64) (Application, error)
	FindByJobAndApplicant(ctx context.Context, jobId, applicantId int64) (Application, error)
	// FindByApplicant 最新的在前面
	FindByApplicant(ctx context.Context, applicantId int64) ([]Application, error)
	// FindByJob 分数高的在前面，分数相同的先投递的在前面
	FindByJob(ctx context.Context, jobId int64) ([]Application, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (dao *GORMApplicationDAO) Insert(ctx context.Context, app Application) (int64, error) {
	now := time.Now().UnixMilli()
	app.Ctime = now
	app.Utime = now
	err := dao.db.WithContext(ctx).Create(&app).Error
	if dao.isDuplicated(err) {
		return 0, ErrDuplicated
	}
	return app.Id, err
}

func (dao *GORMApplicationDAO) isDuplicated(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		const uniqueIndexErrNo uint16 = 1062
		return me.Number == uniqueIndexErrNo
	}
	return false
}

func (dao *GORMApplicationDAO) FindById(ctx context.Context, id int64) (Application, error) {
	var res Application
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

func (dao *GORMApplicationDAO) FindByJobAndApplicant(ctx context.Context, jobId, applicantId int64) (Application, error) {
	var res Application
	err := dao.db.WithContext(ctx).
		Where("job_id = ? AND applicant_id = ?", jobId, applicantId).
		First(&res).Error
	return res, err
}

func (dao *GORMApplicationDAO) FindByApplicant(ctx context.Context, applicantId int64) ([]Application, error) {
	var res []Application
	err := dao.db.WithContext(ctx).
		Where("applicant_id = ?", applicantId).
		Order("ctime DESC, id DESC").
		Find(&res).Error
	return res, err
}

func (dao *GORMApplicationDAO) FindByJob(ctx context.Context, jobId int64) ([]Application, error) {
	var res []Application
	err := dao.db.WithContext(ctx).
		Where("job_id = ?", jobId).
		Order("match_score DESC, ctime ASC, id ASC").
		Find(&res).Error
	return res, err
}

func (dao *GORMApplicationDAO) UpdateStatus(ctx context.Context, id int64, status string) error {
	return dao.db.WithContext(ctx).Model(&Application{}).Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

type Application struct {
	Id          int64                     `gorm:"primaryKey;autoIncrement"`
	SN          string                    `gorm:"type:varchar(64);uniqueIndex;not null"`
	JobId       int64                     `gorm:"uniqueIndex:uniq_job_applicant;not null"`
	ApplicantId int64                     `gorm:"uniqueIndex:uniq_job_applicant;index;not null"`
	ResumeId    int64                     `gorm:"not null"`
	Status      string                    `gorm:"type:varchar(16);not null"`
	MatchScore  int                       `gorm:"index"`
	Analysis    sqlx.JsonColumn[Analysis] `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}

func (Application) TableName() string {
	return "applications"
}

type Analysis struct {
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	ExperienceGap *float64 `json:"experienceGap"`
	Summary       string   `json:"summary"`
	AIFeedback    string   `json:"aiFeedback"`
}
