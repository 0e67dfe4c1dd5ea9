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
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrAlreadyAnalyzed 并发分析的时候只有一个能写入
	ErrAlreadyAnalyzed = errors.New("简历已经分析过")
)

type ResumeDAO interface {
	Create(ctx context.Context, r Resume) (int64, error)
	FindByUid(ctx context.Context, uid int64) (Resume, error)
	FindById(ctx context.Context, id int64) (Resume, error)
	UpdateParsed(ctx context.Context, id int64, text string, status string, parsedAt int64) error
	UpdateParseStatus(ctx context.Context, id int64, status string) error
	SaveInsights(ctx context.Context, id int64, insights Resume) error
	Delete(ctx context.Context, id int64) error
}

type GORMResumeDAO struct {
	db *egorm.Component
}

func NewGORMResumeDAO(db *egorm.Component) ResumeDAO {
	return &GORMResumeDAO{db: db}
}

func (dao *GORMResumeDAO) Create(ctx context.Context, r Resume) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *GORMResumeDAO) FindByUid(ctx context.Context, uid int64) (Resume, error) {
	var res Resume
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).First(&res).Error
	return res, err
}

func (dao *GORMResumeDAO) FindById(ctx context.Context, id int64) (Resume, error) {
	var res Resume
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	return res, err
}

// UpdateParsed 文本、状态和解析时间一起更新
func (dao *GORMResumeDAO) UpdateParsed(ctx context.Context, id int64, text string, status string, parsedAt int64) error {
	return dao.db.WithContext(ctx).Model(&Resume{}).Where("id = ?", id).
		Updates(map[string]any{
			"text_content": text,
			"parse_status": status,
			"parsed_at":    parsedAt,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMResumeDAO) UpdateParseStatus(ctx context.Context, id int64, status string) error {
	return dao.db.WithContext(ctx).Model(&Resume{}).Where("id = ?", id).
		Updates(map[string]any{
			"parse_status": status,
			"utime":        time.Now().UnixMilli(),
		}).Error
}

// SaveInsights 只有还没有提取到技能的简历才会被更新，
// 上一次没有提取到技能的结果会被覆盖
func (dao *GORMResumeDAO) SaveInsights(ctx context.Context, id int64, insights Resume) error {
	now := time.Now().UnixMilli()
	res := dao.db.WithContext(ctx).Model(&Resume{}).
		Where("id = ? AND skill_count = 0", id).
		Updates(map[string]any{
			"skills":           insights.Skills,
			"skill_count":      len(insights.Skills.Val),
			"experience_years": insights.ExperienceYears,
			"summary":          insights.Summary,
			"work_experience":  insights.WorkExperience,
			"analyzed_at":      now,
			"utime":            now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrAlreadyAnalyzed
	}
	return nil
}

func (dao *GORMResumeDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Where("id = ?", id).Delete(&Resume{}).Error
}

type Resume struct {
	Id int64 `gorm:"primaryKey;autoIncrement"`
	// 一个用户只能有一份简历
	Uid         int64  `gorm:"uniqueIndex;not null"`
	ObjectKey   string `gorm:"type:varchar(512);not null"`
	FileName    string `gorm:"type:varchar(256)"`
	ContentType string `gorm:"type:varchar(128)"`
	TextContent string `gorm:"type:text"`
	ParseStatus string `gorm:"type:varchar(16);not null;default:pending"`
	ParsedAt    int64
	Skills      sqlx.JsonColumn[[]string] `gorm:"type:text"`
	// 和 Skills 一起更新，0 表示还需要分析
	SkillCount      int `gorm:"not null;default:0"`
	ExperienceYears float64
	Summary         string                            `gorm:"type:text"`
	WorkExperience  sqlx.JsonColumn[[]WorkExperience] `gorm:"type:text"`
	AnalyzedAt      int64                             `gorm:"not null;default:0"`
	Ctime           int64
	Utime           int64
}

func (Resume) TableName() string {
	return "resumes"
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}
