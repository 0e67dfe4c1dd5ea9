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

package domain

type ParseStatus string

const (
	ParseStatusPending ParseStatus = "pending"
	ParseStatusSuccess ParseStatus = "success"
	ParseStatusFailed  ParseStatus = "failed"
)

func (s ParseStatus) String() string {
	return string(s)
}

type Resume struct {
	Id  int64
	Uid int64
	// 对象存储里面的 key
	ObjectKey   string
	FileURL     string
	FileName    string
	ContentType string
	TextContent string
	ParseStatus ParseStatus
	ParsedAt    int64

	Insights
	// 0 表示还没有分析过
	AnalyzedAt int64
	Ctime      int64
	Utime      int64
}

// Analyzed 已经提取过技能的简历不会再次调用大模型
func (r Resume) Analyzed() bool {
	return len(r.Skills) > 0
}

type Insights struct {
	Skills          []string
	ExperienceYears float64
	Summary         string
	WorkExperience  []WorkExperience
}

type WorkExperience struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// UploadFile 上传的原始文件
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}
