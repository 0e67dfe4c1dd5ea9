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

// Job 搜索用的职位，只保留需要展示和检索的字段
type Job struct {
	Id             int64
	RecruiterId    int64
	Title          string
	Description    string
	Skills         []string
	MinExperience  float64
	Type           string
	Location       string
	IsRemote       bool
	SalaryMin      int64
	SalaryMax      int64
	SalaryCurrency string
	Status         string
	Ctime          int64
	Utime          int64
}

type SearchResult struct {
	Total int64
	Jobs  []Job
}
