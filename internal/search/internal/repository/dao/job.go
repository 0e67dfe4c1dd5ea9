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
	"encoding/json"
	"strconv"

	"github.com/olivere/elastic/v7"
)

const JobIndexName = "job_index"

const statusBlocked = "blocked"

type Job struct {
	Id             int64    `json:"id"`
	RecruiterId    int64    `json:"recruiter_id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Skills         []string `json:"skills"`
	MinExperience  float64  `json:"min_experience"`
	Type           string   `json:"type"`
	Location       string   `json:"location"`
	IsRemote       bool     `json:"is_remote"`
	SalaryMin      int64    `json:"salary_min"`
	SalaryMax      int64    `json:"salary_max"`
	SalaryCurrency string   `json:"salary_currency"`
	Status         string   `json:"status"`
	Ctime          int64    `json:"ctime"`
	Utime          int64    `json:"utime"`
}

type JobDAO interface {
	Upsert(ctx context.Context, job Job) error
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, keywords string, offset, limit int) ([]Job, int64, error)
}

type jobElasticDAO struct {
	client *elastic.Client
	index  string
	// 字段和权重
	fields []string
}

func NewJobElasticDAO(client *elastic.Client) JobDAO {
	return &jobElasticDAO{
		client: client,
		index:  JobIndexName,
		fields: []string{"title^3", "skills^2", "description", "location"},
	}
}

func (dao *jobElasticDAO) Upsert(ctx context.Context, job Job) error {
	_, err := dao.client.Index().
		Index(dao.index).
		Id(strconv.FormatInt(job.Id, 10)).
		BodyJson(job).
		Do(ctx)
	return err
}

// Delete 文档本来就不存在的时候不算错误
func (dao *jobElasticDAO) Delete(ctx context.Context, id int64) error {
	_, err := dao.client.Delete().
		Index(dao.index).
		Id(strconv.FormatInt(id, 10)).
		Do(ctx)
	if elastic.IsNotFound(err) {
		return nil
	}
	return err
}

// Search 关键字为空的时候返回最新的职位
func (dao *jobElasticDAO) Search(ctx context.Context, keywords string, offset, limit int) ([]Job, int64, error) {
	query := elastic.NewBoolQuery().MustNot(elastic.NewTermQuery("status", statusBlocked))
	builder := dao.client.Search(dao.index).From(offset).Size(limit)
	if keywords == "" {
		builder = builder.Query(query.Must(elastic.NewMatchAllQuery())).Sort("ctime", false)
	} else {
		builder = builder.Query(query.Must(elastic.NewMultiMatchQuery(keywords, dao.fields...)))
	}
	resp, err := builder.Do(ctx)
	if err != nil {
		return nil, 0, err
	}
	res := make([]Job, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Job
		err = json.Unmarshal(hit.Source, &ele)
		if err != nil {
			return nil, 0, err
		}
		res = append(res, ele)
	}
	return res, resp.TotalHits(), nil
}
