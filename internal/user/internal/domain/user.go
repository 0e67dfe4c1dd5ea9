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

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleRecruiter Role = "recruiter"
	RoleAdmin     Role = "admin"
)

// CanRegister admin 只能在后台直接创建
func (r Role) CanRegister() bool {
	return r == RoleApplicant || r == RoleRecruiter
}

func (r Role) String() string {
	return string(r)
}

type User struct {
	Id    int64
	Name  string
	Email string
	// 注册和重置的时候是明文，从存储里面读出来的是 bcrypt 之后的
	Password string
	Role     Role
	Blocked  bool
	Profile  Profile
	Ctime    int64
	Utime    int64
}

type Profile struct {
	Phone      string
	Location   string
	Headline   string
	About      string
	PictureURL string
}

// Merge 空字段保留原来的值，头像不在这里修改
func (p Profile) Merge(np Profile) Profile {
	return Profile{
		Phone:      orDefault(np.Phone, p.Phone),
		Location:   orDefault(np.Location, p.Location),
		Headline:   orDefault(np.Headline, p.Headline),
		About:      orDefault(np.About, p.About),
		PictureURL: p.PictureURL,
	}
}

func orDefault(val, def string) string {
	if val == "" {
		return def
	}
	return val
}
