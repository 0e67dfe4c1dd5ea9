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

package web

import "github.com/ecodeclub/careerlens/internal/user/internal/domain"

type RegisterReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Headline string `json:"headline"`
	About    string `json:"about"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type EditReq struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Headline string `json:"headline"`
	About    string `json:"about"`
}

type PictureReq struct {
	URL string `json:"url"`
}

type ForgotPasswordReq struct {
	Email string `json:"email"`
}

type ResetPasswordReq struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

type Profile struct {
	Id         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Phone      string `json:"phone"`
	Location   string `json:"location"`
	Headline   string `json:"headline"`
	About      string `json:"about"`
	PictureURL string `json:"pictureUrl"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:         u.Id,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role.String(),
		Phone:      u.Profile.Phone,
		Location:   u.Profile.Location,
		Headline:   u.Profile.Headline,
		About:      u.Profile.About,
		PictureURL: u.Profile.PictureURL,
	}
}
