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

package errs

var (
	SystemError         = ErrorCode{Code: 522001, Msg: "系统错误"}
	ResumeRequired      = ErrorCode{Code: 422002, Msg: "请选择简历"}
	JobNotFound         = ErrorCode{Code: 422003, Msg: "职位不存在"}
	OwnJob              = ErrorCode{Code: 422004, Msg: "不能投递自己发布的职位"}
	ResumeNotFound      = ErrorCode{Code: 422005, Msg: "简历不存在"}
	PermissionDenied    = ErrorCode{Code: 422006, Msg: "无权操作"}
	AlreadyApplied      = ErrorCode{Code: 422007, Msg: "已经投递过该职位"}
	ApplicationNotFound = ErrorCode{Code: 422008, Msg: "投递记录不存在"}
	InvalidStatus       = ErrorCode{Code: 422009, Msg: "状态不合法"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
