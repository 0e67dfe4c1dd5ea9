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
	SystemError         = ErrorCode{Code: 520001, Msg: "系统错误"}
	ResumeExists        = ErrorCode{Code: 420002, Msg: "已经上传过简历，请先删除"}
	UnsupportedFileType = ErrorCode{Code: 420003, Msg: "只支持 pdf 和 docx 格式的简历"}
	// ParsingFailed 简历已经保存，但是没有提取到文本
	ParsingFailed    = ErrorCode{Code: 420004, Msg: "简历已保存，但是解析失败"}
	ResumeNotFound   = ErrorCode{Code: 420005, Msg: "还没有上传简历"}
	PermissionDenied = ErrorCode{Code: 420006, Msg: "无权操作该简历"}
	EmptyResumeText  = ErrorCode{Code: 420007, Msg: "简历没有可以分析的文本"}
	AnalysisFailed   = ErrorCode{Code: 520008, Msg: "简历分析失败，请稍后再试"}
	InvalidFile      = ErrorCode{Code: 420009, Msg: "请上传不超过 5MB 的简历文件"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
