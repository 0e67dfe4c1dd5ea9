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

import (
	"errors"

	"github.com/ecodeclub/careerlens/internal/application/internal/errs"
	"github.com/ecodeclub/careerlens/internal/application/internal/service"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
)

var bizErrs = []struct {
	err  error
	code errs.ErrorCode
}{
	{err: service.ErrResumeRequired, code: errs.ResumeRequired},
	{err: service.ErrJobNotFound, code: errs.JobNotFound},
	{err: service.ErrOwnJob, code: errs.OwnJob},
	{err: service.ErrResumeNotFound, code: errs.ResumeNotFound},
	{err: service.ErrPermissionDenied, code: errs.PermissionDenied},
	{err: service.ErrAlreadyApplied, code: errs.AlreadyApplied},
	{err: service.ErrApplicationNotFound, code: errs.ApplicationNotFound},
	{err: service.ErrInvalidStatus, code: errs.InvalidStatus},
}

// errorResult 业务错误返回 nil，其余的交给 ginx 记录
func errorResult(err error) (ginx.Result, error) {
	for _, be := range bizErrs {
		if errors.Is(err, be.err) {
			return ginx.Result{Code: be.code.Code, Msg: be.code.Msg}, nil
		}
	}
	return systemErrorResult, err
}
