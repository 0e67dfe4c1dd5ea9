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

package service

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePDF  = "application/pdf"
	MimeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

var (
	ErrUnsupportedFileType = errors.New("不支持的文件类型")
	ErrParsingFailed       = errors.New("解析简历失败")
)

var (
	htmlTagRegexp      = regexp.MustCompile(`<[^>]*>`)
	paragraphEndRegexp = regexp.MustCompile(`</w:p>`)
	whitespaceRegexp   = regexp.MustCompile(`\s+`)
	bulletReplacer     = strings.NewReplacer(
		"•", "- ", "●", "- ", "▪", "- ", "■", "- ", "–", "- ", "—", "- ",
	)
)

// DetectContentType 浏览器给的 content type 不可靠，以扩展名为准
func DetectContentType(filename, contentType string) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return MimePDF, nil
	case ".docx":
		return MimeDocx, nil
	}
	switch contentType {
	case MimePDF, MimeDocx:
		return contentType, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, filename)
}

// Extension 对象存储 key 使用的后缀
func Extension(contentType string) string {
	if contentType == MimePDF {
		return ".pdf"
	}
	return ".docx"
}

// ExtractText 提取文本并清洗
func ExtractText(contentType string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch contentType {
	case MimePDF:
		text, err = extractPDFText(data)
	case MimeDocx:
		text, err = extractDocxText(data)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFileType, contentType)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrParsingFailed, err)
	}
	return CleanText(text), nil
}

func extractPDFText(data []byte) (text string, err error) {
	// 损坏的 pdf 可能直接 panic
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("读取 pdf 失败: %v", r)
		}
	}()
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取 pdf 失败: %w", err)
	}
	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("读取 pdf 第 %d 页失败: %w", i, err)
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("读取 docx 失败: %w", err)
	}
	defer doc.Close()
	// GetContent 返回的是 document.xml，段落换行，其余标签直接去掉
	content := paragraphEndRegexp.ReplaceAllString(doc.Editable().GetContent(), "\n")
	content = htmlTagRegexp.ReplaceAllString(content, "")
	return html.UnescapeString(content), nil
}

// CleanText 去掉标签，统一项目符号，只保留 ASCII，再合并空白
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = htmlTagRegexp.ReplaceAllString(text, "\n")
	text = bulletReplacer.Replace(text)
	text = strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, text)
	text = whitespaceRegexp.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
