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

package integration

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
)

// fakeES 只实现了测试用到的几个接口，搜索只做简单的包含匹配
type fakeES struct {
	mu          sync.Mutex
	server      *httptest.Server
	indexExists bool
	docs        map[int64]map[string]any
	// 强制 _search 返回错误
	searchFail bool
}

func newFakeES() *fakeES {
	f := &fakeES{docs: map[int64]map[string]any{}}
	f.server = httptest.NewServer(http.HandlerFunc(f.serve))
	return f
}

func (f *fakeES) Close() {
	f.server.Close()
}

func (f *fakeES) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = map[int64]map[string]any{}
	f.searchFail = false
}

func (f *fakeES) put(id int64, doc map[string]any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs[id] = doc
}

func (f *fakeES) doc(id int64) (map[string]any, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.docs[id]
	return d, ok
}

func (f *fakeES) serve(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	segs := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	switch {
	case len(segs) == 1 && r.Method == http.MethodHead:
		if f.indexExists {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	case len(segs) == 1 && r.Method == http.MethodPut:
		f.indexExists = true
		_, _ = fmt.Fprintf(w, `{"acknowledged":true,"index":%q}`, segs[0])
	case len(segs) == 3 && segs[1] == "_doc":
		f.serveDoc(w, r, segs[0], segs[2])
	case len(segs) == 2 && segs[1] == "_search":
		f.serveSearch(w, r)
	default:
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error":"unsupported"}`)
	}
}

func (f *fakeES) serveDoc(w http.ResponseWriter, r *http.Request, index, rawId string) {
	id, err := strconv.ParseInt(rawId, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	switch r.Method {
	case http.MethodPut, http.MethodPost:
		var doc map[string]any
		if err = json.NewDecoder(r.Body).Decode(&doc); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		result := "created"
		if _, ok := f.docs[id]; ok {
			result = "updated"
		}
		f.docs[id] = doc
		_, _ = fmt.Fprintf(w, `{"_index":%q,"_id":%q,"_version":1,"result":%q}`, index, rawId, result)
	case http.MethodDelete:
		if _, ok := f.docs[id]; !ok {
			w.WriteHeader(http.StatusNotFound)
			_, _ = fmt.Fprintf(w, `{"_index":%q,"_id":%q,"result":"not_found"}`, index, rawId)
			return
		}
		delete(f.docs, id)
		_, _ = fmt.Fprintf(w, `{"_index":%q,"_id":%q,"result":"deleted"}`, index, rawId)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func (f *fakeES) serveSearch(w http.ResponseWriter, r *http.Request) {
	if f.searchFail {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"type":"internal","reason":"boom"},"status":500}`)
		return
	}
	var body struct {
		From  int            `json:"from"`
		Size  int            `json:"size"`
		Query map[string]any `json:"query"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	keywords := strings.ToLower(findMultiMatch(body.Query))
	hits := make([]map[string]any, 0, len(f.docs))
	for _, doc := range f.docs {
		if doc["status"] == "blocked" {
			continue
		}
		if keywords != "" && !docContains(doc, keywords) {
			continue
		}
		hits = append(hits, doc)
	}
	sort.Slice(hits, func(i, j int) bool {
		return hits[i]["ctime"].(float64) > hits[j]["ctime"].(float64)
	})
	total := len(hits)
	start := min(body.From, total)
	end := total
	if body.Size > 0 {
		end = min(start+body.Size, total)
	}
	type hit struct {
		Index  string         `json:"_index"`
		Id     string         `json:"_id"`
		Source map[string]any `json:"_source"`
	}
	res := make([]hit, 0, end-start)
	for _, doc := range hits[start:end] {
		res = append(res, hit{
			Index:  "job_index",
			Id:     strconv.FormatInt(int64(doc["id"].(float64)), 10),
			Source: doc,
		})
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"took":      1,
		"timed_out": false,
		"hits": map[string]any{
			"total": map[string]any{"value": total, "relation": "eq"},
			"hits":  res,
		},
	})
}

// findMultiMatch 在 bool 查询里面找 multi_match 的关键字
func findMultiMatch(v any) string {
	switch val := v.(type) {
	case map[string]any:
		if mm, ok := val["multi_match"].(map[string]any); ok {
			q, _ := mm["query"].(string)
			return q
		}
		for _, sub := range val {
			if q := findMultiMatch(sub); q != "" {
				return q
			}
		}
	case []any:
		for _, sub := range val {
			if q := findMultiMatch(sub); q != "" {
				return q
			}
		}
	}
	return ""
}

func docContains(doc map[string]any, keywords string) bool {
	texts := []string{}
	for _, field := range []string{"title", "description", "location"} {
		s, _ := doc[field].(string)
		texts = append(texts, s)
	}
	if skills, ok := doc["skills"].([]any); ok {
		for _, sk := range skills {
			s, _ := sk.(string)
			texts = append(texts, s)
		}
	}
	all := strings.ToLower(strings.Join(texts, " "))
	for _, word := range strings.Fields(keywords) {
		if strings.Contains(all, word) {
			return true
		}
	}
	return false
}
