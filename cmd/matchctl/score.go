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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ecodeclub/careerlens/internal/match"
	"github.com/spf13/cobra"
)

func newScoreCmd(opts *options) *cobra.Command {
	var jobFile, resumeFile string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a candidate profile against job requirements",
		Example: `  matchctl score --job job.json --resume profile.json
  matchctl score --job job.json --resume profile.json -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var job match.JobRequirements
			if err := readJSON(jobFile, &job); err != nil {
				return err
			}
			var candidate match.CandidateProfile
			if err := readJSON(resumeFile, &candidate); err != nil {
				return err
			}
			res := match.ComputeMatch(job, candidate)
			// 离线的时候不调用大模型
			res.AIFeedback = match.TemplateFeedback(res.MatchedSkills, res.MissingSkills, res.ExperienceGap)
			view := newMatchView(res)
			if ok, err := opts.write(cmd.OutOrStdout(), view); ok {
				return err
			}
			renderMatch(cmd.OutOrStdout(), view)
			return nil
		},
	}
	cmd.Flags().StringVar(&jobFile, "job", "", "job requirements JSON file")
	cmd.Flags().StringVar(&resumeFile, "resume", "", "candidate profile JSON file")
	_ = cmd.MarkFlagRequired("job")
	_ = cmd.MarkFlagRequired("resume")
	return cmd
}

type matchView struct {
	MatchScore    int      `json:"matchScore" yaml:"matchScore"`
	MatchedSkills []string `json:"matchedSkills" yaml:"matchedSkills"`
	MissingSkills []string `json:"missingSkills" yaml:"missingSkills"`
	ExperienceGap *float64 `json:"experienceGap" yaml:"experienceGap"`
	Summary       string   `json:"summary" yaml:"summary"`
	AIFeedback    string   `json:"aiFeedback" yaml:"aiFeedback"`
}

func newMatchView(res match.MatchResult) matchView {
	return matchView(res)
}

func renderMatch(w io.Writer, res matchView) {
	fmt.Fprintln(w, titleStyle.Render("Match Result"))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Score:"), scoreStyle(res.MatchScore).Render(fmt.Sprintf("%d%%", res.MatchScore)))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Matched:"), goodStyle.Render(joinOrNone(res.MatchedSkills)))
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Missing:"), badStyle.Render(joinOrNone(res.MissingSkills)))
	if res.ExperienceGap != nil {
		fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Experience gap:"), badStyle.Render(fmt.Sprintf("%.1f years", *res.ExperienceGap)))
	}
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Summary:"), res.Summary)
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render("Feedback:"), dimStyle.Render(res.AIFeedback))
}

func readJSON(path string, val any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("读取文件失败 %s: %w", path, err)
	}
	if err = json.Unmarshal(data, val); err != nil {
		return fmt.Errorf("解析 JSON 失败 %s: %w", path, err)
	}
	return nil
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}
