// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package analyze

// Result is the structured feedback report for one transcript.
type Result struct {
	Summary                    string                     `json:"summary"`
	InterviewType              string                     `json:"interview_type"`
	OverallSentiment           string                     `json:"overall_sentiment"`
	InterviewFlowScore         int                        `json:"interview_flow_score"`
	IntervieweeFeedback        IntervieweeFeedback        `json:"interviewee_feedback"`
	RecruiterFeedback          RecruiterFeedback          `json:"recruiter_feedback"`
	KeyTopicsDiscussed         []string                   `json:"key_topics_discussed"`
	ImprovementRecommendations ImprovementRecommendations `json:"improvement_recommendations"`

	// RawFeedback carries the provider's verbatim reply when it could not be
	// parsed into the structured shape. Empty on a clean parse.
	RawFeedback string `json:"raw_feedback,omitempty"`
}

type IntervieweeFeedback struct {
	WhatWentWell        []string `json:"what_went_well"`
	AreasForImprovement []string `json:"areas_for_improvement"`
	ActionableTips      []string `json:"actionable_tips"`
	ConfidenceLevel     string   `json:"confidence_level"`
}

type RecruiterFeedback struct {
	AreasMissed       []string `json:"areas_missed"`
	QuestionsNotAsked []string `json:"questions_not_asked"`
	MissedRedFlags    []string `json:"missed_red_flags"`
}

type ImprovementRecommendations struct {
	ForNextInterview    []string `json:"for_next_interview"`
	LongTermDevelopment []string `json:"long_term_development"`
}

// normalize replaces nil array fields with empty slices so a parsed result
// always serializes every array as present.
func (r *Result) normalize() {
	if r.IntervieweeFeedback.WhatWentWell == nil {
		r.IntervieweeFeedback.WhatWentWell = []string{}
	}
	if r.IntervieweeFeedback.AreasForImprovement == nil {
		r.IntervieweeFeedback.AreasForImprovement = []string{}
	}
	if r.IntervieweeFeedback.ActionableTips == nil {
		r.IntervieweeFeedback.ActionableTips = []string{}
	}
	if r.RecruiterFeedback.AreasMissed == nil {
		r.RecruiterFeedback.AreasMissed = []string{}
	}
	if r.RecruiterFeedback.QuestionsNotAsked == nil {
		r.RecruiterFeedback.QuestionsNotAsked = []string{}
	}
	if r.RecruiterFeedback.MissedRedFlags == nil {
		r.RecruiterFeedback.MissedRedFlags = []string{}
	}
	if r.KeyTopicsDiscussed == nil {
		r.KeyTopicsDiscussed = []string{}
	}
	if r.ImprovementRecommendations.ForNextInterview == nil {
		r.ImprovementRecommendations.ForNextInterview = []string{}
	}
	if r.ImprovementRecommendations.LongTermDevelopment == nil {
		r.ImprovementRecommendations.LongTermDevelopment = []string{}
	}
}

// degradedResult is the fixed substitute used when the provider's reply is
// not parseable JSON. The provider's answer is never lost: it travels in
// RawFeedback and the placeholder strings point the reader at it.
func degradedResult(raw string) *Result {
	return &Result{
		Summary:            "Analysis completed but response format was not structured.",
		InterviewType:      "unknown",
		OverallSentiment:   "neutral",
		InterviewFlowScore: 7,
		IntervieweeFeedback: IntervieweeFeedback{
			WhatWentWell:        []string{"Raw analysis provided in feedback section"},
			AreasForImprovement: []string{"Review the transcript analysis in the feedback section"},
			ActionableTips:      []string{"Check the raw feedback for detailed analysis"},
			ConfidenceLevel:     "moderate",
		},
		RecruiterFeedback: RecruiterFeedback{
			AreasMissed:       []string{"Raw analysis provided in feedback section"},
			QuestionsNotAsked: []string{"Check the raw feedback for suggestions"},
			MissedRedFlags:    []string{"Check raw feedback for potential concerns"},
		},
		KeyTopicsDiscussed: []string{"General interview analysis"},
		ImprovementRecommendations: ImprovementRecommendations{
			ForNextInterview:    []string{"Review the raw feedback"},
			LongTermDevelopment: []string{"Check raw feedback for development suggestions"},
		},
		RawFeedback: raw,
	}
}
