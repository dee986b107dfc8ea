// Copyright (c) 2025 Interview Lens Contributors
// SPDX-License-Identifier: BSD-3-Clause

package analyze

import "fmt"

// systemPrompt primes the model as an interview analyst that answers in
// JSON only.
const systemPrompt = "You are an expert interview analyst. Provide detailed, actionable feedback for both interviewees and recruiters based on interview transcripts. Always respond with valid JSON only."

const promptTemplate = `
Please analyze the following interview transcript and provide comprehensive feedback for both interviewees and recruiters. Structure your response as a JSON object with the following fields:

1. "summary": A concise summary of the interview content (2-3 sentences)
2. "interview_type": Detected type of interview (technical, behavioral, panel, phone, etc.)
3. "overall_sentiment": Overall sentiment of the interview (positive, negative, neutral, mixed)
4. "interview_flow_score": How well the interview flowed (scale 1-10)

5. "interviewee_feedback": {
   "what_went_well": Array of things the interviewee did well
   "areas_for_improvement": Array of specific areas where the interviewee could improve
   "actionable_tips": Array of concrete, actionable advice for future interviews
   "confidence_level": Perceived confidence level (low, moderate, high)
}

6. "recruiter_feedback": {
   "areas_missed": Array of important areas or topics the recruiter may have missed exploring
   "questions_not_asked": Array of valuable questions the recruiter could have asked but didn't
   "missed_red_flags": Potential concerns or red flags that weren't adequately explored
}

7. "key_topics_discussed": Array of main topics covered in the interview
8. "improvement_recommendations": {
   "for_next_interview": Suggestions for immediate next steps
   "long_term_development": Areas for longer-term skill development
}

Analyze this as an interview scenario even if it's not explicitly stated. Look for patterns typical of job interviews such as questions about experience, skills, challenges, goals, etc.

Transcript to analyze:
"%s"

Please respond with valid JSON only, no additional text or formatting.
`

// BuildPrompt embeds the transcript into the fixed analysis prompt.
func BuildPrompt(transcript string) string {
	return fmt.Sprintf(promptTemplate, transcript)
}
