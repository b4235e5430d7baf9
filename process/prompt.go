package process

import (
	"fmt"

	"ewintr.nl/ytsum/model"
)

const summaryTemperature = 0.5

type Prompt struct {
	Instruction string
	MaxTokens   int
}

var summaryPrompts = map[model.SummaryMode]Prompt{
	model.ModeBrief: {
		Instruction: `You are an expert at summarizing YouTube videos concisely and clearly. Condense the transcript of the video to its essentials.
Use this format:
1. Main topic of the video (1-2 lines)
2. Key points (3-5 bullet points, each line starting with "- ")
3. Main conclusion or insight (1-2 lines)`,
		MaxTokens: 500,
	},
	model.ModeDetailed: {
		Instruction: `You are an expert at summarizing YouTube videos in depth. Analyse the transcript of the video and give a comprehensive summary.
Use this format:
1. Overview of the video (2-3 lines)
2. Detailed summary per section (2-3 paragraphs per section)
3. Key insights and background (3-5 bullet points, each line starting with "- ")
4. Explanation of technical terms (when needed)
5. Conclusion and what it means for the viewer (3-4 lines)`,
		MaxTokens: 1000,
	},
	model.ModeBullet: {
		Instruction: `You extract the content of YouTube videos as bullet points. Go through the transcript in the order it is spoken and list every important statement, fact and step.
Start every line with "- ". Keep each bullet to a single sentence and keep the original order. Do not add an introduction or a closing remark.`,
		MaxTokens: 800,
	},
	model.ModeELI5: {
		Instruction: `You explain YouTube videos so that a ten year old can understand them. Read the transcript and explain what the video is about using simple words, short sentences and everyday comparisons.
Avoid jargon; when a difficult word cannot be avoided, explain it right away. End with one sentence about why the topic matters.`,
		MaxTokens: 600,
	},
	model.ModeAcademic: {
		Instruction: `You are an academic reviewer. Analyse the transcript of the YouTube video in a scholarly register.
Use this format:
1. Research question or thesis of the video
2. Methodology and line of argument
3. Key claims and the evidence offered for them
4. Critical assessment: strengths, limitations and open questions
5. Relation to the wider field and suggested further reading topics`,
		MaxTokens: 1200,
	},
}

// PromptFor returns the summary prompt for mode. Unknown modes get the brief
// prompt.
func PromptFor(mode model.SummaryMode) Prompt {
	p, ok := summaryPrompts[mode]
	if !ok {
		return summaryPrompts[model.ModeBrief]
	}
	return p
}

const timelineInstruction = `You create chapter timelines for YouTube videos. Based on the transcript, divide the video into exactly %d chronological key moments.
Respond with a JSON object of this exact shape and nothing else:
{"timeline": [{"time": "mm:ss", "title": "short title", "description": "one sentence description"}]}
Timestamps use minutes and seconds, for example "00:00" or "12:45", and must increase from item to item.`

func timelinePrompt(mode model.SummaryMode) Prompt {
	p := Prompt{
		Instruction: fmt.Sprintf(timelineInstruction, mode.TimelineSize()),
		MaxTokens:   2000,
	}
	if mode.TimelineSize() <= 5 {
		p.MaxTokens = 800
	}
	return p
}

func withLanguage(instruction, language string) string {
	if language == "" {
		return instruction
	}
	return fmt.Sprintf("%s\nWrite all text in %s.", instruction, language)
}

func userMessage(title, transcript string) string {
	return fmt.Sprintf("Video title: %s\n\nTranscript: %s", title, transcript)
}
