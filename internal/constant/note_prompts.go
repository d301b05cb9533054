package constant

const (
	// GeminiModel is the fixed generative model used for every AI call.
	GeminiModel = "gemini-1.5-flash"

	// SummarizeNotePromptV1 expects the note title and content, in that order.
	SummarizeNotePromptV1 = `You are a helpful assistant that summarizes personal notes.

Summarize the following note in a few short sentences. Keep the summary in the
same language the note is written in. Do not add information that is not in
the note.

Title: %s

Content:
%s`

	// ProfileNotesPromptV1 expects one block with every note's title and content.
	ProfileNotesPromptV1 = `You are an analyst of personal note collections.

Based on ALL the notes below, write a short profile of the author: their main
topics of interest, recurring themes and overall writing style. Answer in the
same language the notes are written in.

Notes:
%s`
)
