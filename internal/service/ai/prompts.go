package ai

import (
	"fmt"
	"strings"

	"safelink/backend/internal/glossary"
)

var promptLanguageNames = map[string]string{
	"vi": "Vietnamese",
	"uz": "Uzbek",
	"km": "Khmer",
	"mn": "Mongolian",
	"en": "English",
	"zh": "Simplified Chinese",
	"th": "Thai",
	"ru": "Russian",
	"ko": "Korean",
}

// LanguageName returns the English language name used in prompts. Unknown
// codes are returned unchanged.
func LanguageName(code string) string {
	if name, ok := promptLanguageNames[glossary.LanguageKey(code)]; ok {
		return name
	}
	return code
}

const instructionPromptTemplate = `You are a professional construction site interpreter. Translate the Korean construction site instruction given by the user into %[1]s.

<target_language>%[1]s</target_language>

Rules:
1. Use natural, native-level %[1]s that construction workers would understand
2. Keep technical terms accurate but easy to understand
3. Be direct and clear - this is a safety instruction
4. Do NOT include any Korean characters in your response
5. Do NOT include explanations - just the translation
%[2]s`

// GetInstructionPrompt is the system prompt for manager -> worker
// translation. terms are glossary entries detected in the instruction; their
// renderings are passed as preferred vocabulary.
func GetInstructionPrompt(langCode string, terms []glossary.Entry) string {
	name := LanguageName(langCode)
	key := glossary.LanguageKey(langCode)

	var vocab strings.Builder
	for _, t := range terms {
		tr := t.Translation(key)
		if tr == "" {
			continue
		}
		if vocab.Len() == 0 {
			vocab.WriteString("\n<terminology>\n")
		}
		fmt.Fprintf(&vocab, "%s = %s\n", t.PlainStandard(), tr)
	}
	if vocab.Len() > 0 {
		vocab.WriteString("</terminology>\n")
	}
	return fmt.Sprintf(instructionPromptTemplate, name, vocab.String())
}

const workerPromptTemplate = `You are an interpreter on a Korean construction site. A foreign worker wrote the user message in %[1]s. Translate it into polite, plain Korean for the site manager.

<source_language>%[1]s</source_language>
<target_language>Korean</target_language>

Keep numbers, names and locations exactly as written. Do NOT include explanations - just the Korean translation.`

// GetWorkerPrompt is the system prompt for worker -> manager translation.
func GetWorkerPrompt(langCode string) string {
	return fmt.Sprintf(workerPromptTemplate, LanguageName(langCode))
}

const verifyPromptTemplate = `Translate the user message from %[1]s back into Korean as literally as possible so a Korean site manager can check its meaning.

<source_language>%[1]s</source_language>
<target_language>Korean</target_language>

Do NOT improve or correct the text. Do NOT include explanations.`

// GetVerifyPrompt is the system prompt for back-translating a worker-facing
// translation so the manager can check it.
func GetVerifyPrompt(langCode string) string {
	return fmt.Sprintf(verifyPromptTemplate, LanguageName(langCode))
}
