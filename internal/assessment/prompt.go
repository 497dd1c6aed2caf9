package assessment

import (
	"fmt"
	"strings"
)

// PromptSpec holds everything needed to build one assessment prompt.
// No field is validated here; the builder is pure string assembly.
type PromptSpec struct {
	Topic          string
	Request        string
	EssayText      string
	IncludeAIScore bool
	Language       Language
}

const (
	systemRoleEN = "You are a strict academic evaluator for the IAEA."
	systemRoleVI = "Bạn là chuyên gia đánh giá học thuật của IAEA. Hãy trả lời BẰNG TIẾNG VIỆT."
)

// BuildPrompt assembles the system instruction and the user message for one
// assessment request. The user message embeds the output-structure block
// listing the exact section labels the model must emit; those labels come
// from Sections, the same table the parser matches against.
func BuildPrompt(spec PromptSpec) (system string, user string) {
	lang := spec.Language
	if lang == "" {
		lang = LanguageEN
	}

	system = systemRoleEN
	if lang == LanguageVI {
		system = systemRoleVI
	}

	var structure strings.Builder
	for _, def := range Sections {
		if def.Key == SectionAIPlagiarism && !spec.IncludeAIScore {
			continue
		}
		fmt.Fprintf(&structure, "- %s: %s\n", def.Label(lang), def.Hint(lang))
	}

	if lang == LanguageVI {
		user = fmt.Sprintf(`**Chủ đề:** %s
**Yêu cầu:** %s
**Bài làm:** %s

---
**HƯỚNG DẪN:**
Đánh giá bài luận và trả về kết quả theo ĐÚNG CẤU TRÚC sau (Không thay đổi tên mục):
%s`, spec.Topic, spec.Request, spec.EssayText, structure.String())
		return system, user
	}

	user = fmt.Sprintf(`**Topic:** %s
**Request:** %s
**Essay:** %s

---
**INSTRUCTIONS:**
Evaluate and provide output in the EXACT format below (do not change the section names):
%s`, spec.Topic, spec.Request, spec.EssayText, structure.String())
	return system, user
}
