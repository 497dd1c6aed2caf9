// Package assessment builds the essay assessment prompt and parses the
// rubric sections back out of the model's free-text completion.
package assessment

// Language selects which label set the prompt emits and the report renders.
type Language string

const (
	LanguageEN Language = "en"
	LanguageVI Language = "vi"
)

// Canonical section keys. Keys are stable identifiers; the per-language
// labels live in Sections.
const (
	SectionTaskResponse        = "Task Response"
	SectionInformationAccuracy = "Information Accuracy"
	SectionIdeaDevelopment     = "Idea Development"
	SectionCoherence           = "Coherence"
	SectionSummary             = "Summary"
	SectionFinalEvaluation     = "Final Evaluation"
	SectionAIPlagiarism        = "AI Plagiarism"
)

// SectionDefinition declares one rubric dimension: its canonical key, the
// label emitted and recognized per language, and the instruction hint the
// prompt appends after the label.
type SectionDefinition struct {
	Key    string
	Labels map[Language]string
	Hints  map[Language]string
}

// Label returns the section label for lang, falling back to English.
func (d SectionDefinition) Label(lang Language) string {
	if label, ok := d.Labels[lang]; ok {
		return label
	}
	return d.Labels[LanguageEN]
}

// Hint returns the instruction hint for lang, falling back to English.
func (d SectionDefinition) Hint(lang Language) string {
	if hint, ok := d.Hints[lang]; ok {
		return hint
	}
	return d.Hints[LanguageEN]
}

// Sections is the single source of truth shared by the prompt builder and
// the response parser. The builder emits these labels verbatim and the
// parser recognizes them, so the two sides cannot drift apart silently.
// Order matters: the prompt lists sections in this order and reports render
// in this order.
var Sections = []SectionDefinition{
	{
		Key: SectionTaskResponse,
		Labels: map[Language]string{
			LanguageEN: "Task Response",
			LanguageVI: "Phản hồi yêu cầu",
		},
		Hints: map[Language]string{
			LanguageEN: "(1~2 sentences)",
			LanguageVI: "(1~2 câu đánh giá)",
		},
	},
	{
		Key: SectionInformationAccuracy,
		Labels: map[Language]string{
			LanguageEN: "Information Accuracy",
			LanguageVI: "Độ chính xác thông tin",
		},
		Hints: map[Language]string{
			LanguageEN: "(2~3 sentences. Bold **accurate**, **inaccurate**)",
			LanguageVI: "(2~3 câu xác thực. In đậm nếu sử dụng các từ như **chính xác**/**không chính xác**)",
		},
	},
	{
		Key: SectionIdeaDevelopment,
		Labels: map[Language]string{
			LanguageEN: "Idea Development",
			LanguageVI: "Phát triển ý tưởng",
		},
		Hints: map[Language]string{
			LanguageEN: "(1~2 sentences. Bold **Profound** or **Superficial**)",
			LanguageVI: "(1~2 câu. In đậm nếu sử dụng các từ như **Sâu sắc**/**Hời hợt**)",
		},
	},
	{
		Key: SectionCoherence,
		Labels: map[Language]string{
			LanguageEN: "Coherence",
			LanguageVI: "Sự mạch lạc",
		},
		Hints: map[Language]string{
			LanguageEN: "(1~2 sentences)",
			LanguageVI: "(1~2 câu)",
		},
	},
	{
		Key: SectionSummary,
		Labels: map[Language]string{
			LanguageEN: "Summary",
			LanguageVI: "Kết luận",
		},
		Hints: map[Language]string{
			LanguageEN: "(2~3 sentences)",
			LanguageVI: "(2~3 câu)",
		},
	},
	{
		Key: SectionFinalEvaluation,
		Labels: map[Language]string{
			LanguageEN: "Final Evaluation",
			LanguageVI: "Đánh giá tổng quan",
		},
		Hints: map[Language]string{
			LanguageEN: "(Choose one: Poor / Average / Good / Excellent / Outstanding)",
			LanguageVI: "(Chỉ trả về 1 trong các giá trị: Kém / Trung bình / Khá / Tốt / Xuất sắc)",
		},
	},
	{
		Key: SectionAIPlagiarism,
		Labels: map[Language]string{
			LanguageEN: "AI Plagiarism",
			LanguageVI: "Phát hiện AI",
		},
		Hints: map[Language]string{
			LanguageEN: "(Estimated %, from 0 to 100)",
			LanguageVI: "(Trả về ước tính theo % từ 1 đến 100)",
		},
	},
}

// RubricSections returns the sections rendered as rubric paragraphs, which is
// every section except the final evaluation and the AI plagiarism estimate.
func RubricSections() []SectionDefinition {
	rubric := make([]SectionDefinition, 0, len(Sections)-2)
	for _, def := range Sections {
		if def.Key == SectionFinalEvaluation || def.Key == SectionAIPlagiarism {
			continue
		}
		rubric = append(rubric, def)
	}
	return rubric
}
