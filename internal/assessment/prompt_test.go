package assessment

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	spec := PromptSpec{
		Topic:     "Energy",
		Request:   "Discuss the role of nuclear power.",
		EssayText: "Nuclear power is important.",
	}

	t.Run("Default language emits every rubric label verbatim", func(t *testing.T) {
		system, user := BuildPrompt(spec)

		assert.Equal(t, systemRoleEN, system)
		assert.Contains(t, user, "**Topic:** Energy")
		assert.Contains(t, user, "**Request:** Discuss the role of nuclear power.")
		assert.Contains(t, user, "**Essay:** Nuclear power is important.")
		for _, def := range Sections {
			if def.Key == SectionAIPlagiarism {
				continue
			}
			assert.Contains(t, user, fmt.Sprintf("- %s: %s", def.Label(LanguageEN), def.Hint(LanguageEN)))
		}
		assert.NotContains(t, user, "AI Plagiarism")
	})

	t.Run("AI score section is appended only when requested", func(t *testing.T) {
		withScore := spec
		withScore.IncludeAIScore = true

		_, user := BuildPrompt(withScore)
		assert.Contains(t, user, "- AI Plagiarism: (Estimated %, from 0 to 100)")
	})

	t.Run("Secondary language switches system role and labels", func(t *testing.T) {
		viSpec := spec
		viSpec.Language = LanguageVI
		viSpec.IncludeAIScore = true

		system, user := BuildPrompt(viSpec)

		assert.Equal(t, systemRoleVI, system)
		assert.Contains(t, user, "**Chủ đề:** Energy")
		for _, def := range Sections {
			assert.Contains(t, user, "- "+def.Label(LanguageVI)+":")
		}
	})
}

// Every label the builder can emit must be recognized by the parser; the
// two sides share the Sections table and this pins that coupling down.
func TestBuildPrompt_LabelsRoundTripThroughParser(t *testing.T) {
	for _, lang := range []Language{LanguageEN, LanguageVI} {
		for _, def := range Sections {
			t.Run(fmt.Sprintf("%s/%s", lang, def.Key), func(t *testing.T) {
				parsed := Parse(def.Label(lang) + ": recognized content")
				require.Equal(t, "recognized content", parsed.Section(def.Key))
			})
		}
	}
}

func TestSections_LabelsAreUniquePerLanguage(t *testing.T) {
	for _, lang := range []Language{LanguageEN, LanguageVI} {
		seen := map[string]string{}
		for _, def := range Sections {
			label := def.Label(lang)
			require.NotEmpty(t, label, "label for %q in %q", def.Key, lang)
			previous, duplicated := seen[label]
			require.False(t, duplicated, "label %q used by both %q and %q", label, previous, def.Key)
			seen[label] = def.Key
		}
	}
}

func TestRubricSections(t *testing.T) {
	rubric := RubricSections()

	assert.Len(t, rubric, len(Sections)-2)
	for _, def := range rubric {
		assert.NotEqual(t, SectionFinalEvaluation, def.Key)
		assert.NotEqual(t, SectionAIPlagiarism, def.Key)
	}
}
