package tips

import (
	"fmt"
	"strings"

	"github.com/abhisek/sabdam/internal/lexicon"
)

const systemPrompt = `You are a friendly Malayalam pronunciation coach for English speakers. Learners read words in Manglish (Malayalam written in Latin letters, where capitals mark retroflex or long sounds, e.g. L, N, T) and in Malayalam script.`

func describe(w lexicon.Word) string {
	return fmt.Sprintf("%s (%s), meaning %q", w.Forms.Transliteration, w.Forms.NativeScript, w.Meaning)
}

func buildUserMessage(in Input) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Target word: %s\n", describe(in.Target))
	fmt.Fprintf(&b, "Often confused with: %s\n", describe(in.Other))
	if in.Reason != "" {
		fmt.Fprintf(&b, "Known difference: %s\n", in.Reason)
	}
	if len(in.Target.Examples) > 0 {
		ex := in.Target.Examples[0]
		fmt.Fprintf(&b, "Example: %s (%s)\n", ex.Transliteration, ex.Translation)
	}

	b.WriteString(`
Instructions:
1. In the summary, name the one sound that separates the two words.
2. Describe the mouth position for the target word's sound in plain words. No IPA.
3. Give a mnemonic under 15 words linking the sound to the target word's meaning.`)

	return b.String()
}
