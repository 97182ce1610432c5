package lexicon

import "strings"

// Script selects which rendering of a word is shown to the learner.
type Script string

const (
	// ScriptTransliterated renders words in Latin script ("Manglish").
	ScriptTransliterated Script = "transliterated"
	// ScriptNative renders words in Malayalam script.
	ScriptNative Script = "native"
)

// ParseScript accepts the canonical names plus the aliases used by the
// bundled dataset ("manglish", "malayalam").
func ParseScript(s string) (Script, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "transliterated", "manglish", "latin", "":
		return ScriptTransliterated, true
	case "native", "malayalam":
		return ScriptNative, true
	}
	return "", false
}

// Toggle returns the other script.
func (s Script) Toggle() Script {
	if s == ScriptNative {
		return ScriptTransliterated
	}
	return ScriptNative
}

// Label is the short name shown in the UI.
func (s Script) Label() string {
	if s == ScriptNative {
		return "Malayalam"
	}
	return "Manglish"
}

// Forms holds both renderings of a word.
type Forms struct {
	Transliteration string `json:"inTranslit"`
	NativeScript    string `json:"inNativeScript"`
}

// Example is a usage sentence for a word.
type Example struct {
	Transliteration string `json:"inTranslit"`
	Translation     string `json:"translation"`
	NativeScript    string `json:"inNativeScript"`
}

// Word is an immutable reference entry. Identity is ID.
type Word struct {
	ID                 string    `json:"id"`
	Forms              Forms     `json:"word"`
	Meaning            string    `json:"meaning"`
	PartOfSpeech       string    `json:"figureOfSpeech"`
	Examples           []Example `json:"examples"`
	Level              string    `json:"wordLevel"`
	PronunciationAsset string    `json:"pronunciation"`
}

// Display returns the word in the requested script, falling back to the
// other form when the requested one is empty.
func (w Word) Display(script Script) string {
	if script == ScriptNative && w.Forms.NativeScript != "" {
		return w.Forms.NativeScript
	}
	if w.Forms.Transliteration != "" {
		return w.Forms.Transliteration
	}
	return w.Forms.NativeScript
}

// Secondary returns the rendering not selected by script.
func (w Word) Secondary(script Script) string {
	return w.Display(script.Toggle())
}

// HasPronunciation reports whether an audio asset is bundled for the word.
func (w Word) HasPronunciation() bool {
	return w.PronunciationAsset != ""
}

// AssetPath returns the relative path of the pronunciation clip.
func (w Word) AssetPath() string {
	if w.PronunciationAsset == "" {
		return ""
	}
	return "audio/confusing-pairs/" + w.PronunciationAsset
}

// ConfusablePair links two words that learners tend to mix up.
type ConfusablePair struct {
	ID               string `json:"id"`
	WordID           string `json:"wordId"`
	ConfusableWordID string `json:"confusableWordId"`
	Reason           string `json:"reason"`
}

// Touches reports whether either side of the pair is id.
func (p ConfusablePair) Touches(id string) bool {
	return p.WordID == id || p.ConfusableWordID == id
}
