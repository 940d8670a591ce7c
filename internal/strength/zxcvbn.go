package strength

import (
	"math"
	"strings"
	"unicode"

	zxcvbn "github.com/ccojocar/zxcvbn-go"
	"github.com/ccojocar/zxcvbn-go/match"
)

// Feedback strings match the wording of the upstream zxcvbn feedback messages.
const (
	suggestAddWord       = "Add another word or two. Uncommon words are better."
	suggestFewWords      = "Use a few words, avoid common phrases"
	suggestNoSymbols     = "No need for symbols, digits, or uppercase letters"
	suggestCapitals      = "Capitalization doesn't help very much"
	suggestAllUpper      = "All-uppercase is almost as easy to guess as all-lowercase"
	suggestSubstitutions = "Predictable substitutions like '@' instead of 'a' don't help very much"
	suggestKeyboard      = "Use a longer keyboard pattern with more turns"
	suggestRepeats       = "Avoid repeated words and characters"
	suggestSequences     = "Avoid sequences"
	suggestDates         = "Avoid dates and years that are associated with you"

	warnTop10        = "This is a top-10 common password"
	warnTop100       = "This is a top-100 common password"
	warnCommon       = "This is a very common password"
	warnSimilar      = "This is similar to a commonly used password"
	warnWord         = "A word by itself is easy to guess"
	warnNamesAlone   = "Names and surnames by themselves are easy to guess"
	warnNames        = "Common names and surnames are easy to guess"
	warnStraightRow  = "Straight rows of keys are easy to guess"
	warnShortPattern = "Short keyboard patterns are easy to guess"
	warnRepeatChar   = `Repeats like "aaa" are easy to guess`
	warnRepeatGroup  = `Repeats like "abcabcabc" are only slightly harder to guess than "abc"`
	warnSequence     = "Sequences like abc or 6543 are easy to guess"
	warnDate         = "Dates are often easy to guess"
)

// keyboardRows are unshifted QWERTY rows, used to tell straight runs from bent patterns.
var keyboardRows = []string{"1234567890", "qwertyuiop", "asdfghjkl", "zxcvbnm"}

// leetChars are characters commonly substituted for letters.
const leetChars = "4@8({[<3691!|0$5+7%2"

// ZxcvbnEstimator scores passwords with the zxcvbn pattern matcher
// (dictionaries, keyboard walks, repeats, sequences and dates).
type ZxcvbnEstimator struct {
	// UserInputs are always penalised in addition to per-call hints.
	UserInputs []string
}

// NewZxcvbnEstimator creates a new ZxcvbnEstimator.
func NewZxcvbnEstimator(userInputs ...string) *ZxcvbnEstimator {
	return &ZxcvbnEstimator{UserInputs: userInputs}
}

// Estimate runs the matcher and derives feedback from the weakest match sequence.
func (e *ZxcvbnEstimator) Estimate(password string, hints []string) (Estimate, error) {
	inputs := make([]string, 0, len(e.UserInputs)+len(hints))
	inputs = append(inputs, e.UserInputs...)
	for _, h := range hints {
		if h = strings.TrimSpace(h); h != "" {
			inputs = append(inputs, strings.ToLower(h))
		}
	}

	result := zxcvbn.PasswordStrength(password, inputs)
	warning, suggestions := sequenceFeedback(result.Score, result.MatchSequence)

	return Estimate{
		Score:       result.Score,
		Warning:     warning,
		Suggestions: suggestions,
	}, nil
}

func sequenceFeedback(score int, sequence []match.Match) (string, []string) {
	if len(sequence) == 0 {
		return "", []string{suggestFewWords, suggestNoSymbols}
	}
	if score > 2 {
		return "", nil
	}

	longest := sequence[0]
	for _, m := range sequence[1:] {
		if len(m.Token) > len(longest.Token) {
			longest = m
		}
	}

	warning, extra := matchFeedback(longest, len(sequence) == 1)
	suggestions := append([]string{suggestAddWord}, extra...)
	return warning, suggestions
}

func matchFeedback(m match.Match, sole bool) (string, []string) {
	pattern := strings.ToLower(m.Pattern)
	switch {
	case pattern == "dictionary" || strings.Contains(pattern, "l33t") || strings.Contains(pattern, "leet"):
		return dictionaryFeedback(m, sole)
	case pattern == "spatial":
		if isStraightRow(m.Token) {
			return warnStraightRow, []string{suggestKeyboard}
		}
		return warnShortPattern, []string{suggestKeyboard}
	case pattern == "repeat":
		if distinctRunes(m.Token) == 1 {
			return warnRepeatChar, []string{suggestRepeats}
		}
		return warnRepeatGroup, []string{suggestRepeats}
	case pattern == "sequence":
		return warnSequence, []string{suggestSequences}
	case strings.HasPrefix(pattern, "date"):
		return warnDate, []string{suggestDates}
	default:
		return "", nil
	}
}

func dictionaryFeedback(m match.Match, sole bool) (string, []string) {
	var warning string
	name := strings.ToLower(m.DictionaryName)
	switch {
	case strings.Contains(name, "password"):
		if !sole {
			warning = warnSimilar
			break
		}
		// Dictionary entropy is log2 of the rank plus case and l33t bits.
		switch rank := math.Exp2(m.Entropy); {
		case rank <= 10:
			warning = warnTop10
		case rank <= 100:
			warning = warnTop100
		default:
			warning = warnCommon
		}
	case strings.Contains(name, "name"):
		if sole {
			warning = warnNamesAlone
		} else {
			warning = warnNames
		}
	case sole:
		warning = warnWord
	}

	var suggestions []string
	token := m.Token
	switch {
	case startsUpper(token):
		suggestions = append(suggestions, suggestCapitals)
	case strings.ToUpper(token) == token && strings.ToLower(token) != token:
		suggestions = append(suggestions, suggestAllUpper)
	}
	if hasLetter(token) && strings.ContainsAny(token, leetChars) {
		suggestions = append(suggestions, suggestSubstitutions)
	}
	return warning, suggestions
}

func isStraightRow(token string) bool {
	t := strings.ToLower(token)
	for _, row := range keyboardRows {
		if strings.Contains(row, t) {
			return true
		}
	}
	return false
}

func distinctRunes(s string) int {
	seen := make(map[rune]struct{})
	for _, r := range s {
		seen[r] = struct{}{}
	}
	return len(seen)
}

func startsUpper(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return s != ""
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}
