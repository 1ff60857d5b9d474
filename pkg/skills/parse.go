package skills

import "strings"

// Separator splits a free-text skill list into tokens.
const Separator = ","

// Normalize приводит навык к виду для сравнения: обрезает пробелы и переводит в нижний регистр.
// Внутренние пробелы и диакритика не трогаются.
func Normalize(skill string) string {
	return strings.ToLower(strings.TrimSpace(skill))
}

// Parse splits comma separated text into normalized skill tokens, keeping input order.
// Blank input yields an empty slice. Empty pieces ("sql,,excel", trailing comma) are dropped,
// so a token is never "".
func Parse(text string) []string {
	out := []string{}
	if strings.TrimSpace(text) == "" {
		return out
	}
	for _, piece := range strings.Split(text, Separator) {
		if s := Normalize(piece); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Set builds a membership index over tokens.
func Set(tokens []string) map[string]struct{} {
	out := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		out[t] = struct{}{}
	}
	return out
}

// Filter keeps the tokens of from whose membership in set equals keep.
// The relative order of from is preserved.
func Filter(from []string, set map[string]struct{}, keep bool) []string {
	out := []string{}
	for _, s := range from {
		if _, ok := set[s]; ok == keep {
			out = append(out, s)
		}
	}
	return out
}

// Join renders tokens back into the comma separated form accepted by Parse.
func Join(tokens []string) string {
	return strings.Join(tokens, Separator+" ")
}
