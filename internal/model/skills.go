package model

import "strings"

const (
	// MaxSkillTokens caps how many skills ParseSkills returns
	MaxSkillTokens = 10
	// MaxSkillLen caps the length of a single skill
	MaxSkillLen = 49
)

// ParseSkills splits a comma-separated skill list, trimming spaces around each
// entry. Empty entries are skipped and at most MaxSkillTokens are returned.
func ParseSkills(skills string) []string {
	result := make([]string, 0, MaxSkillTokens)
	for _, token := range strings.Split(skills, ",") {
		if len(result) == MaxSkillTokens {
			break
		}
		token = strings.Trim(token, " ")
		if token == "" {
			continue
		}
		result = append(result, truncate(token, MaxSkillLen))
	}
	return result
}
