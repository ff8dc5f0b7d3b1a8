package extract

import (
	"strings"

	"github.com/jonathan/resume-insight/internal/taxonomy"
	"github.com/jonathan/resume-insight/internal/textnorm"
	"github.com/jonathan/resume-insight/internal/types"
)

// Skills matches every taxonomy entry's surface forms against the folded text
// and collects canonical names in first-matched order. Taxonomy declaration
// order drives output order; that ordering is part of the contract, not an
// implementation accident.
func Skills(norm *textnorm.Normalized) types.SkillSet {
	set := types.SkillSet{
		Technical: []string{},
		Soft:      []string{},
	}

	for _, skill := range taxonomy.TechnicalSkills {
		if len(set.Technical) >= types.MaxTechnicalSkills {
			break
		}
		if matchesAnyVariant(norm.Folded, skill.Variants) {
			set.Technical = append(set.Technical, skill.Canonical)
		}
	}

	for _, skill := range taxonomy.SoftSkills {
		if len(set.Soft) >= types.MaxSoftSkills {
			break
		}
		if matchesAnyVariant(norm.Folded, skill.Variants) {
			set.Soft = append(set.Soft, skill.Canonical)
		}
	}

	return set
}

func matchesAnyVariant(folded string, variants []string) bool {
	for _, v := range variants {
		if strings.Contains(folded, v) {
			return true
		}
	}
	return false
}
