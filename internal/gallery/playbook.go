package gallery

// PlaybookCategory selects a Playbook section by its short name.
type PlaybookCategory string

const (
	PlaybookUsecase   PlaybookCategory = "usecase"
	PlaybookTrend     PlaybookCategory = "trend"
	PlaybookPrompt    PlaybookCategory = "prompt"
	PlaybookHAI       PlaybookCategory = "hai"
	PlaybookTeams     PlaybookCategory = "teams"
	PlaybookInterview PlaybookCategory = "interview"
)

// PlaybookAll requests every Playbook category at once.
const PlaybookAll = "all"

// PlaybookCategories lists the categories in display order.
var PlaybookCategories = []PlaybookCategory{
	PlaybookUsecase,
	PlaybookTrend,
	PlaybookPrompt,
	PlaybookHAI,
	PlaybookTeams,
	PlaybookInterview,
}

// ParsePlaybookCategory resolves s to a category, defaulting to usecase.
func ParsePlaybookCategory(s string) PlaybookCategory {
	for _, c := range PlaybookCategories {
		if string(c) == s {
			return c
		}
	}
	return PlaybookUsecase
}

// Section returns the gallery section backing the category.
func (c PlaybookCategory) Section() Section {
	return Section(playbookPrefix + string(c))
}
