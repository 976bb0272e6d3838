// Package catalog embeds the built-in content served when no database is configured.
// The same dataset seeds a fresh database.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Section keys of the embedded dataset.
const (
	Playday           = "playday"
	PlaybookUsecase   = "playbook_usecase"
	PlaybookTrend     = "playbook_trend"
	PlaybookPrompt    = "playbook_prompt"
	PlaybookHAI       = "playbook_hai"
	PlaybookTeams     = "playbook_teams"
	PlaybookInterview = "playbook_interview"
	Activity          = "activity"
	Notices           = "notices"
	Schedules         = "schedules"
	QuickLinks        = "quick_links"
)

//go:embed catalog.json
var data []byte

var (
	once     sync.Once
	sections map[string]json.RawMessage
	parseErr error
)

func load() (map[string]json.RawMessage, error) {
	once.Do(func() {
		parseErr = json.Unmarshal(data, &sections)
	})
	return sections, parseErr
}

// Section decodes the named section into a fresh slice. Callers may modify
// the result. An absent section yields an empty slice.
func Section[T any](key string) ([]T, error) {
	all, err := load()
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	items := make([]T, 0)
	raw, ok := all[key]
	if !ok {
		return items, nil
	}
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decode catalog section %s: %w", key, err)
	}
	return items, nil
}

// Keys lists the sections present in the dataset.
func Keys() ([]string, error) {
	all, err := load()
	if err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	return keys, nil
}
