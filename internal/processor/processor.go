// Package processor runs a search task and stamps the result with a hash-sum of its output
package processor

import (
	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/cespare/xxhash/v2"
)

type Processor struct{}

func (p Processor) ProcessInput(task *model.SearchTask) *model.SearchResult {
	result := model.SearchResult{
		TaskID: task.TaskID,
	}

	switch task.IgnoreCase {
	case true:
		result.Output = matcher.SearchCaseInsensitive(task.Query, task.Contents)
	default:
		result.Output = matcher.SearchCaseSensitive(task.Query, task.Contents)
	}

	result.HashSumm = Hasher(result.Output)

	return &result
}

// Hasher - xxhash64 over lines, each followed by "\n", so ["ab"] and ["a","b"] differ
func Hasher(input []string) uint64 {
	hs := xxhash.New()
	for _, s := range input {
		_, _ = hs.WriteString(s)
		_, _ = hs.WriteString("\n")
	}
	return hs.Sum64()
}
