// Package model contains data structures for launch parameters, search tasks and their results
package model

// CaseInsensitiveFlag - literal 4th argument that switches the search to case-insensitive mode
const CaseInsensitiveFlag = "CASE_INSENSITIVE"

const DefaultServerAddress = "localhost:8080"

// Config - launch parameters of a single CLI search
type Config struct {
	Query         string
	FilePath      string
	CaseSensitive bool
}

type ServerParam struct {
	Address string
}

// SearchTask - one search over contents that are already loaded into memory
type SearchTask struct {
	TaskID     string `json:"tid"`
	Query      string `json:"query"`       // пустой запрос совпадает с каждой строкой
	Contents   string `json:"contents"`
	IgnoreCase bool   `json:"ignore_case"` // нулевое значение - поиск с учетом регистра
	FileName   string `json:"file_name,omitempty"`
}

// SearchResult - matching lines in source order and the xxhash-sum over them
type SearchResult struct {
	TaskID   string   `json:"tid"`
	HashSumm uint64   `json:"hash"`
	Output   []string `json:"output"`
}
