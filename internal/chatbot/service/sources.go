package service

// sourceNames maps notice numbers to the titles they were published
// under, so answers can cite a readable source. Kept in code because the
// catalog changes only when a new notice is ingested.
var sourceNames = map[string]string{
	"2024-0468":  "청년안심주택(공공임대) 1차 입주자 모집공고",
	"2024-0513":  "행복주택 2차 입주자 모집공고",
	"2025-0021":  "장기전세주택(상생주택) 입주자 모집공고",
	"2025-0102":  "신혼부부 매입임대주택 입주자 모집공고",
	"SH-2025-01": "SH 청년 매입임대주택 입주자 모집공고",
}

// SourceName resolves a scope key to its human-readable notice name,
// falling back to the raw key when unmapped.
func SourceName(key string) string {
	if name, ok := sourceNames[key]; ok {
		return name
	}
	return key
}
