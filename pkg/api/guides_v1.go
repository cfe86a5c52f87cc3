// pkg/api/guides_v1.go
package api

// GuideCountV1 is the stable JSON/JSONL schema for one catalog row and its
// counts. Keep fields, names, and types stable. Add new fields only with
// ",omitempty".
type GuideCountV1 struct {
	Construct     string `json:"construct"`
	Alias         string `json:"alias"`
	G1            string `json:"g1"`
	G2            string `json:"g2"`
	CountG1       uint64 `json:"count_g1"`
	CountG2       uint64 `json:"count_g2"`
	CountPaired   uint64 `json:"count_paired"`
	CountUnpaired uint64 `json:"count_unpaired"`
}
