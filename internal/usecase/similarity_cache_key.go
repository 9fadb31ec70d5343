package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"jobrank/internal/domain/ranking"
)

// similarityCacheKey identifies one (candidate, job-set) similarity map.
// Job order must not matter, so ids are sorted before hashing.
func similarityCacheKey(candidate ranking.CandidateProfile, jobs []ranking.JobPosting) string {
	ids := make([]string, 0, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID.String())
	}
	sort.Strings(ids)

	sum := sha256.Sum256([]byte(strings.Join(ids, ",")))
	return "rankings:sim:" + candidate.ID.String() + ":" + hex.EncodeToString(sum[:])
}
