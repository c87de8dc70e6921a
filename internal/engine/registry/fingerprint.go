package registry

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jig/internal/core/domain"
	"go.trai.ch/zerr"
)

// Fingerprint canonicalizes the plugin-relevant subset of cfg and digests
// it. The cache-directory override is environment-only and excluded, so two
// machines with different cache locations still share a fingerprint.
// The canonical form doubles as the serialized-form
// comparison key: re-serialized configurations from another process
// canonicalize to the same bytes.
func Fingerprint(cfg *domain.Config) (canon []byte, digest string, err error) {
	relevant := *cfg
	relevant.Plugin.CacheDir = ""

	canon, err = json.Marshal(relevant)
	if err != nil {
		return nil, "", zerr.Wrap(err, "failed to canonicalize config")
	}
	return canon, fmt.Sprintf("%016x", xxhash.Sum64(canon)), nil
}
