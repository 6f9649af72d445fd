package pdcp

import (
	"github.com/l2sim/pdcp-entity/pkg/apperr"
)

// errConfigCombo builds the structured configuration error for a rejected
// sn_len/bearer_kind/rlc_mode combination.
func errConfigCombo(lcid uint32, snLen int, reason string) error {
	return apperr.NewBearerConfigError(lcid, snLen, reason)
}
