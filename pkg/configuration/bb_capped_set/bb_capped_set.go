// Package bb_capped_set contains the configuration of the bb_capped_set
// binary.
package bb_capped_set

import (
	"github.com/buildbarn/bb-capped-set/pkg/configuration/cappedset"
	"github.com/buildbarn/bb-capped-set/pkg/configuration/global"
	"github.com/buildbarn/bb-capped-set/pkg/configuration/http"
)

// ApplicationConfiguration is the top-level configuration message of
// bb_capped_set.
type ApplicationConfiguration struct {
	Global      *global.Configuration       `json:"global,omitempty"`
	HTTPServers []*http.ServerConfiguration `json:"httpServers,omitempty"`
	CappedSet   *cappedset.Configuration    `json:"cappedSet,omitempty"`
}
