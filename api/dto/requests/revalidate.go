// ABOUTME: Request DTOs for cache revalidation and browser metric beacons
// ABOUTME: Field checks beyond the schema are done in Validate so the API answers 400

package requests

import (
	"fmt"
	"strings"
)

// Revalidation types
const (
	RevalidatePath = "path"
	RevalidateTag  = "tag"
	RevalidateAll  = "all"
)

// RevalidateRequest asks for cached CMS responses to be dropped
type RevalidateRequest struct {
	// Type is one of path, tag or all
	Type string `json:"type" required:"false" doc:"Revalidation type: path, tag or all"`

	// Path is the page path for type=path, e.g. / or /game/polytrack
	Path string `json:"path,omitempty" doc:"Page path to revalidate (type=path)"`

	// Tags are raw cache tags for type=tag
	Tags []string `json:"tags,omitempty" doc:"Cache tags to revalidate (type=tag)"`
}

// Validate checks that the fields required by Type are present
func (r *RevalidateRequest) Validate() error {
	switch r.Type {
	case RevalidatePath:
		if strings.TrimSpace(r.Path) == "" {
			return fmt.Errorf("path is required for path revalidation")
		}
	case RevalidateTag:
		if len(r.Tags) == 0 {
			return fmt.Errorf("tags array is required for tag revalidation")
		}
	case RevalidateAll:
	default:
		return fmt.Errorf(`invalid revalidation type, use "path", "tag", or "all"`)
	}
	return nil
}
