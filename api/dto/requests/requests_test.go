package requests

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRevalidateRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     RevalidateRequest
		wantErr string
	}{
		{"path", RevalidateRequest{Type: "path", Path: "/"}, ""},
		{"path missing", RevalidateRequest{Type: "path"}, "path is required"},
		{"path blank", RevalidateRequest{Type: "path", Path: "  "}, "path is required"},
		{"tags", RevalidateRequest{Type: "tag", Tags: []string{"game-{}"}}, ""},
		{"tags missing", RevalidateRequest{Type: "tag"}, "tags array is required"},
		{"all", RevalidateRequest{Type: "all"}, ""},
		{"unknown type", RevalidateRequest{Type: "everything"}, "invalid revalidation type"},
		{"empty type", RevalidateRequest{}, "invalid revalidation type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestWebVitalRequest_Validate(t *testing.T) {
	zero := 0.0

	assert.NoError(t, (&WebVitalRequest{Name: "CLS", Value: &zero}).Validate())
	assert.Error(t, (&WebVitalRequest{Value: &zero}).Validate())
	assert.Error(t, (&WebVitalRequest{Name: "LCP"}).Validate())
}
