package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeParam(t *testing.T) {
	t.Parallel()
	tests := []struct {
		param string
		want  string
	}{
		{"id", "ID"},
		{"userId", "user ID"},
		{"postId", "post ID"},
		{"somethingElse", "somethingElse"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanizeParam(tt.param))
	}
}
