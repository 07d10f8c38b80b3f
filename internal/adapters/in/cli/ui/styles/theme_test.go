package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHelpers(t *testing.T) {
	tests := []struct {
		name   string
		render func(string) string
		marker string
	}{
		{name: "success", render: RenderSuccess, marker: IconSuccess},
		{name: "error", render: RenderError, marker: IconError},
		{name: "warning", render: RenderWarning, marker: IconWarning},
		{name: "info", render: RenderInfo, marker: IconInfo},
		{name: "list item", render: RenderListItem, marker: IconBullet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := tt.render("table installed")
			assert.Contains(t, out, tt.marker)
			assert.Contains(t, out, "table installed")
		})
	}
}
