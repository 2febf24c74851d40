package terminal_test

import (
	"testing"

	"github.com/kasa-tools/kasa-cli/internal/terminal"
	"github.com/kasa-tools/kasa-cli/internal/utils/test/assert"
)

func TestOutputFormat(t *testing.T) {
	t.Run("should accept the supported formats", func(t *testing.T) {
		var outputFormat terminal.OutputFormat

		assert.Nil(t, outputFormat.Set("json"))
		assert.Equal(t, terminal.OutputFormatJSON, outputFormat)

		assert.Nil(t, outputFormat.Set(""))
		assert.Equal(t, terminal.OutputFormatText, outputFormat)
	})

	t.Run("should reject an unsupported format", func(t *testing.T) {
		var outputFormat terminal.OutputFormat
		assert.NotNil(t, outputFormat.Set("yaml"))
	})
}
