package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	mdwerrors "github.com/msto63/textkit/foundation/core/errors"
	"github.com/msto63/textkit/foundation/utils/filex"
)

// maxInputSize caps text read from stdin
const maxInputSize = 16 << 20

// readText returns the arguments joined by spaces, or stdin when there
// are none. One trailing newline is dropped from stdin.
func readText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := filex.ReadAllLimited(cmd.InOrStdin(), maxInputSize)
	if err != nil {
		return "", mdwerrors.OperationFailed(mdwerrors.ModuleTextx, "read_text", err)
	}
	text := string(data)
	if strings.HasSuffix(text, "\r\n") {
		return strings.TrimSuffix(text, "\r\n"), nil
	}
	return strings.TrimSuffix(text, "\n"), nil
}
