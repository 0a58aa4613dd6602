package shell

import (
	_ "embed"
	"fmt"
	"strings"
)

//go:embed helptext/usage.txt
var usageText string

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(usageText), nil
	}
	topic := cmd.args[0]
	for _, line := range strings.Split(usageText, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), topic+" ") ||
			strings.TrimSpace(line) == topic {
			return msg(strings.TrimSpace(line)), nil
		}
	}
	return msg(fmt.Sprintf("There is no help text for the topic %s", topic)), nil
}
