package shell

import "github.com/chzyer/readline"

var completer = readline.NewPrefixCompleter(
	readline.PcItem("new"),
	readline.PcItem("show", readline.PcItem("history")),
	readline.PcItem("play"),
	readline.PcItem("gen"),
	readline.PcItem("aiplay"),
	readline.PcItem("undo"),
	readline.PcItem("set",
		readline.PcItem("depth"),
		readline.PcItem("pruning", readline.PcItem("true"), readline.PcItem("false")),
		readline.PcItem("seed"),
	),
	readline.PcItem("load"),
	readline.PcItem("save"),
	readline.PcItem("autoplay"),
	readline.PcItem("analyze"),
	readline.PcItem("help"),
	readline.PcItem("exit"),
)
