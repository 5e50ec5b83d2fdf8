package cli

// Input holds the command-line state shared by all subcommands.
type Input struct {
	configPath string
	verbose    bool
	quiet      bool

	trials  int
	workers int
	seed    int64
	exact   bool
	output  string

	outPath string
	genSeed int64
}

const (
	defaultGraphFile = "karger-min-cut.txt"

	outputText = "text"
	outputYAML = "yaml"
)
