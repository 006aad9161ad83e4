package mainboilerplate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
)

// ConfigPrefixes returns the directories searched for an INI file:
//   - The current working directory.
//   - ~/.config/supplynet (under the user's $HOME or %UserProfile% directory).
//   - $SUPPLYNET_CONFIG_ROOT, when set.
func ConfigPrefixes() []string {
	var prefixes = []string{
		".",
		filepath.Join(os.Getenv("HOME"), ".config", "supplynet"),
		filepath.Join(os.Getenv("UserProfile"), ".config", "supplynet"),
	}
	if root := os.Getenv("SUPPLYNET_CONFIG_ROOT"); root != "" {
		prefixes = append(prefixes, root)
	}
	return prefixes
}

// ParseConfigFile applies the first INI file named |configName| found under
// |prefixes| to |parser|. Unknown options in the file are ignored. A missing
// file is not an error.
func ParseConfigFile(parser *flags.Parser, configName string, prefixes []string) error {
	// Allow unknown options while parsing an INI file.
	var origOptions = parser.Options
	parser.Options |= flags.IgnoreUnknown
	defer func() { parser.Options = origOptions }()

	var iniParser = flags.NewIniParser(parser)

	for _, prefix := range prefixes {
		var path = filepath.Join(prefix, configName)

		if err := iniParser.ParseFile(path); err == nil {
			return nil
		} else if os.IsNotExist(err) {
			// Pass.
		} else {
			return err
		}
	}
	return nil
}

// MustParseConfig requires that the Parser parse from the combination of an
// optional INI file (see ConfigPrefixes), configured environment bindings,
// and explicit flags.
func MustParseConfig(parser *flags.Parser, configName string) {
	if err := ParseConfigFile(parser, configName, ConfigPrefixes()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	MustParseArgs(parser)
}

// MustParseArgs requires that Parser be able to ParseArgs without error.
func MustParseArgs(parser *flags.Parser) {
	if _, err := parser.ParseArgs(os.Args[1:]); err != nil {
		var flagErr, ok = err.(*flags.Error)
		if !ok {
			Must(err, "fatal error")
		}

		switch flagErr.Type {
		case flags.ErrDuplicatedFlag, flags.ErrTag, flags.ErrInvalidTag, flags.ErrShortNameTooLong, flags.ErrMarshal:
			// These indicate a problem in the configuration struct itself.
			panic(err)

		case flags.ErrCommandRequired:
			// Extend go-flag's "Please specify one command of: ... " output with the full usage.
			os.Stderr.WriteString("\n")
			parser.WriteHelp(os.Stderr)
			fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
			os.Exit(1)

		case flags.ErrHelp:
			if parser.Options&flags.PrintErrors != 0 {
				// Help was already printed.
			} else {
				parser.WriteHelp(os.Stderr)
				fmt.Fprintf(os.Stderr, "\nVersion %s, built at %s.\n", Version, BuildDate)
			}
			os.Exit(1)

		default:
			// go-flags already printed a message describing the input error.
			os.Exit(1)
		}
	}
}

// AddPrintConfigCmd to the Parser. The "print-config" command helps users test
// whether their applications are correctly configured, by exporting all runtime
// configuration in INI format.
func AddPrintConfigCmd(parser *flags.Parser, configName string) {
	_, _ = parser.AddCommand("print-config", "Print combined configuration and exit", `
print-config parses the combined configuration from `+configName+`, flags,
and environment variables, and then writes the configuration to stdout in INI format.
`, &printConfig{parser})
}

type printConfig struct {
	*flags.Parser `no-flag:"t"`
}

func (p printConfig) Execute([]string) error {
	var ini = flags.NewIniParser(p.Parser)
	ini.Write(os.Stdout, flags.IniIncludeComments|flags.IniCommentDefaults|flags.IniIncludeDefaults)
	return nil
}
