// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DocConfig holds the settings a config file may supply as flag defaults.
// It is populated from the config file via viper.Unmarshal; explicit flags
// override it afterwards. The marker lines are deliberately not
// configurable: they are the contract between the tool and every document
// it has ever written into.
type DocConfig struct {
	// MarkdownFile is the default target document. Empty means console
	// output unless --markdown-file is given.
	MarkdownFile string `mapstructure:"markdown_file"`

	// Indent is the YAML indent used when pretty-printing composite
	// values/default cells (default 2).
	Indent int `mapstructure:"indent"`
}

// DefaultIndent is the pretty-printing indent used when none is configured.
const DefaultIndent = 2
