// Package parser reads cities and warehouses from input files.
//
// Two syntaxes are supported. The text syntax has a "Cities:" section and a
// "Warehouses:" section with one record per line; the YAML syntax holds
// "cities" and "warehouses" lists decoded strictly with gopkg.in/yaml.v2.
// ParseFile picks the syntax from the file extension and reads through an
// afero.Fs, so tests can use an in-memory filesystem.
//
// Every successful parse is checked with core.ValidateInput before it is
// returned: duplicate ids and negative quantities never reach the engines.
// Errors carry the line number (text) or list index (YAML) via
// github.com/pkg/errors and still match their sentinel with errors.Is.
package parser
