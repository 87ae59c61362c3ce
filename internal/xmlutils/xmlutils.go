// Package xmlutils provides XML loading and XPath extraction helpers used
// by the SMS backup parser.
package xmlutils

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// LoadXMLFile parses an XML file and returns its root node.
func LoadXMLFile(xmlFilePath string) (*xmlpath.Node, error) {
	file, err := os.Open(xmlFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open XML file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	root, err := xmlpath.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse XML file: %w", err)
	}

	return root, nil
}

// MustCompilePath compiles an XPath expression, panicking on failure. Only
// used for fixed expressions known at build time.
func MustCompilePath(expr string) *xmlpath.Path {
	return xmlpath.MustCompile(expr)
}

// ExtractFromXML extracts all values matched by an XPath expression under
// the given node.
func ExtractFromXML(root *xmlpath.Node, expr string) ([]string, error) {
	path, err := xmlpath.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("failed to compile XPath: %w", err)
	}

	var values []string
	iter := path.Iter(root)
	for iter.Next() {
		values = append(values, iter.Node().String())
	}

	return values, nil
}

// AttrValue returns the value of an attribute path relative to node, or ""
// when the attribute is absent.
func AttrValue(node *xmlpath.Node, path *xmlpath.Path) string {
	if value, ok := path.String(node); ok {
		return value
	}
	return ""
}
