// Package smsparser reads SMS backup XML exports and yields the raw
// messages for classification. It only pulls the fields the pipeline
// needs: the message body and the epoch-milliseconds timestamp.
package smsparser

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"github.com/Tresor26/MOMO-Dashboard/internal/fileutils"
	"github.com/Tresor26/MOMO-Dashboard/internal/parsererror"
	"github.com/Tresor26/MOMO-Dashboard/internal/xmlutils"
)

var log = logrus.New()

// SetLogger allows setting a configured logger.
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		xmlutils.SetLogger(logger)
	}
}

var (
	smsPath  = xmlutils.MustCompilePath("/smses/sms")
	bodyAttr = xmlutils.MustCompilePath("@body")
	dateAttr = xmlutils.MustCompilePath("@date")
)

// Message is a single SMS from a backup file. Body is the free-form
// notification text; Date is the raw epoch-milliseconds string as exported.
type Message struct {
	Body string
	Date string
}

// ValidateFormat checks whether the file looks like an SMS backup export,
// i.e. parses as XML with an smses root element.
func ValidateFormat(filePath string) (bool, error) {
	if !fileutils.FileExists(filePath) {
		return false, &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   "file does not exist",
		}
	}

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return false, nil
	}
	return xmlutils.MustCompilePath("/smses").Exists(root), nil
}

// ParseFile parses an SMS backup XML file and returns its messages in
// document order. Messages are returned as-is; empty bodies and malformed
// timestamps are the ingestion driver's concern.
func ParseFile(filePath string) ([]Message, error) {
	log.WithField("file", filePath).Info("Parsing SMS backup XML file")

	valid, err := ValidateFormat(filePath)
	if err != nil {
		return nil, err
	}
	if !valid {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       filePath,
			ExpectedFormat: "SMS backup XML",
			Msg:            "missing smses root element",
		}
	}

	root, err := xmlutils.LoadXMLFile(filePath)
	if err != nil {
		return nil, err
	}

	var messages []Message
	iter := smsPath.Iter(root)
	for iter.Next() {
		node := iter.Node()
		messages = append(messages, Message{
			Body: attrOf(node, bodyAttr),
			Date: attrOf(node, dateAttr),
		})
	}

	log.WithField("count", len(messages)).Info("Successfully parsed SMS backup file")
	return messages, nil
}

func attrOf(node *xmlpath.Node, path *xmlpath.Path) string {
	return xmlutils.AttrValue(node, path)
}
