package kernel

import "github.com/sirupsen/logrus"

// Option is a functional option for configuring a Document.
type Option func(*Document)

// WithLogger sets the logger used to report suppressed listener panics.
func WithLogger(log logrus.FieldLogger) Option {
	return func(d *Document) {
		if log != nil {
			d.log = log
		}
	}
}

// WithInput binds the input collaborator at construction.
func WithInput(input DocumentInput) Option {
	return func(d *Document) {
		d.input = input
	}
}

// WithContentTypeInformation installs the identifier-syntax provider at
// construction.
func WithContentTypeInformation(info ContentTypeInformation) Option {
	return func(d *Document) {
		d.SetContentTypeInformation(info)
	}
}

// WithPartitioner installs a partitioner at construction.
func WithPartitioner(p DocumentPartitioner) Option {
	return func(d *Document) {
		d.SetPartitioner(p)
	}
}
