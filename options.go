package fxlabel

import "log/slog"

// Option configures a Label during creation.
//
// Example:
//
//	l := fxlabel.NewLabel(
//	    fxlabel.WithOnChange(func(img *fxlabel.Image) { display(img) }),
//	    fxlabel.WithLogger(slog.Default()),
//	)
type Option func(*labelOptions)

// labelOptions holds optional configuration for Label creation.
type labelOptions struct {
	provider ShapeProvider
	hooks    []func(*Image)
	logger   *slog.Logger
}

// defaultOptions returns the default label options.
func defaultOptions() labelOptions {
	return labelOptions{
		provider: nil, // DefaultShapeProvider if nil
		logger:   nil, // package Logger if nil
	}
}

// WithShapeProvider sets the provider that lays out the label text.
// Use this to plug in a platform text engine or a test double.
func WithShapeProvider(p ShapeProvider) Option {
	return func(o *labelOptions) {
		o.provider = p
	}
}

// WithOnChange registers fn to be called with the new image after every
// successful render. It may be given several times; hooks run in order.
func WithOnChange(fn func(*Image)) Option {
	return func(o *labelOptions) {
		if fn != nil {
			o.hooks = append(o.hooks, fn)
		}
	}
}

// WithLogger sets a logger for this label only. Pipeline logging inside Fit
// and Composite still goes to the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *labelOptions) {
		o.logger = l
	}
}
