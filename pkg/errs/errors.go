// Package errs collects the error taxonomy the engine returns across its
// pipeline stages (spec.md §7), so callers can type-switch or errors.As on a
// specific failure category instead of matching on message text.
package errs

import "fmt"

// ParseError reports a malformed CSS/Tailwind property value. Parse failures
// on a single property are warnings (collected via go.uber.org/multierr and
// never abort a render); a ParseError only surfaces on its own when a
// property has no usable fallback.
type ParseError struct {
	Property string
	Value    string
	Pos      int
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %q at byte %d: %s", e.Property, e.Value, e.Pos, e.Reason)
}

// UnknownResourceError reports a node referencing an image source, font
// family, or other host-supplied resource that was not present in the
// snapshot handed to the render.
type UnknownResourceError struct {
	Kind string // "image", "font", ...
	ID   string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("unknown %s resource %q", e.Kind, e.ID)
}

// DecodeError wraps a failure decoding an externally supplied image or font
// blob (bad magic bytes, truncated data, unsupported codec).
type DecodeError struct {
	Kind string
	ID   string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s %q: %v", e.Kind, e.ID, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// InvalidViewportError reports a requested render viewport that cannot be
// rasterized because its width or height is zero or negative.
type InvalidViewportError struct {
	Width, Height int
	Reason        string
}

func (e *InvalidViewportError) Error() string {
	return fmt.Sprintf("invalid viewport %dx%d: %s", e.Width, e.Height, e.Reason)
}

// RenderError wraps a failure in one render stage: tree assembly, layout or
// paint. NodePath names the failing node for diagnostics; the engine leaves
// it empty.
type RenderError struct {
	NodePath string
	Stage    string // "assemble", "layout", "paint"
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("%s failed at %s: %v", e.Stage, e.NodePath, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// IoError wraps an I/O failure (reading a font file, writing an encoded
// frame) with the path that failed.
type IoError struct {
	Path string
	Err  error
}

func (e *IoError) Error() string {
	return fmt.Sprintf("io %s: %v", e.Path, e.Err)
}

func (e *IoError) Unwrap() error { return e.Err }

// EncodeError wraps a failure in the output encoding stage (PNG/WebP/APNG
// muxing).
type EncodeError struct {
	Format string
	Err    error
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode %s: %v", e.Format, e.Err)
}

func (e *EncodeError) Unwrap() error { return e.Err }
