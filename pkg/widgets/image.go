package widgets

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"os"

	// Stdlib codecs for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	// Extended codecs. webp is decode-only upstream, which is all we need.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nextcore/quark/pkg/core"
	"github.com/nextcore/quark/pkg/errors"
	"github.com/nextcore/quark/pkg/events"
	"github.com/nextcore/quark/pkg/markup"
)

// Image displays a picture referenced by source: a URL, a data URI, or
// anything else the host page can resolve.
//
// NewImageFromFile embeds a local file as a data URI with its intrinsic
// dimensions, so the markup needs no asset serving from the host. The image
// is non-interactive: events.Change is inert. OnUpdate requires the snapshot
// key "src"; it replaces the source string verbatim and clears the recorded
// dimensions (the new source's are unknown).
type Image struct {
	name     string
	src      string
	width    int
	height   int
	observer core.Observer
	stretch  string
}

var _ core.Widget = (*Image)(nil)

// NewImage creates an image with an empty source, no observer, and no
// stretch.
func NewImage(name string) Image {
	return Image{name: name}
}

// NewImageFromFile creates an image whose source is the file at path,
// embedded as a base64 data URI, with width and height read from the image
// header. Unreadable or undecodable files return a *errors.DecodeError.
//
// Supported formats: png, jpeg, gif, bmp, tiff, webp.
func NewImageFromFile(name, path string) (Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Image{}, &errors.DecodeError{Path: path, Err: err}
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Image{}, &errors.DecodeError{Path: path, Err: err}
	}
	return Image{
		name:   name,
		src:    fmt.Sprintf("data:image/%s;base64,%s", format, base64.StdEncoding.EncodeToString(data)),
		width:  cfg.Width,
		height: cfg.Height,
	}, nil
}

// WithSource returns a copy of the image with the given source, used
// verbatim as the img element's src. Dimensions are cleared; use
// NewImageFromFile when intrinsic dimensions are wanted.
func (i Image) WithSource(src string) Image {
	i.src = src
	i.width = 0
	i.height = 0
	return i
}

// WithObserver returns a copy of the image with the given observer.
func (i Image) WithObserver(observer core.Observer) Image {
	i.observer = observer
	return i
}

// WithStretch returns a copy of the image carrying the "stretch" modifier.
func (i Image) WithStretch() Image {
	i.stretch = "stretch"
	return i
}

// Name returns the image's identity key.
func (i *Image) Name() string { return i.name }

// Source returns the current source.
func (i *Image) Source() string { return i.src }

// Size returns the recorded intrinsic dimensions; zero when unknown.
func (i *Image) Size() (width, height int) { return i.width, i.height }

// Eval renders the image. Width and height attributes appear only when the
// intrinsic dimensions are known.
//
// Styling:
//
//	class = image [stretch]
func (i *Image) Eval() string {
	dims := ""
	if i.width > 0 && i.height > 0 {
		dims = fmt.Sprintf(` width="%d" height="%d"`, i.width, i.height)
	}
	return fmt.Sprintf(
		`<div class="%s"><img src="%s"%s /></div>`,
		markup.ClassList("image", i.stretch),
		markup.Escape(i.src),
		dims,
	)
}

// Trigger reacts to events.Update only; interaction events are inert.
func (i *Image) Trigger(ev events.Event) error {
	if _, ok := ev.(events.Update); ok {
		return i.OnUpdate()
	}
	return nil
}

// OnUpdate overwrites the source from the observer snapshot.
// Snapshot key: "src".
func (i *Image) OnUpdate() error {
	if i.observer == nil {
		return nil
	}
	src, err := core.SnapshotString(i.observer.Observe(), i.name, "src")
	if err != nil {
		return err
	}
	i.src = src
	i.width = 0
	i.height = 0
	return nil
}
