package office

import (
	"fmt"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/plcops/stickerfill/pkg/stickerfill/layout"
)

// Presentation is an open slide deck inside a running PowerPoint instance.
// It implements Deck.
type Presentation struct {
	pres *ole.IDispatch
}

// OpenPresentation opens the presentation at path in the attached PowerPoint
// instance, with a visible window.
func (a *App) OpenPresentation(path string) (*Presentation, error) {
	presentations, err := oleutil.GetProperty(a.dispatch, "Presentations")
	if err != nil {
		return nil, fmt.Errorf("presentations collection: %w", err)
	}
	coll := presentations.ToIDispatch()
	defer coll.Release()

	// Open(FileName, ReadOnly, Untitled, WithWindow)
	pres, err := oleutil.CallMethod(coll, "Open", path, false, false, true)
	if err != nil {
		return nil, fmt.Errorf("open presentation %s: %w", path, err)
	}
	return &Presentation{pres: pres.ToIDispatch()}, nil
}

// SlideCount implements Deck.
func (p *Presentation) SlideCount() int {
	slides, err := oleutil.GetProperty(p.pres, "Slides")
	if err != nil {
		return 0
	}
	coll := slides.ToIDispatch()
	defer coll.Release()

	count, err := oleutil.GetProperty(coll, "Count")
	if err != nil {
		return 0
	}
	return int(count.Val)
}

// Slide implements Deck. n is 1-based.
func (p *Presentation) Slide(n int) (Slide, error) {
	slides, err := oleutil.GetProperty(p.pres, "Slides")
	if err != nil {
		return nil, err
	}
	coll := slides.ToIDispatch()
	defer coll.Release()

	slide, err := oleutil.GetProperty(coll, "Item", n)
	if err != nil {
		return nil, fmt.Errorf("slide %d: %w", n, err)
	}
	return &OleSlide{slide: slide.ToIDispatch()}, nil
}

// Close releases the presentation handle without closing the file in
// PowerPoint.
func (p *Presentation) Close() {
	if p.pres != nil {
		p.pres.Release()
		p.pres = nil
	}
}

// OleSlide wraps one slide of a live presentation.
type OleSlide struct {
	slide *ole.IDispatch
}

// ShapeByName implements Slide.
func (s *OleSlide) ShapeByName(name string) (Shape, bool) {
	shapes, err := oleutil.GetProperty(s.slide, "Shapes")
	if err != nil {
		return nil, false
	}
	coll := shapes.ToIDispatch()
	defer coll.Release()

	shape, err := oleutil.GetProperty(coll, "Item", name)
	if err != nil {
		return nil, false
	}
	return &OleShape{shape: shape.ToIDispatch()}, true
}

// Release frees the slide handle.
func (s *OleSlide) Release() {
	if s.slide != nil {
		s.slide.Release()
		s.slide = nil
	}
}

// OleShape wraps one placeholder shape.
type OleShape struct {
	shape *ole.IDispatch
}

// Orientation implements Shape. A shape without a readable text frame
// reports 0.
func (sh *OleShape) Orientation() int {
	frame, err := oleutil.GetProperty(sh.shape, "TextFrame")
	if err != nil {
		return 0
	}
	tf := frame.ToIDispatch()
	defer tf.Release()

	orientation, err := oleutil.GetProperty(tf, "Orientation")
	if err != nil {
		return 0
	}
	return int(orientation.Val)
}

// SetText implements Shape, overwriting the full text of the shape.
func (sh *OleShape) SetText(text string) error {
	frame, err := oleutil.GetProperty(sh.shape, "TextFrame")
	if err != nil {
		return err
	}
	tf := frame.ToIDispatch()
	defer tf.Release()

	textRange, err := oleutil.GetProperty(tf, "TextRange")
	if err != nil {
		return err
	}
	tr := textRange.ToIDispatch()
	defer tr.Release()

	_, err = oleutil.PutProperty(tr, "Text", text)
	return err
}

// SetBox implements Shape.
func (sh *OleShape) SetBox(box layout.Box) error {
	if _, err := oleutil.PutProperty(sh.shape, "Left", box.Left); err != nil {
		return err
	}
	if _, err := oleutil.PutProperty(sh.shape, "Top", box.Top); err != nil {
		return err
	}
	if _, err := oleutil.PutProperty(sh.shape, "Width", box.Width); err != nil {
		return err
	}
	_, err := oleutil.PutProperty(sh.shape, "Height", box.Height)
	return err
}

// SetFontSize implements Shape, setting the font size of the whole text range.
func (sh *OleShape) SetFontSize(points float64) error {
	frame, err := oleutil.GetProperty(sh.shape, "TextFrame")
	if err != nil {
		return err
	}
	tf := frame.ToIDispatch()
	defer tf.Release()

	textRange, err := oleutil.GetProperty(tf, "TextRange")
	if err != nil {
		return err
	}
	tr := textRange.ToIDispatch()
	defer tr.Release()

	font, err := oleutil.GetProperty(tr, "Font")
	if err != nil {
		return err
	}
	f := font.ToIDispatch()
	defer f.Release()

	_, err = oleutil.PutProperty(f, "Size", points)
	return err
}

// Release frees the shape handle.
func (sh *OleShape) Release() {
	if sh.shape != nil {
		sh.shape.Release()
		sh.shape = nil
	}
}
