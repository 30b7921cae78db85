package popup

import "fyne.io/fyne/v2"

// sizeWatchLayout stacks its objects and reports when the container
// crosses the small-width threshold.
type sizeWatchLayout struct {
	threshold float32
	onChange  func(small bool)
	known     bool
	small     bool
}

func (layout *sizeWatchLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, object := range objects {
		object.Move(fyne.NewPos(0, 0))
		object.Resize(size)
	}

	small := IsSmall(size, layout.threshold)
	if layout.known && small == layout.small {
		return
	}
	layout.known = true
	layout.small = small
	if layout.onChange != nil {
		layout.onChange(small)
	}
}

func (layout *sizeWatchLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var width, height float32
	for _, object := range objects {
		if !object.Visible() {
			continue
		}
		minSize := object.MinSize()
		width = max(width, minSize.Width)
		height = max(height, minSize.Height)
	}
	return fyne.NewSize(width, height)
}
