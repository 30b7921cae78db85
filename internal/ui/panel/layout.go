package panel

import "fyne.io/fyne/v2"

// headerLayout stacks the title and status on the left and centers the
// clock in the remaining height.
type headerLayout struct{}

func (layout *headerLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	title := objects[0]
	status := objects[1]
	clock := objects[2]

	pad := size.Height * 0.05
	availableWidth := size.Width - pad*2
	if availableWidth < 0 {
		availableWidth = 0
	}

	titleSize := title.MinSize()
	title.Move(fyne.NewPos(pad, pad))
	title.Resize(fyne.NewSize(availableWidth, titleSize.Height))

	statusSize := status.MinSize()
	statusY := pad + titleSize.Height + 4
	status.Move(fyne.NewPos(pad, statusY))
	status.Resize(fyne.NewSize(availableWidth, statusSize.Height))

	clockSize := clock.MinSize()
	top := statusY + statusSize.Height
	clockY := top + (size.Height-top-clockSize.Height)/2
	if clockY < top {
		clockY = top
	}
	clockX := (size.Width - clockSize.Width) / 2
	if clockX < 0 {
		clockX = 0
	}
	clock.Move(fyne.NewPos(clockX, clockY))
	clock.Resize(clockSize)
}

func (layout *headerLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	titleSize := objects[0].MinSize()
	statusSize := objects[1].MinSize()
	clockSize := objects[2].MinSize()

	width := titleSize.Width
	if statusSize.Width > width {
		width = statusSize.Width
	}
	if clockSize.Width > width {
		width = clockSize.Width
	}
	height := titleSize.Height + statusSize.Height + clockSize.Height + 24
	return fyne.NewSize(width+20, height)
}
