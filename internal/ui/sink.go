// internal/ui/sink.go
package ui

// Sink receives HUD updates. Every renderer provides one.
type Sink interface {
	Progress(percent float64)
	LoaderHidden()
	FPS(n int)
	InfoCard(visible bool)
	Cursor(x, y float64)
}

// Overlay is a Sink that keeps the latest HUD values for a renderer to draw.
type Overlay struct {
	Percent       float64
	LoaderVisible bool
	FPSValue      int
	Info          InfoCard
	Pointer       Cursor
	PausedBanner  bool
}

// NewOverlay returns an overlay with the loader showing.
func NewOverlay() *Overlay {
	return &Overlay{LoaderVisible: true, Info: NewInfoCard()}
}

func (o *Overlay) Progress(percent float64) { o.Percent = percent }

func (o *Overlay) LoaderHidden() { o.LoaderVisible = false }

func (o *Overlay) FPS(n int) { o.FPSValue = n }

func (o *Overlay) InfoCard(visible bool) {
	if visible {
		o.Info.Show()
	} else {
		o.Info.Hide()
	}
}

func (o *Overlay) Cursor(x, y float64) { o.Pointer.Move(x, y) }

// Paused toggles the pause banner.
func (o *Overlay) Paused(on bool) { o.PausedBanner = on }

// Update advances the overlay animations by one frame.
func (o *Overlay) Update() {
	o.Info.Update()
}
