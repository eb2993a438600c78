// SPDX-License-Identifier: MPL-2.0

package library

// baselineDPI is the density-independent pixel baseline.
const baselineDPI = 160

// displayMetrics returns the metrics snapshot, taking it on the first call
// at which the provider has a display. Until then it reports nothing and
// asks again next time.
func (l *Library) displayMetrics() (DisplayMetrics, bool) {
	l.metricsMu.Lock()
	defer l.metricsMu.Unlock()

	if l.metrics != nil {
		return *l.metrics, true
	}
	m, ok := l.display.Metrics()
	if !ok {
		return DisplayMetrics{}, false
	}
	l.metrics = &m
	l.logger.Debug("display metrics cached", "width", m.Width, "height", m.Height, "density", m.Density)
	return m, true
}

// DisplayDPI returns the screen density in dots per inch, 0 without a display.
func (l *Library) DisplayDPI() int {
	m, ok := l.displayMetrics()
	if !ok {
		return 0
	}
	return int(baselineDPI * m.Density)
}

// WidthInPixels returns the screen width, 0 without a display.
func (l *Library) WidthInPixels() int {
	m, _ := l.displayMetrics()
	return m.Width
}

// HeightInPixels returns the screen height, 0 without a display.
func (l *Library) HeightInPixels() int {
	m, _ := l.displayMetrics()
	return m.Height
}
